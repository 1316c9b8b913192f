package editor

import (
	"reflect"
	"testing"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// populatedMap builds a map with two layers, a tileset, an object and a
// spawn point, for exercising actions against existing content.
func populatedMap(t *testing.T) *tilemap.Map {
	t.Helper()
	m := emptyMap()
	h := NewHistory()
	mustApply(t, h, m,
		&CreateLayerAction{ID: "bg", Kind: tilemap.TileLayer, HasCollision: true, Index: 0},
		&CreateLayerAction{ID: "objects", Kind: tilemap.ObjectLayer, Index: 1},
		&CreateTilesetAction{ID: "ts1", TextureID: "tex", TextureSize: core.NewSize(64, 64)},
		&PlaceTileAction{TileID: 3, LayerID: "bg", TilesetID: "ts1", Coords: core.Coords{X: 1, Y: 1}},
		&CreateObjectAction{ID: "sword", Kind: tilemap.ObjectKindItem, Position: core.Vec2{X: 20, Y: 20}, LayerID: "objects"},
		&CreateSpawnPointAction{Position: core.Vec2{X: 50, Y: 50}},
	)
	return m
}

// applyUndo runs an action forward and back and checks the map is restored.
func applyUndo(t *testing.T, m *tilemap.Map, action UndoableAction) {
	t.Helper()
	before := snapshot(t, m)
	if err := action.Apply(m); err != nil {
		t.Fatalf("apply %T: %v", action, err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("map invalid after %T: %v", action, err)
	}
	if err := action.Undo(m); err != nil {
		t.Fatalf("undo %T: %v", action, err)
	}
	after := snapshot(t, m)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("%T undo did not restore map:\nbefore: %+v\nafter:  %+v", action, before, after)
	}
}

type mapSnapshot struct {
	Background  core.Color
	BgLayers    []tilemap.BackgroundLayer
	DrawOrder   []string
	Layers      map[string]*tilemap.Layer
	Tilesets    map[string]*tilemap.Tileset
	SpawnPoints []core.Vec2
}

func snapshot(t *testing.T, m *tilemap.Map) mapSnapshot {
	t.Helper()
	snap := mapSnapshot{
		Background:  m.BackgroundColor,
		BgLayers:    append([]tilemap.BackgroundLayer(nil), m.BackgroundLayers...),
		DrawOrder:   append([]string(nil), m.DrawOrder...),
		Layers:      make(map[string]*tilemap.Layer, len(m.Layers)),
		Tilesets:    make(map[string]*tilemap.Tileset, len(m.Tilesets)),
		SpawnPoints: append([]core.Vec2(nil), m.SpawnPoints...),
	}
	for id, layer := range m.Layers {
		snap.Layers[id] = layer.Clone()
	}
	for id, tileset := range m.Tilesets {
		snap.Tilesets[id] = tileset.Clone()
	}
	return snap
}

func TestActionsApplyUndoRestore(t *testing.T) {
	tests := []struct {
		name   string
		action UndoableAction
	}{
		{"create layer", &CreateLayerAction{ID: "fg", Kind: tilemap.TileLayer, Index: 1}},
		{"delete layer", &DeleteLayerAction{ID: "bg"}},
		{"update layer", &UpdateLayerAction{ID: "bg", IsVisible: false, HasCollision: false}},
		{"set draw order index", &SetLayerDrawOrderIndexAction{ID: "bg", Index: 1}},
		{"create tileset", &CreateTilesetAction{ID: "ts2", TextureID: "tex2", TextureSize: core.NewSize(32, 32)}},
		{"delete tileset", &DeleteTilesetAction{ID: "ts1"}},
		{"update tileset", &UpdateTilesetAction{ID: "ts1", TextureID: "other", AutotileMask: make([]bool, 16)}},
		{"create object", &CreateObjectAction{ID: "musket", Kind: tilemap.ObjectKindItem, Position: core.Vec2{X: 5, Y: 5}, LayerID: "objects"}},
		{"delete object", &DeleteObjectAction{LayerID: "objects", Index: 0}},
		{"update object", &UpdateObjectAction{LayerID: "objects", Index: 0, ID: "shield", Kind: tilemap.ObjectKindDecoration, Position: core.Vec2{X: 7, Y: 7}}},
		{"create spawn point", &CreateSpawnPointAction{Position: core.Vec2{X: 1, Y: 2}}},
		{"delete spawn point", &DeleteSpawnPointAction{Index: 0}},
		{"move spawn point", &MoveSpawnPointAction{Index: 0, Position: core.Vec2{X: 99, Y: 99}}},
		{"place tile over empty", &PlaceTileAction{TileID: 7, LayerID: "bg", TilesetID: "ts1", Coords: core.Coords{X: 4, Y: 4}}},
		{"place tile over existing", &PlaceTileAction{TileID: 7, LayerID: "bg", TilesetID: "ts1", Coords: core.Coords{X: 1, Y: 1}}},
		{"remove tile", &RemoveTileAction{LayerID: "bg", Coords: core.Coords{X: 1, Y: 1}}},
		{"update tile attributes", &UpdateTileAttributesAction{LayerID: "bg", Coords: core.Coords{X: 1, Y: 1}, Attributes: []string{"jumpthrough"}}},
		{"update background", &UpdateBackgroundAction{Color: core.Color{R: 1, G: 2, B: 3, A: 255}, Layers: []tilemap.BackgroundLayer{{TextureID: "sky", Depth: 0.5}}}},
		{
			"import",
			&ImportAction{
				Tilesets:        []*tilemap.Tileset{tilemap.NewTileset("imported", "tex3", core.NewSize(32, 32), core.NewSize(16, 16), 1)},
				BackgroundColor: &core.Color{R: 9, G: 9, B: 9, A: 255},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyUndo(t, populatedMap(t), tt.action)
		})
	}
}

func TestActionFailures(t *testing.T) {
	tests := []struct {
		name   string
		action UndoableAction
	}{
		{"create duplicate layer", &CreateLayerAction{ID: "bg", Kind: tilemap.TileLayer}},
		{"delete missing layer", &DeleteLayerAction{ID: "nope"}},
		{"update missing layer", &UpdateLayerAction{ID: "nope"}},
		{"reorder missing layer", &SetLayerDrawOrderIndexAction{ID: "nope", Index: 0}},
		{"create duplicate tileset", &CreateTilesetAction{ID: "ts1", TextureID: "tex", TextureSize: core.NewSize(32, 32)}},
		{"delete missing tileset", &DeleteTilesetAction{ID: "nope"}},
		{"bad autotile mask length", &UpdateTilesetAction{ID: "ts1", TextureID: "tex", AutotileMask: []bool{true}}},
		{"create object on tile layer", &CreateObjectAction{ID: "x", LayerID: "bg"}},
		{"delete object out of range", &DeleteObjectAction{LayerID: "objects", Index: 5}},
		{"update object out of range", &UpdateObjectAction{LayerID: "objects", Index: 5}},
		{"delete spawn point out of range", &DeleteSpawnPointAction{Index: 5}},
		{"move spawn point out of range", &MoveSpawnPointAction{Index: 5}},
		{"place tile bad tileset", &PlaceTileAction{TileID: 0, LayerID: "bg", TilesetID: "nope", Coords: core.Coords{X: 0, Y: 0}}},
		{"place tile id out of range", &PlaceTileAction{TileID: 99, LayerID: "bg", TilesetID: "ts1", Coords: core.Coords{X: 0, Y: 0}}},
		{"place tile on object layer", &PlaceTileAction{TileID: 0, LayerID: "objects", TilesetID: "ts1", Coords: core.Coords{X: 0, Y: 0}}},
		{"attributes on empty cell", &UpdateTileAttributesAction{LayerID: "bg", Coords: core.Coords{X: 7, Y: 7}}},
		{"import duplicate tileset", &ImportAction{Tilesets: []*tilemap.Tileset{tilemap.NewTileset("ts1", "t", core.NewSize(16, 16), core.NewSize(16, 16), 1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := populatedMap(t)
			before := snapshot(t, m)
			err := tt.action.Apply(m)
			if err == nil {
				t.Fatal("expected error")
			}
			if core.KindOf(err) != core.ErrEditorAction {
				t.Errorf("error kind: got %v", err)
			}
			if !reflect.DeepEqual(before, snapshot(t, m)) {
				t.Error("failed apply mutated the map")
			}
		})
	}
}

func TestSetLayerDrawOrderIndexClamps(t *testing.T) {
	m := populatedMap(t)
	action := &SetLayerDrawOrderIndexAction{ID: "bg", Index: 99}
	if err := action.Apply(m); err != nil {
		t.Fatal(err)
	}
	if m.DrawOrder[len(m.DrawOrder)-1] != "bg" {
		t.Fatalf("index past end must clamp to last: %v", m.DrawOrder)
	}
	if err := action.Undo(m); err != nil {
		t.Fatal(err)
	}
	if m.DrawOrder[0] != "bg" {
		t.Fatalf("undo must restore original index: %v", m.DrawOrder)
	}
}

func TestDeleteTilesetClearsReferences(t *testing.T) {
	m := populatedMap(t)
	action := &DeleteTilesetAction{ID: "ts1"}
	if err := action.Apply(m); err != nil {
		t.Fatal(err)
	}
	tile, err := m.TileAt("bg", core.Coords{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if tile != nil {
		t.Fatal("tiles referencing a deleted tileset must be cleared")
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("map invalid after tileset delete: %v", err)
	}
}

func TestImportRehomesTileIDRanges(t *testing.T) {
	m := populatedMap(t)
	imported := tilemap.NewTileset("ts2", "tex2", core.NewSize(64, 64), core.NewSize(16, 16), 1)
	action := &ImportAction{Tilesets: []*tilemap.Tileset{imported}}
	if err := action.Apply(m); err != nil {
		t.Fatal(err)
	}

	ts1 := m.Tilesets["ts1"]
	ts2 := m.Tilesets["ts2"]
	if ts2.FirstTileID < ts1.FirstTileID+ts1.TileCnt {
		t.Fatalf("imported tileset overlaps existing id range: ts1 [%d,%d), ts2 starts at %d",
			ts1.FirstTileID, ts1.FirstTileID+ts1.TileCnt, ts2.FirstTileID)
	}
	// The caller's tileset must not be mutated by the re-homing.
	if imported.FirstTileID != 1 {
		t.Errorf("import mutated its input tileset: first id %d", imported.FirstTileID)
	}
}
