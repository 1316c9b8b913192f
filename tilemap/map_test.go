package tilemap

import (
	"testing"

	"github.com/olefasting/fishfight/core"
)

func testMap() *Map {
	m := NewMap(core.NewSize(16, 16), core.USize{Width: 8, Height: 6})
	ground := NewLayer("ground", TileLayer, true, m.GridSize)
	props := NewLayer("props", ObjectLayer, false, m.GridSize)
	m.Layers["ground"] = ground
	m.Layers["props"] = props
	m.DrawOrder = []string{"ground", "props"}
	m.Tilesets["terrain"] = NewTileset("terrain", "terrain_tex", core.NewSize(64, 64), core.NewSize(16, 16), 1)
	return m
}

func TestMapCoordsRoundTrip(t *testing.T) {
	m := testMap()

	tests := []struct {
		name   string
		coords core.Coords
	}{
		{"origin", core.Coords{X: 0, Y: 0}},
		{"interior", core.Coords{X: 3, Y: 2}},
		{"last cell", core.Coords{X: 7, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := m.ToIndex(tt.coords)
			if got := m.ToCoordsFromIndex(idx); got != tt.coords {
				t.Fatalf("index round trip: got %v, want %v", got, tt.coords)
			}
			pos := m.ToPosition(tt.coords)
			if got := m.ToCoords(pos); got != tt.coords {
				t.Fatalf("position round trip: got %v, want %v", got, tt.coords)
			}
		})
	}
}

func TestMapToCoordsClamps(t *testing.T) {
	m := testMap()

	tests := []struct {
		name     string
		position core.Vec2
		want     core.Coords
	}{
		{"negative", core.Vec2{X: -50, Y: -50}, core.Coords{X: 0, Y: 0}},
		{"past right edge", core.Vec2{X: 10_000, Y: 0}, core.Coords{X: 7, Y: 0}},
		{"past bottom edge", core.Vec2{X: 0, Y: 10_000}, core.Coords{X: 0, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ToCoords(tt.position); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapTileAccess(t *testing.T) {
	m := testMap()
	coords := core.Coords{X: 2, Y: 1}

	if tile, err := m.TileAt("ground", coords); err != nil || tile != nil {
		t.Fatalf("empty cell: got tile %v, err %v", tile, err)
	}

	want := &Tile{TileID: 3, TilesetID: "terrain"}
	if err := m.SetTileAt("ground", coords, want); err != nil {
		t.Fatalf("set tile: %v", err)
	}
	got, err := m.TileAt("ground", coords)
	if err != nil {
		t.Fatalf("get tile: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := m.SetTileAt("props", coords, want); err == nil {
		t.Error("expected error setting tile on object layer")
	}
	if _, err := m.TileAt("missing", coords); core.KindOf(err) != core.ErrMap {
		t.Errorf("unknown layer: got %v, want map error", err)
	}
}

func TestMapNextFirstTileID(t *testing.T) {
	m := testMap()
	if got := m.NextFirstTileID(); got != 17 {
		t.Fatalf("got %d, want 17", got)
	}

	m.Tilesets["extra"] = NewTileset("extra", "extra_tex", core.NewSize(32, 32), core.NewSize(16, 16), 17)
	if got := m.NextFirstTileID(); got != 21 {
		t.Fatalf("after second tileset: got %d, want 21", got)
	}

	delete(m.Tilesets, "terrain")
	if got := m.NextFirstTileID(); got != 21 {
		t.Fatalf("ranges stay monotonic after delete: got %d, want 21", got)
	}
}

func TestMapValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Map)
		wantErr bool
	}{
		{"valid", func(m *Map) {}, false},
		{
			"draw order too short",
			func(m *Map) { m.DrawOrder = m.DrawOrder[:1] },
			true,
		},
		{
			"duplicate draw order entry",
			func(m *Map) { m.DrawOrder = []string{"ground", "ground"} },
			true,
		},
		{
			"draw order references unknown layer",
			func(m *Map) { m.DrawOrder = []string{"ground", "nope"} },
			true,
		},
		{
			"layer key and id mismatch",
			func(m *Map) { m.Layers["ground"].ID = "renamed" },
			true,
		},
		{
			"tile references unknown tileset",
			func(m *Map) {
				m.Layers["ground"].Tiles[0] = &Tile{TileID: 0, TilesetID: "nope"}
			},
			true,
		},
		{
			"tile id out of tileset range",
			func(m *Map) {
				m.Layers["ground"].Tiles[0] = &Tile{TileID: 99, TilesetID: "terrain"}
			},
			true,
		},
		{
			"object layer with tile data",
			func(m *Map) { m.Layers["props"].Tiles = make([]*Tile, 4) },
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMap()
			tt.mutate(m)
			err := m.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLayerClone(t *testing.T) {
	layer := NewLayer("ground", TileLayer, true, core.USize{Width: 2, Height: 2})
	layer.Tiles[1] = &Tile{TileID: 5, TilesetID: "terrain", Attributes: []string{"jumpthrough"}}

	clone := layer.Clone()
	clone.Tiles[1].TileID = 9
	clone.Tiles[1].Attributes[0] = "changed"

	if layer.Tiles[1].TileID != 5 {
		t.Error("clone shares tile with original")
	}
	if layer.Tiles[1].Attributes[0] != "jumpthrough" {
		t.Error("clone shares attribute slice with original")
	}
}

func TestTilesetContainsTileID(t *testing.T) {
	ts := NewTileset("terrain", "tex", core.NewSize(64, 32), core.NewSize(16, 16), 10)
	if ts.TileCnt != 8 {
		t.Fatalf("tile cnt: got %d, want 8", ts.TileCnt)
	}

	tests := []struct {
		id   uint32
		want bool
	}{
		{9, false},
		{10, true},
		{17, true},
		{18, false},
	}
	for _, tt := range tests {
		if got := ts.ContainsTileID(tt.id); got != tt.want {
			t.Errorf("ContainsTileID(%d): got %v, want %v", tt.id, got, tt.want)
		}
	}
}
