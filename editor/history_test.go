package editor

import (
	"testing"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

func emptyMap() *tilemap.Map {
	return tilemap.NewMap(core.NewSize(16, 16), core.USize{Width: 8, Height: 8})
}

func mustApply(t *testing.T, h *History, m *tilemap.Map, actions ...UndoableAction) {
	t.Helper()
	for _, action := range actions {
		if err := h.Apply(action, m); err != nil {
			t.Fatalf("apply %T: %v", action, err)
		}
	}
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	m := emptyMap()
	h := NewHistory()

	mustApply(t, h, m,
		&CreateLayerAction{ID: "bg", Kind: tilemap.TileLayer, Index: 0},
		&CreateLayerAction{ID: "objects", Kind: tilemap.ObjectLayer, Index: 1},
		&CreateTilesetAction{ID: "ts1", TextureID: "tex", TextureSize: core.NewSize(64, 64)},
		&PlaceTileAction{TileID: 5, LayerID: "bg", TilesetID: "ts1", Coords: core.Coords{X: 2, Y: 3}},
		&CreateObjectAction{ID: "sword", Kind: tilemap.ObjectKindItem, Position: core.Vec2{X: 10, Y: 10}, LayerID: "objects"},
		&CreateSpawnPointAction{Position: core.Vec2{X: 40, Y: 40}},
	)

	n := h.Len()
	for i := 0; i < n; i++ {
		if err := h.Undo(m); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
	}

	// Back to the empty map.
	if len(m.Layers) != 0 || len(m.DrawOrder) != 0 || len(m.Tilesets) != 0 || len(m.SpawnPoints) != 0 {
		t.Fatalf("full undo did not restore empty map: %+v", m)
	}

	for i := 0; i < n; i++ {
		if err := h.Redo(m); err != nil {
			t.Fatalf("redo %d: %v", i, err)
		}
	}

	if len(m.DrawOrder) != 2 || m.DrawOrder[0] != "bg" || m.DrawOrder[1] != "objects" {
		t.Errorf("draw order after redo: %v", m.DrawOrder)
	}
	tile, err := m.TileAt("bg", core.Coords{X: 2, Y: 3})
	if err != nil || tile == nil || tile.TileID != 5 {
		t.Errorf("tile after redo: %v, %v", tile, err)
	}
	if len(m.Layers["objects"].Objects) != 1 {
		t.Errorf("objects after redo: %v", m.Layers["objects"].Objects)
	}
	if len(m.SpawnPoints) != 1 {
		t.Errorf("spawn points after redo: %v", m.SpawnPoints)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("map invalid after round trip: %v", err)
	}
}

func TestHistoryNoOpsAtEnds(t *testing.T) {
	m := emptyMap()
	h := NewHistory()

	if err := h.Undo(m); err != nil {
		t.Fatalf("undo on empty history: %v", err)
	}
	if err := h.Redo(m); err != nil {
		t.Fatalf("redo on empty history: %v", err)
	}

	mustApply(t, h, m, &CreateSpawnPointAction{Position: core.Vec2{X: 1, Y: 1}})
	if err := h.Redo(m); err != nil {
		t.Fatalf("redo at top of stack: %v", err)
	}
	if len(m.SpawnPoints) != 1 {
		t.Fatalf("redo at top must not re-apply: %v", m.SpawnPoints)
	}
}

func TestHistoryRedoTailDiscard(t *testing.T) {
	m := emptyMap()
	h := NewHistory()

	mustApply(t, h, m,
		&CreateSpawnPointAction{Position: core.Vec2{X: 1, Y: 0}},
		&CreateSpawnPointAction{Position: core.Vec2{X: 2, Y: 0}},
		&CreateSpawnPointAction{Position: core.Vec2{X: 3, Y: 0}},
	)

	// Undo two, apply a fresh action: those two are gone for good.
	if err := h.Undo(m); err != nil {
		t.Fatal(err)
	}
	if err := h.Undo(m); err != nil {
		t.Fatal(err)
	}
	mustApply(t, h, m, &CreateSpawnPointAction{Position: core.Vec2{X: 9, Y: 0}})

	if h.Len() != 2 {
		t.Fatalf("stack len: got %d, want 2", h.Len())
	}
	if err := h.Redo(m); err != nil {
		t.Fatal(err)
	}
	if len(m.SpawnPoints) != 2 {
		t.Fatalf("spawn points: got %v, want 2 entries", m.SpawnPoints)
	}
	if m.SpawnPoints[1].X != 9 {
		t.Errorf("second spawn point: got %v, want the fresh one at x=9", m.SpawnPoints[1])
	}
}

func TestHistoryFailedApplyLeavesStackUntouched(t *testing.T) {
	m := emptyMap()
	h := NewHistory()
	mustApply(t, h, m, &CreateSpawnPointAction{Position: core.Vec2{X: 1, Y: 1}})

	err := h.Apply(&DeleteLayerAction{ID: "missing"}, m)
	if err == nil {
		t.Fatal("expected error")
	}
	if core.KindOf(err) != core.ErrEditorAction {
		t.Errorf("error kind: got %v", err)
	}
	if h.Len() != 1 || h.Cursor() != 1 {
		t.Errorf("stack mutated by failed apply: len %d cursor %d", h.Len(), h.Cursor())
	}
}

func TestHistoryClear(t *testing.T) {
	m := emptyMap()
	h := NewHistory()
	mustApply(t, h, m, &CreateSpawnPointAction{Position: core.Vec2{X: 1, Y: 1}})

	h.Clear()
	if h.Len() != 0 || h.Cursor() != 0 {
		t.Fatalf("clear: len %d cursor %d", h.Len(), h.Cursor())
	}
	if err := h.Undo(m); err != nil {
		t.Fatalf("undo after clear: %v", err)
	}
	if len(m.SpawnPoints) != 1 {
		t.Fatal("undo after clear must not touch the map")
	}
}
