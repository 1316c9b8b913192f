package physics

import (
	"testing"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

func collisionMap(t *testing.T) *tilemap.Map {
	t.Helper()
	m := tilemap.NewMap(core.NewSize(16, 16), core.USize{Width: 6, Height: 4})
	ground := tilemap.NewLayer("ground", tilemap.TileLayer, true, m.GridSize)
	m.Layers["ground"] = ground
	m.DrawOrder = []string{"ground"}
	m.Tilesets["terrain"] = tilemap.NewTileset("terrain", "tex", core.NewSize(64, 64), core.NewSize(16, 16), 1)
	return m
}

func setTile(t *testing.T, m *tilemap.Map, x, y uint32, attrs ...string) {
	t.Helper()
	tile := &tilemap.Tile{TilesetID: "terrain", Attributes: attrs}
	if err := m.SetTileAt("ground", core.Coords{X: x, Y: y}, tile); err != nil {
		t.Fatal(err)
	}
}

func TestNewWorldMergesContiguousTiles(t *testing.T) {
	m := collisionMap(t)
	// A full bottom row merges into a single box.
	for x := uint32(0); x < m.GridSize.Width; x++ {
		setTile(t, m, x, 3)
	}

	w := NewWorld(m)
	// One merged box plus the four boundary segments.
	if got := w.StaticShapeCnt(); got != 5 {
		t.Fatalf("shape cnt: got %d, want 5", got)
	}
}

func TestNewWorldSeparatesDisjointRuns(t *testing.T) {
	m := collisionMap(t)
	setTile(t, m, 0, 3)
	setTile(t, m, 1, 3)
	setTile(t, m, 4, 3)

	w := NewWorld(m)
	// Two runs, two boxes, plus bounds.
	if got := w.StaticShapeCnt(); got != 6 {
		t.Fatalf("shape cnt: got %d, want 6", got)
	}
}

func TestNewWorldJumpThroughStaysSeparate(t *testing.T) {
	m := collisionMap(t)
	setTile(t, m, 2, 2, AttrJumpThrough)
	setTile(t, m, 3, 2, AttrJumpThrough)

	w := NewWorld(m)
	// Jump-through tiles produce one segment each; no merging.
	if got := w.StaticShapeCnt(); got != 6 {
		t.Fatalf("shape cnt: got %d, want 6", got)
	}
}

func TestNewWorldSkipsNonCollisionLayers(t *testing.T) {
	m := collisionMap(t)
	m.Layers["ground"].HasCollision = false
	setTile(t, m, 0, 3)

	w := NewWorld(m)
	if got := w.StaticShapeCnt(); got != 4 {
		t.Fatalf("shape cnt: got %d, want 4 (bounds only)", got)
	}
}

func TestAddBodyAndStep(t *testing.T) {
	m := collisionMap(t)
	for x := uint32(0); x < m.GridSize.Width; x++ {
		setTile(t, m, x, 3)
	}

	w := NewWorld(m)
	body := w.AddBody(core.Vec2{X: 16, Y: 0}, core.NewSize(12, 12))

	before := body.Position().Y
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}
	if body.Position().Y <= before {
		t.Fatalf("body should fall under gravity: before %.2f, after %.2f", before, body.Position().Y)
	}
}
