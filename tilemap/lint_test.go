package tilemap

import (
	"testing"

	"github.com/olefasting/fishfight/core"
)

const testLintScript = `
lint := func(m) {
	if m.spawn_point_cnt < 2 {
		warn("maps should have at least two spawn points")
	}
	for layer in m.layers {
		if layer.kind == "tile_layer" && layer.tile_cnt == 0 {
			warn("tile layer '" + layer.id + "' is empty")
		}
	}
}
`

func TestLinterRun(t *testing.T) {
	linter, err := NewLinterFromSource([]byte(testLintScript))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	m := testMap()
	warnings, err := linter.Run(m)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings: got %v, want 2 entries", warnings)
	}

	m.SpawnPoints = []core.Vec2{{X: 0, Y: 0}, {X: 32, Y: 0}}
	if err := m.SetTileAt("ground", core.Coords{X: 0, Y: 0}, &Tile{TilesetID: "terrain"}); err != nil {
		t.Fatal(err)
	}

	warnings, err = linter.Run(m)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings after fixes: got %v, want none", warnings)
	}
}

func TestLinterRejectsBrokenScript(t *testing.T) {
	if _, err := NewLinterFromSource([]byte("lint := func(m) {")); err == nil {
		t.Fatal("expected compile error")
	}
}
