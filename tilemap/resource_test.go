package tilemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/olefasting/fishfight/core"
)

func TestMapNameToFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Test Map", "test_map.json"},
		{"  Padded  ", "padded.json"},
		{"Weird!@# Name", "weird_name.json"},
		{"", "unnamed.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapNameToFilename(tt.name); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreCreateSaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	res, err := store.Create("Test Map", "a test map", testMap())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !res.Meta.IsUserMap {
		t.Error("created map should be a user map")
	}
	if _, err := os.Stat(filepath.Join(dir, "test_map.json")); err != nil {
		t.Fatalf("map file not written: %v", err)
	}

	if _, err := store.Create("Test Map", "", testMap()); core.KindOf(err) != core.ErrMap {
		t.Fatalf("duplicate create: got %v, want map error", err)
	}

	res.Map.SpawnPoints = append(res.Map.SpawnPoints, core.Vec2{X: 32, Y: 48})
	if err := store.Save(res); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewStore(dir)
	if err := reloaded.LoadDir(); err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("len: got %d, want 1", reloaded.Len())
	}
	got, err := reloaded.Get("test_map.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Meta.Name != "Test Map" {
		t.Errorf("name: got %q", got.Meta.Name)
	}
	if len(got.Map.SpawnPoints) != 1 {
		t.Errorf("spawn points: got %d, want 1", len(got.Map.SpawnPoints))
	}
	if len(got.Map.Layers) != 2 || len(got.Map.DrawOrder) != 2 {
		t.Errorf("layers survived round trip: got %d layers, %d draw order entries", len(got.Map.Layers), len(got.Map.DrawOrder))
	}
}

func TestStoreSaveRejectsNonUserMap(t *testing.T) {
	store := NewStore(t.TempDir())
	res := &Resource{
		Meta: Meta{Name: "builtin", Path: "builtin.json"},
		Map:  testMap(),
	}
	if err := store.Save(res); core.KindOf(err) != core.ErrMap {
		t.Fatalf("got %v, want map error", err)
	}
}

func TestStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if _, err := store.Create("Doomed", "", testMap()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Delete("doomed.json"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("len after delete: got %d, want 0", store.Len())
	}
	if _, err := os.Stat(filepath.Join(dir, "doomed.json")); !os.IsNotExist(err) {
		t.Errorf("map file still on disk: %v", err)
	}
	if err := store.Delete("doomed.json"); core.KindOf(err) != core.ErrMap {
		t.Errorf("double delete: got %v, want map error", err)
	}
}

func TestLoadResourceRejectsInvalidMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	// Draw order references a layer that does not exist.
	data := `{"meta":{"name":"broken"},"map":{"layers":{},"draw_order":["ghost"],"tilesets":{},"grid_size":{"width":4,"height":4},"tile_size":{"width":16,"height":16}}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadResource(path); core.KindOf(err) != core.ErrMap {
		t.Fatalf("got %v, want map error", err)
	}
}
