package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/olefasting/fishfight/tilemap"
)

const testItemsYAML = `
- id: sword
  name: Sword
  sprite:
    texture_id: items
    size: { width: 32, height: 32 }
  uses: 0
  cooldown: 0.3
- id: musket
  name: Musket
  sprite:
    texture_id: items
    size: { width: 64, height: 32 }
  uses: 3
  cooldown: 0.8
`

const testDecorationsYAML = `
- id: seaweed
  name: Seaweed
  sprite:
    texture_id: decorations
    size: { width: 16, height: 32 }
`

func writeTestDefinitions(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"items.yaml":       testItemsYAML,
		"decorations.yaml": testDecorationsYAML,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	defs, err := Load(writeTestDefinitions(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(defs.Items) != 2 {
		t.Fatalf("items: got %d, want 2", len(defs.Items))
	}
	musket := defs.Items["musket"]
	if musket.Uses != 3 || musket.Sprite.Size.Width != 64 {
		t.Errorf("musket spec: got %+v", musket)
	}
	if len(defs.Decorations) != 1 {
		t.Errorf("decorations: got %d, want 1", len(defs.Decorations))
	}
	// environment.yaml is absent; the table stays empty.
	if len(defs.Environments) != 0 {
		t.Errorf("environments: got %d, want 0", len(defs.Environments))
	}
}

func TestDefinitionsLookups(t *testing.T) {
	defs, err := Load(writeTestDefinitions(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := defs.IDs(tilemap.ObjectKindItem); len(got) != 2 || got[0] != "musket" || got[1] != "sword" {
		t.Errorf("item ids: got %v", got)
	}
	if !defs.Contains(tilemap.ObjectKindDecoration, "seaweed") {
		t.Error("seaweed should be defined")
	}
	if defs.Contains(tilemap.ObjectKindEnvironment, "wind") {
		t.Error("wind should not be defined")
	}
	if _, ok := defs.Sprite(tilemap.ObjectKindItem, "sword"); !ok {
		t.Error("sword sprite should resolve")
	}
	if _, ok := defs.Sprite(tilemap.ObjectKindItem, "nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "items.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error")
	}
}
