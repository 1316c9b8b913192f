// Package gamedata loads the YAML definition tables that map object ids
// refer to. The map document only stores an object's kind and id; size,
// sprite and behavior come from these tables.
package gamedata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

type SpriteSpec struct {
	TextureID string    `yaml:"texture_id"`
	Size      core.Size `yaml:"size"`
	Offset    core.Vec2 `yaml:"offset"`
	FrameCnt  int       `yaml:"frame_cnt"`
	FPS       float64   `yaml:"fps"`
}

type ItemSpec struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Sprite   SpriteSpec `yaml:"sprite"`
	Uses     int        `yaml:"uses"`
	Cooldown float64    `yaml:"cooldown"`
}

type DecorationSpec struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`
}

type EnvironmentSpec struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`
	// Force applied to bodies inside the prop's area, e.g. wind or water.
	Force core.Vec2 `yaml:"force"`
	Area  core.Size `yaml:"area"`
}

// Definitions holds every object definition table, keyed by id.
type Definitions struct {
	Items        map[string]ItemSpec
	Decorations  map[string]DecorationSpec
	Environments map[string]EnvironmentSpec
}

func LoadSpec[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("gamedata: load %s: %w", path, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("gamedata: unmarshal %s: %w", path, err)
	}

	return spec, nil
}

// Load reads items.yaml, decorations.yaml and environment.yaml from dir.
// Missing files leave the corresponding table empty.
func Load(dir string) (*Definitions, error) {
	defs := &Definitions{
		Items:        make(map[string]ItemSpec),
		Decorations:  make(map[string]DecorationSpec),
		Environments: make(map[string]EnvironmentSpec),
	}

	items, err := loadTable[ItemSpec](filepath.Join(dir, "items.yaml"))
	if err != nil {
		return nil, err
	}
	for _, spec := range items {
		defs.Items[spec.ID] = spec
	}

	decorations, err := loadTable[DecorationSpec](filepath.Join(dir, "decorations.yaml"))
	if err != nil {
		return nil, err
	}
	for _, spec := range decorations {
		defs.Decorations[spec.ID] = spec
	}

	environments, err := loadTable[EnvironmentSpec](filepath.Join(dir, "environment.yaml"))
	if err != nil {
		return nil, err
	}
	for _, spec := range environments {
		defs.Environments[spec.ID] = spec
	}

	return defs, nil
}

func loadTable[T any](path string) ([]T, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadSpec[[]T](path)
}

// IDs lists the defined ids for kind, sorted, for the editor's object
// creation menus.
func (d *Definitions) IDs(kind tilemap.ObjectKind) []string {
	var ids []string
	switch kind {
	case tilemap.ObjectKindItem:
		for id := range d.Items {
			ids = append(ids, id)
		}
	case tilemap.ObjectKindDecoration:
		for id := range d.Decorations {
			ids = append(ids, id)
		}
	case tilemap.ObjectKindEnvironment:
		for id := range d.Environments {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Contains reports whether an id is defined for kind.
func (d *Definitions) Contains(kind tilemap.ObjectKind, id string) bool {
	switch kind {
	case tilemap.ObjectKindItem:
		_, ok := d.Items[id]
		return ok
	case tilemap.ObjectKindDecoration:
		_, ok := d.Decorations[id]
		return ok
	case tilemap.ObjectKindEnvironment:
		_, ok := d.Environments[id]
		return ok
	}
	return false
}

// Sprite returns the sprite spec for an object, for drawing placed objects.
func (d *Definitions) Sprite(kind tilemap.ObjectKind, id string) (SpriteSpec, bool) {
	switch kind {
	case tilemap.ObjectKindItem:
		if spec, ok := d.Items[id]; ok {
			return spec.Sprite, true
		}
	case tilemap.ObjectKindDecoration:
		if spec, ok := d.Decorations[id]; ok {
			return spec.Sprite, true
		}
	case tilemap.ObjectKindEnvironment:
		if spec, ok := d.Environments[id]; ok {
			return spec.Sprite, true
		}
	}
	return SpriteSpec{}, false
}
