package tilemap

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/olefasting/fishfight/core"
)

// Linter runs a user-supplied script against a map before it is saved and
// collects warnings. The script defines a `lint(map)` function; it reports
// problems by calling `warn(message)`.
type Linter struct {
	mu       sync.Mutex
	source   []byte
	warnings []string
}

const lintDispatchScript = `
lint(__map)
`

// NewLinter compiles-checks the lint script at path.
func NewLinter(path string) (*Linter, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewError(core.ErrFile, err)
	}
	return NewLinterFromSource(source)
}

// NewLinterFromSource builds a linter from script source.
func NewLinterFromSource(source []byte) (*Linter, error) {
	l := &Linter{source: source}
	// Compile once up front so broken scripts fail at load, not at save.
	if _, err := l.compile(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Linter) compile() (*tengo.Compiled, error) {
	src := string(l.source) + "\n" + lintDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__map", map[string]any{})
	_ = script.Add("warn", &tengo.UserFunction{Name: "warn", Value: l.warnFn})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, core.Errorf(core.ErrParsing, "compile lint script: %v", err)
	}
	return compiled, nil
}

func (l *Linter) warnFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 {
		return tengo.UndefinedValue, nil
	}
	msg := strings.Trim(args[0].String(), "\"")
	if msg != "" {
		l.warnings = append(l.warnings, msg)
	}
	return tengo.UndefinedValue, nil
}

// Run lints m and returns the collected warnings.
func (l *Linter) Run(m *Map) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = nil

	compiled, err := l.compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Set("__map", mapToScriptValue(m)); err != nil {
		return nil, core.NewError(core.ErrGeneral, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, core.Errorf(core.ErrGeneral, "run lint script: %v", err)
	}
	return l.warnings, nil
}

// mapToScriptValue builds the read-only view of the map handed to scripts.
func mapToScriptValue(m *Map) map[string]any {
	layers := make([]any, 0, len(m.DrawOrder))
	for _, id := range m.DrawOrder {
		layer := m.Layers[id]
		if layer == nil {
			continue
		}
		tileCnt := 0
		for _, tile := range layer.Tiles {
			if tile != nil {
				tileCnt++
			}
		}
		layers = append(layers, map[string]any{
			"id":            layer.ID,
			"kind":          layer.Kind.String(),
			"has_collision": layer.HasCollision,
			"is_visible":    layer.IsVisible,
			"tile_cnt":      tileCnt,
			"object_cnt":    len(layer.Objects),
		})
	}

	tilesets := make([]any, 0, len(m.Tilesets))
	for _, id := range sortedTilesetIDs(m) {
		ts := m.Tilesets[id]
		tilesets = append(tilesets, map[string]any{
			"id":            ts.ID,
			"texture_id":    ts.TextureID,
			"first_tile_id": int(ts.FirstTileID),
			"tile_cnt":      int(ts.TileCnt),
		})
	}

	return map[string]any{
		"grid_width":      int(m.GridSize.Width),
		"grid_height":     int(m.GridSize.Height),
		"spawn_point_cnt": len(m.SpawnPoints),
		"layers":          layers,
		"tilesets":        tilesets,
	}
}

func sortedTilesetIDs(m *Map) []string {
	ids := make([]string, 0, len(m.Tilesets))
	for id := range m.Tilesets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
