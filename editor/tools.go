package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// ToolKind is the closed set of editor tools.
type ToolKind int

const (
	ToolNone ToolKind = iota
	ToolTilePlacement
	ToolObjectPlacement
	ToolSpawnPointPlacement
	ToolEraser
)

func (k ToolKind) String() string {
	switch k {
	case ToolTilePlacement:
		return "tile placement"
	case ToolObjectPlacement:
		return "object placement"
	case ToolSpawnPointPlacement:
		return "spawn point placement"
	case ToolEraser:
		return "eraser"
	default:
		return "none"
	}
}

// Tool maps a cursor position to a command while its kind is selected.
// Continuous tools fire every frame the primary button is held; the rest
// fire once per press.
type Tool interface {
	Kind() ToolKind
	IsAvailable(m *tilemap.Map, ctx *Context) bool
	IsContinuous() bool
	Command(m *tilemap.Map, ctx *Context) Command
}

func defaultTools() map[ToolKind]Tool {
	tools := map[ToolKind]Tool{}
	for _, tool := range []Tool{
		tilePlacementTool{},
		objectPlacementTool{},
		spawnPointPlacementTool{},
		eraserTool{},
	} {
		tools[tool.Kind()] = tool
	}
	return tools
}

type tilePlacementTool struct{}

func (tilePlacementTool) Kind() ToolKind { return ToolTilePlacement }
func (tilePlacementTool) IsContinuous() bool { return true }

func (tilePlacementTool) IsAvailable(m *tilemap.Map, ctx *Context) bool {
	layer, ok := m.Layers[ctx.SelectedLayer]
	return ok && layer.Kind == tilemap.TileLayer && ctx.SelectedTileset != "" && ctx.SelectedTile != nil
}

func (t tilePlacementTool) Command(m *tilemap.Map, ctx *Context) Command {
	if !t.IsAvailable(m, ctx) {
		return nil
	}
	return PlaceTileCmd{
		TileID:    *ctx.SelectedTile,
		LayerID:   ctx.SelectedLayer,
		TilesetID: ctx.SelectedTileset,
		Coords:    m.ToCoords(ctx.CursorPosition),
	}
}

type eraserTool struct{}

func (eraserTool) Kind() ToolKind { return ToolEraser }
func (eraserTool) IsContinuous() bool { return true }

func (eraserTool) IsAvailable(m *tilemap.Map, ctx *Context) bool {
	layer, ok := m.Layers[ctx.SelectedLayer]
	return ok && layer.Kind == tilemap.TileLayer
}

func (t eraserTool) Command(m *tilemap.Map, ctx *Context) Command {
	if !t.IsAvailable(m, ctx) {
		return nil
	}
	coords := m.ToCoords(ctx.CursorPosition)
	if tile, err := m.TileAt(ctx.SelectedLayer, coords); err != nil || tile == nil {
		return nil
	}
	return RemoveTileCmd{LayerID: ctx.SelectedLayer, Coords: coords}
}

type objectPlacementTool struct{}

func (objectPlacementTool) Kind() ToolKind { return ToolObjectPlacement }
func (objectPlacementTool) IsContinuous() bool { return false }

func (objectPlacementTool) IsAvailable(m *tilemap.Map, ctx *Context) bool {
	layer, ok := m.Layers[ctx.SelectedLayer]
	return ok && layer.Kind == tilemap.ObjectLayer
}

func (t objectPlacementTool) Command(m *tilemap.Map, ctx *Context) Command {
	if !t.IsAvailable(m, ctx) {
		return nil
	}
	return OpenCreateObjectWindowCmd{
		Position: snapPosition(m, ctx, ctx.CursorPosition),
		LayerID:  ctx.SelectedLayer,
	}
}

type spawnPointPlacementTool struct{}

func (spawnPointPlacementTool) Kind() ToolKind { return ToolSpawnPointPlacement }
func (spawnPointPlacementTool) IsContinuous() bool { return false }

func (spawnPointPlacementTool) IsAvailable(m *tilemap.Map, ctx *Context) bool {
	return ctx.IsUserMap
}

func (t spawnPointPlacementTool) Command(m *tilemap.Map, ctx *Context) Command {
	if !t.IsAvailable(m, ctx) {
		return nil
	}
	return CreateSpawnPointCmd{Position: snapPosition(m, ctx, ctx.CursorPosition)}
}

func snapPosition(m *tilemap.Map, ctx *Context, position core.Vec2) core.Vec2 {
	if !ctx.ShouldSnapToGrid {
		return position
	}
	return m.ToPosition(m.ToCoords(position))
}
