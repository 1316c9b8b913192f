package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// SelectedObject identifies one object by layer and positional index.
type SelectedObject struct {
	LayerID string
	Index   int
}

// Context is the derived selection snapshot handed to tools and the gui.
// It is recomputed after every command; only the repair pass below mutates
// the selection fields outside of explicit select commands.
type Context struct {
	SelectedTool       ToolKind
	SelectedLayer      string
	SelectedTileset    string
	SelectedTile       *uint32
	SelectedObject     *SelectedObject
	SelectedSpawnPoint *int

	CursorPosition   core.Vec2
	IsUserMap        bool
	IsTiledMap       bool
	ShouldSnapToGrid bool
	ShouldDrawGrid   bool
}

// repair is the fixed-order consistency pass run after every command. It is
// idempotent and never fails; invalid selections are cleared, never
// rejected.
func (c *Context) repair(m *tilemap.Map, tools map[ToolKind]Tool) {
	// Layer: clear a dangling selection, then default to the first layer
	// in draw order.
	if c.SelectedLayer != "" && m.DrawOrderIndex(c.SelectedLayer) < 0 {
		c.SelectedLayer = ""
	}
	if c.SelectedLayer == "" && len(m.DrawOrder) > 0 {
		c.SelectedLayer = m.DrawOrder[0]
	}

	// Kind exclusivity: tile layers carry no object selection, object
	// layers carry no tileset/tile selection.
	if layer, ok := m.Layers[c.SelectedLayer]; ok {
		switch layer.Kind {
		case tilemap.TileLayer:
			c.SelectedObject = nil
		case tilemap.ObjectLayer:
			c.SelectedTileset = ""
			c.SelectedTile = nil
		}
	}

	// An object selection must point at an existing object.
	if sel := c.SelectedObject; sel != nil {
		layer, ok := m.Layers[sel.LayerID]
		if !ok || layer.Kind != tilemap.ObjectLayer || sel.Index < 0 || sel.Index >= len(layer.Objects) {
			c.SelectedObject = nil
		}
	}
	if sel := c.SelectedSpawnPoint; sel != nil {
		if *sel < 0 || *sel >= len(m.SpawnPoints) {
			c.SelectedSpawnPoint = nil
		}
	}

	// Tileset and tile bounds.
	if c.SelectedTileset != "" {
		tileset, ok := m.Tilesets[c.SelectedTileset]
		if !ok {
			c.SelectedTileset = ""
			c.SelectedTile = nil
		} else if c.SelectedTile != nil && *c.SelectedTile >= tileset.TileCnt {
			c.SelectedTile = nil
		}
	} else {
		c.SelectedTile = nil
	}

	// Tool availability.
	if c.SelectedTool != ToolNone {
		tool, ok := tools[c.SelectedTool]
		if !ok || !tool.IsAvailable(m, c) {
			c.SelectedTool = ToolNone
		}
	}
}
