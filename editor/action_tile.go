package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// PlaceTileAction writes a tile reference at a coordinate, capturing the
// previous cell value (possibly empty) for undo. TileID is local to the
// tileset.
type PlaceTileAction struct {
	TileID    uint32
	LayerID   string
	TilesetID string
	Coords    core.Coords

	prev *tilemap.Tile
}

func (a *PlaceTileAction) Apply(m *tilemap.Map) error {
	tileset, err := m.Tileset(a.TilesetID)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "place tile: %v", err)
	}
	if a.TileID >= tileset.TileCnt {
		return core.Errorf(core.ErrEditorAction, "place tile: tile id %d out of range for tileset %q", a.TileID, a.TilesetID)
	}
	prev, err := m.TileAt(a.LayerID, a.Coords)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "place tile: %v", err)
	}
	a.prev = prev
	return m.SetTileAt(a.LayerID, a.Coords, &tilemap.Tile{
		TileID:    a.TileID,
		TilesetID: a.TilesetID,
	})
}

func (a *PlaceTileAction) Undo(m *tilemap.Map) error {
	if err := m.SetTileAt(a.LayerID, a.Coords, a.prev); err != nil {
		return core.Errorf(core.ErrEditorAction, "undo place tile: %v", err)
	}
	a.prev = nil
	return nil
}

// RemoveTileAction clears the cell at a coordinate.
type RemoveTileAction struct {
	LayerID string
	Coords  core.Coords

	prev *tilemap.Tile
}

func (a *RemoveTileAction) Apply(m *tilemap.Map) error {
	prev, err := m.TileAt(a.LayerID, a.Coords)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "remove tile: %v", err)
	}
	a.prev = prev
	return m.SetTileAt(a.LayerID, a.Coords, nil)
}

func (a *RemoveTileAction) Undo(m *tilemap.Map) error {
	if err := m.SetTileAt(a.LayerID, a.Coords, a.prev); err != nil {
		return core.Errorf(core.ErrEditorAction, "undo remove tile: %v", err)
	}
	a.prev = nil
	return nil
}

// UpdateTileAttributesAction replaces the attribute list of a placed tile.
type UpdateTileAttributesAction struct {
	LayerID    string
	Coords     core.Coords
	Attributes []string

	prev []string
}

func (a *UpdateTileAttributesAction) Apply(m *tilemap.Map) error {
	tile, err := m.TileAt(a.LayerID, a.Coords)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "update tile attributes: %v", err)
	}
	if tile == nil {
		return core.Errorf(core.ErrEditorAction, "update tile attributes: no tile at (%d, %d)", a.Coords.X, a.Coords.Y)
	}
	a.prev = tile.Attributes
	tile.Attributes = append([]string(nil), a.Attributes...)
	return nil
}

func (a *UpdateTileAttributesAction) Undo(m *tilemap.Map) error {
	tile, err := m.TileAt(a.LayerID, a.Coords)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "undo update tile attributes: %v", err)
	}
	if tile == nil {
		return core.Errorf(core.ErrEditorAction, "undo update tile attributes: no tile at (%d, %d)", a.Coords.X, a.Coords.Y)
	}
	tile.Attributes = a.prev
	a.prev = nil
	return nil
}
