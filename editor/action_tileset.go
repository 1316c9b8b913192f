package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// CreateTilesetAction registers a tileset for a texture, claiming the next
// free range of the global tile-id space.
type CreateTilesetAction struct {
	ID          string
	TextureID   string
	TextureSize core.Size
}

func (a *CreateTilesetAction) Apply(m *tilemap.Map) error {
	if _, ok := m.Tilesets[a.ID]; ok {
		return core.Errorf(core.ErrEditorAction, "create tileset: tileset %q already exists", a.ID)
	}
	m.Tilesets[a.ID] = tilemap.NewTileset(a.ID, a.TextureID, a.TextureSize, m.TileSize, m.NextFirstTileID())
	return nil
}

func (a *CreateTilesetAction) Undo(m *tilemap.Map) error {
	if _, ok := m.Tilesets[a.ID]; !ok {
		return core.Errorf(core.ErrEditorAction, "undo create tileset: tileset %q does not exist", a.ID)
	}
	delete(m.Tilesets, a.ID)
	return nil
}

// DeleteTilesetAction removes a tileset along with every tile reference
// into it, so the map never holds dangling tileset ids.
type DeleteTilesetAction struct {
	ID string

	tileset *tilemap.Tileset
	tiles   []removedTile
}

type removedTile struct {
	layerID string
	index   int
	tile    *tilemap.Tile
}

func (a *DeleteTilesetAction) Apply(m *tilemap.Map) error {
	tileset, err := m.Tileset(a.ID)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "delete tileset: %v", err)
	}
	a.tileset = tileset
	a.tiles = nil
	for _, layerID := range m.DrawOrder {
		layer := m.Layers[layerID]
		if layer.Kind != tilemap.TileLayer {
			continue
		}
		for i, tile := range layer.Tiles {
			if tile != nil && tile.TilesetID == a.ID {
				a.tiles = append(a.tiles, removedTile{layerID: layerID, index: i, tile: tile})
				layer.Tiles[i] = nil
			}
		}
	}
	delete(m.Tilesets, a.ID)
	return nil
}

func (a *DeleteTilesetAction) Undo(m *tilemap.Map) error {
	if a.tileset == nil {
		return core.Errorf(core.ErrEditorAction, "undo delete tileset: no captured tileset")
	}
	m.Tilesets[a.ID] = a.tileset
	for _, removed := range a.tiles {
		layer, err := m.Layer(removed.layerID)
		if err != nil {
			return core.Errorf(core.ErrEditorAction, "undo delete tileset: %v", err)
		}
		layer.Tiles[removed.index] = removed.tile
	}
	a.tileset = nil
	a.tiles = nil
	return nil
}

// UpdateTilesetAction changes a tileset's texture and autotile mask.
type UpdateTilesetAction struct {
	ID           string
	TextureID    string
	AutotileMask []bool

	prev *tilemap.Tileset
}

func (a *UpdateTilesetAction) Apply(m *tilemap.Map) error {
	tileset, err := m.Tileset(a.ID)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "update tileset: %v", err)
	}
	if len(a.AutotileMask) != int(tileset.TileCnt) {
		return core.Errorf(core.ErrEditorAction, "update tileset: autotile mask has %d entries for %d tiles", len(a.AutotileMask), tileset.TileCnt)
	}
	a.prev = tileset.Clone()
	tileset.TextureID = a.TextureID
	tileset.AutotileMask = append([]bool(nil), a.AutotileMask...)
	return nil
}

func (a *UpdateTilesetAction) Undo(m *tilemap.Map) error {
	if a.prev == nil {
		return core.Errorf(core.ErrEditorAction, "undo update tileset: no captured tileset")
	}
	m.Tilesets[a.ID] = a.prev
	a.prev = nil
	return nil
}
