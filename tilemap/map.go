// Package tilemap holds the map document the editor and the game both
// operate on: layers in an explicit draw order, tilesets partitioning a
// global tile-id space, placed objects and spawn points.
package tilemap

import (
	"github.com/olefasting/fishfight/core"
)

// Map is the root document. DrawOrder is authoritative for rendering and
// hit-testing order and is always a permutation of the Layers key set.
type Map struct {
	BackgroundColor  core.Color         `json:"background_color"`
	BackgroundLayers []BackgroundLayer  `json:"background_layers"`
	Layers           map[string]*Layer  `json:"layers"`
	DrawOrder        []string           `json:"draw_order"`
	Tilesets         map[string]*Tileset `json:"tilesets"`
	SpawnPoints      []core.Vec2        `json:"spawn_points"`
	GridSize         core.USize         `json:"grid_size"`
	TileSize         core.Size          `json:"tile_size"`
	WorldOffset      core.Vec2          `json:"world_offset"`
}

// NewMap builds an empty map with the given tile and grid size.
func NewMap(tileSize core.Size, gridSize core.USize) *Map {
	return &Map{
		BackgroundColor: core.Color{R: 0x5b, G: 0x8c, B: 0xbe, A: 0xff},
		Layers:          make(map[string]*Layer),
		Tilesets:        make(map[string]*Tileset),
		GridSize:        gridSize,
		TileSize:        tileSize,
	}
}

// Size returns the map extent in pixels.
func (m *Map) Size() core.Size {
	return core.NewSize(
		float32(m.GridSize.Width)*m.TileSize.Width,
		float32(m.GridSize.Height)*m.TileSize.Height,
	)
}

// ToIndex converts tile coordinates to a row-major slice index.
func (m *Map) ToIndex(coords core.Coords) int {
	return int(coords.Y*m.GridSize.Width + coords.X)
}

// ToCoordsFromIndex is the inverse of ToIndex.
func (m *Map) ToCoordsFromIndex(index int) core.Coords {
	return core.Coords{
		X: uint32(index) % m.GridSize.Width,
		Y: uint32(index) / m.GridSize.Width,
	}
}

// ToCoords converts a world position to tile coordinates, clamped to the
// grid.
func (m *Map) ToCoords(position core.Vec2) core.Coords {
	p := position.Sub(m.WorldOffset)
	x := int(p.X / m.TileSize.Width)
	y := int(p.Y / m.TileSize.Height)
	return core.Coords{
		X: uint32(core.ClampI(x, 0, int(m.GridSize.Width)-1)),
		Y: uint32(core.ClampI(y, 0, int(m.GridSize.Height)-1)),
	}
}

// ToPosition converts tile coordinates to the world position of the tile's
// top-left corner.
func (m *Map) ToPosition(coords core.Coords) core.Vec2 {
	return m.WorldOffset.Add(core.Vec2{
		X: float32(coords.X) * m.TileSize.Width,
		Y: float32(coords.Y) * m.TileSize.Height,
	})
}

// ContainsCoords reports whether coords are within the grid.
func (m *Map) ContainsCoords(coords core.Coords) bool {
	return coords.X < m.GridSize.Width && coords.Y < m.GridSize.Height
}

// Layer returns the layer for id, or an error of kind ErrMap.
func (m *Map) Layer(id string) (*Layer, error) {
	if l, ok := m.Layers[id]; ok {
		return l, nil
	}
	return nil, core.Errorf(core.ErrMap, "no layer with id %q", id)
}

// Tileset returns the tileset for id, or an error of kind ErrMap.
func (m *Map) Tileset(id string) (*Tileset, error) {
	if t, ok := m.Tilesets[id]; ok {
		return t, nil
	}
	return nil, core.Errorf(core.ErrMap, "no tileset with id %q", id)
}

// TileAt returns the tile reference at coords on the given tile layer, nil
// when the cell is empty.
func (m *Map) TileAt(layerID string, coords core.Coords) (*Tile, error) {
	layer, err := m.Layer(layerID)
	if err != nil {
		return nil, err
	}
	if layer.Kind != TileLayer {
		return nil, core.Errorf(core.ErrMap, "layer %q is not a tile layer", layerID)
	}
	if !m.ContainsCoords(coords) {
		return nil, core.Errorf(core.ErrMap, "coords (%d, %d) outside grid", coords.X, coords.Y)
	}
	return layer.Tiles[m.ToIndex(coords)], nil
}

// SetTileAt writes (or clears, for nil) the tile reference at coords.
func (m *Map) SetTileAt(layerID string, coords core.Coords, tile *Tile) error {
	layer, err := m.Layer(layerID)
	if err != nil {
		return err
	}
	if layer.Kind != TileLayer {
		return core.Errorf(core.ErrMap, "layer %q is not a tile layer", layerID)
	}
	if !m.ContainsCoords(coords) {
		return core.Errorf(core.ErrMap, "coords (%d, %d) outside grid", coords.X, coords.Y)
	}
	layer.Tiles[m.ToIndex(coords)] = tile
	return nil
}

// DrawOrderIndex returns the position of id in the draw order, or -1.
func (m *Map) DrawOrderIndex(id string) int {
	for i, other := range m.DrawOrder {
		if other == id {
			return i
		}
	}
	return -1
}

// NextFirstTileID returns the first free id in the global tile-id space,
// i.e. one past the highest range currently claimed by any tileset.
func (m *Map) NextFirstTileID() uint32 {
	var next uint32 = 1
	for _, ts := range m.Tilesets {
		if end := ts.FirstTileID + ts.TileCnt; end > next {
			next = end
		}
	}
	return next
}

// Validate checks the cross-entity invariants: draw order is a permutation
// of the layer key set, objects sit on object layers, and every tile
// reference points at an existing tileset with the local id in range.
func (m *Map) Validate() error {
	if len(m.DrawOrder) != len(m.Layers) {
		return core.Errorf(core.ErrMap, "draw order has %d entries for %d layers", len(m.DrawOrder), len(m.Layers))
	}
	seen := make(map[string]bool, len(m.DrawOrder))
	for _, id := range m.DrawOrder {
		if seen[id] {
			return core.Errorf(core.ErrMap, "layer %q appears twice in draw order", id)
		}
		seen[id] = true
		if _, ok := m.Layers[id]; !ok {
			return core.Errorf(core.ErrMap, "draw order references unknown layer %q", id)
		}
	}
	for id, layer := range m.Layers {
		if layer.ID != id {
			return core.Errorf(core.ErrMap, "layer key %q does not match layer id %q", id, layer.ID)
		}
		switch layer.Kind {
		case TileLayer:
			for i, tile := range layer.Tiles {
				if tile == nil {
					continue
				}
				ts, ok := m.Tilesets[tile.TilesetID]
				if !ok {
					return core.Errorf(core.ErrMap, "layer %q tile %d references unknown tileset %q", id, i, tile.TilesetID)
				}
				if tile.TileID >= ts.TileCnt {
					return core.Errorf(core.ErrMap, "layer %q tile %d id %d out of range for tileset %q", id, i, tile.TileID, tile.TilesetID)
				}
			}
		case ObjectLayer:
			if len(layer.Tiles) != 0 {
				return core.Errorf(core.ErrMap, "object layer %q has tile data", id)
			}
		}
	}
	return nil
}
