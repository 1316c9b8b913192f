package tilemap

import "github.com/olefasting/fishfight/core"

// Tileset describes one texture's slice of the global tile-id space. Tiles
// referencing this tileset carry local ids in [0, TileCnt); the global id
// of a local id is FirstTileID + id.
type Tileset struct {
	ID          string     `json:"id"`
	TextureID   string     `json:"texture_id"`
	TextureSize core.Size  `json:"texture_size"`
	TileSize    core.Size  `json:"tile_size"`
	GridSize    core.USize `json:"grid_size"`
	FirstTileID uint32     `json:"first_tile_id"`
	TileCnt     uint32     `json:"tile_cnt"`
	// AutotileMask marks, per tile, whether the tile participates in
	// autotiling. Its length always equals TileCnt.
	AutotileMask []bool `json:"autotile_mask,omitempty"`
}

// NewTileset derives grid and tile counts from the texture and tile sizes.
func NewTileset(id, textureID string, textureSize, tileSize core.Size, firstTileID uint32) *Tileset {
	grid := core.USize{
		Width:  uint32(textureSize.Width / tileSize.Width),
		Height: uint32(textureSize.Height / tileSize.Height),
	}
	cnt := grid.Width * grid.Height
	return &Tileset{
		ID:           id,
		TextureID:    textureID,
		TextureSize:  textureSize,
		TileSize:     tileSize,
		GridSize:     grid,
		FirstTileID:  firstTileID,
		TileCnt:      cnt,
		AutotileMask: make([]bool, cnt),
	}
}

// Clone deep-copies the tileset.
func (t *Tileset) Clone() *Tileset {
	res := *t
	res.AutotileMask = append([]bool(nil), t.AutotileMask...)
	return &res
}

// ContainsTileID reports whether the global tile id falls inside this
// tileset's range.
func (t *Tileset) ContainsTileID(globalID uint32) bool {
	return globalID >= t.FirstTileID && globalID < t.FirstTileID+t.TileCnt
}

// TextureCoords returns the pixel origin of the local tile id within the
// tileset texture.
func (t *Tileset) TextureCoords(localID uint32) core.Vec2 {
	if t.GridSize.Width == 0 {
		return core.Vec2{}
	}
	x := localID % t.GridSize.Width
	y := localID / t.GridSize.Width
	return core.Vec2{
		X: float32(x) * t.TileSize.Width,
		Y: float32(y) * t.TileSize.Height,
	}
}
