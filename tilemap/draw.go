package tilemap

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olefasting/fishfight/core"
)

// Draw renders all visible tile layers back to front, transformed by a
// camera offset and scale. Object layers are drawn by whoever owns the
// object definition tables (the game scene or the editor), not here.
func (m *Map) Draw(screen *ebiten.Image, textures *core.TextureStore, cameraPosition core.Vec2, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	for _, layerID := range m.DrawOrder {
		layer := m.Layers[layerID]
		if layer == nil || !layer.IsVisible || layer.Kind != TileLayer {
			continue
		}
		m.drawTileLayer(screen, textures, layer, cameraPosition, scale)
	}
}

func (m *Map) drawTileLayer(screen *ebiten.Image, textures *core.TextureStore, layer *Layer, cameraPosition core.Vec2, scale float32) {
	for i, tile := range layer.Tiles {
		if tile == nil {
			continue
		}
		tileset := m.Tilesets[tile.TilesetID]
		if tileset == nil {
			continue
		}
		tex := textures.TryGet(tileset.TextureID)
		if tex == nil {
			continue
		}

		src := tileset.TextureCoords(tile.TileID)
		rect := image.Rect(
			int(src.X),
			int(src.Y),
			int(src.X+tileset.TileSize.Width),
			int(src.Y+tileset.TileSize.Height),
		)
		sub, ok := tex.Image.SubImage(rect).(*ebiten.Image)
		if !ok {
			continue
		}

		position := m.ToPosition(m.ToCoordsFromIndex(i)).Sub(cameraPosition)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(m.TileSize.Width/tileset.TileSize.Width),
			float64(m.TileSize.Height/tileset.TileSize.Height),
		)
		op.GeoM.Translate(float64(position.X), float64(position.Y))
		op.GeoM.Scale(float64(scale), float64(scale))
		screen.DrawImage(sub, op)
	}
}
