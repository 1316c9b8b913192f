package tilemap

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olefasting/fishfight/core"
)

// BackgroundLayer is one parallax-scrolled backdrop image. Depth scales how
// strongly the camera position shifts the layer; zero pins it to the world.
type BackgroundLayer struct {
	TextureID string    `json:"texture_id"`
	Depth     float32   `json:"depth"`
	Offset    core.Vec2 `json:"offset"`
}

// DrawBackground fills the background color and draws the parallax layers
// back to front. With parallax disabled, layers draw at their plain offset.
func (m *Map) DrawBackground(screen *ebiten.Image, textures *core.TextureStore, cameraPosition core.Vec2, disableParallax bool) {
	screen.Fill(m.BackgroundColor.RGBA())

	for _, bg := range m.BackgroundLayers {
		tex := textures.TryGet(bg.TextureID)
		if tex == nil {
			continue
		}
		position := m.WorldOffset.Add(bg.Offset)
		if !disableParallax {
			position = position.Sub(cameraPosition.Mul(bg.Depth))
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(position.X), float64(position.Y))
		screen.DrawImage(tex.Image, op)
	}
}
