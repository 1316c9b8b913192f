package editor

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olefasting/fishfight/core"
)

var (
	gridColor       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
	selectionColor  = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	spawnPointColor = color.RGBA{R: 0xe5, G: 0x4b, B: 0x4b, A: 0xc0}
	dragColor       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
)

// SetFace sets the font face used for the status line.
func (e *Editor) SetFace(face text.Face) {
	e.face = face
}

// Draw renders the map, grid, markers and selection feedback. It never
// mutates the map or the history.
func (e *Editor) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	e.camera.SetViewport(core.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))

	m := e.Map()
	m.DrawBackground(screen, e.textures, e.camera.Position, e.disableParallax)
	m.Draw(screen, e.textures, e.camera.Position, e.camera.Zoom)

	if e.ctx.ShouldDrawGrid {
		e.drawGrid(screen)
	}
	e.drawSpawnPoints(screen)
	e.drawSelection(screen)
	e.drawDragFeedback(screen)
	e.drawInfoMessage(screen)

	e.gui.Draw(screen)
}

func (e *Editor) drawGrid(screen *ebiten.Image) {
	m := e.Map()
	size := m.Size()
	topLeft := e.camera.ToScreen(m.WorldOffset)
	bottomRight := e.camera.ToScreen(m.WorldOffset.Add(size.ToVec2()))

	for x := uint32(0); x <= m.GridSize.Width; x++ {
		sx := e.camera.ToScreen(m.WorldOffset.Add(core.Vec2{X: float32(x) * m.TileSize.Width})).X
		vector.StrokeLine(screen, sx, topLeft.Y, sx, bottomRight.Y, 1, gridColor, false)
	}
	for y := uint32(0); y <= m.GridSize.Height; y++ {
		sy := e.camera.ToScreen(m.WorldOffset.Add(core.Vec2{Y: float32(y) * m.TileSize.Height})).Y
		vector.StrokeLine(screen, topLeft.X, sy, bottomRight.X, sy, 1, gridColor, false)
	}
}

func (e *Editor) drawSpawnPoints(screen *ebiten.Image) {
	m := e.Map()
	for i, position := range m.SpawnPoints {
		if e.drag != nil && e.drag.kind == draggedSpawnPoint && e.drag.index == i {
			continue
		}
		e.drawMarker(screen, position, spawnPointColor)
	}
}

func (e *Editor) drawSelection(screen *ebiten.Image) {
	m := e.Map()
	if sel := e.ctx.SelectedObject; sel != nil {
		if layer, ok := m.Layers[sel.LayerID]; ok && sel.Index < len(layer.Objects) {
			e.strokeMarker(screen, layer.Objects[sel.Index].Position, selectionColor)
		}
	}
	if sel := e.ctx.SelectedSpawnPoint; sel != nil && *sel < len(m.SpawnPoints) {
		e.strokeMarker(screen, m.SpawnPoints[*sel], selectionColor)
	}
}

func (e *Editor) drawDragFeedback(screen *ebiten.Image) {
	if e.drag == nil {
		return
	}
	e.drawMarker(screen, e.drag.Position(), dragColor)
}

func (e *Editor) drawMarker(screen *ebiten.Image, position core.Vec2, clr color.Color) {
	m := e.Map()
	p := e.camera.ToScreen(position)
	vector.DrawFilledRect(screen, p.X, p.Y, m.TileSize.Width*e.camera.Zoom, m.TileSize.Height*e.camera.Zoom, clr, false)
}

func (e *Editor) strokeMarker(screen *ebiten.Image, position core.Vec2, clr color.Color) {
	m := e.Map()
	p := e.camera.ToScreen(position)
	vector.StrokeRect(screen, p.X, p.Y, m.TileSize.Width*e.camera.Zoom, m.TileSize.Height*e.camera.Zoom, 2, clr, false)
}

func (e *Editor) drawInfoMessage(screen *ebiten.Image) {
	message := e.InfoMessage()
	if message == "" || e.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(screen.Bounds().Dy())-24)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, message, e.face, op)
}
