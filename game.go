package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/scene"
	"github.com/olefasting/fishfight/tilemap"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

const tickDt = float32(1.0 / 60.0)

type Game struct {
	frames int
	paused bool

	scene *scene.Scene
	level *Level
}

func NewGame(res *tilemap.Resource, textures *core.TextureStore, noParallax bool) *Game {
	level := NewLevel(res, textures, noParallax)

	g := &Game{
		scene: scene.New(),
		level: level,
	}
	g.scene.Add(level)
	return g
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	return g.scene.Update(tickDt)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	status := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	if g.paused {
		status += "    PAUSED (Escape resumes)"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
