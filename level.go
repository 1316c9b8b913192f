package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/physics"
	"github.com/olefasting/fishfight/tilemap"
)

// Level is the playable scene node: the loaded map, its collision world and
// the player moving through it.
type Level struct {
	res      *tilemap.Resource
	world    *physics.World
	textures *core.TextureStore
	player   *Player

	camera     core.Vec2
	noParallax bool
}

func NewLevel(res *tilemap.Resource, textures *core.TextureStore, noParallax bool) *Level {
	world := physics.NewWorld(res.Map)

	l := &Level{
		res:        res,
		world:      world,
		textures:   textures,
		noParallax: noParallax,
	}
	l.player = NewPlayer(world, l.spawnPosition())
	return l
}

// spawnPosition returns the first spawn point, or the map center when the
// map has none.
func (l *Level) spawnPosition() core.Vec2 {
	m := l.res.Map
	if len(m.SpawnPoints) > 0 {
		return m.SpawnPoints[0]
	}
	size := m.Size()
	return m.WorldOffset.Add(core.Vec2{X: size.Width / 2, Y: size.Height / 2})
}

func (l *Level) Update(dt float32) error {
	l.player.HandleInput()
	return nil
}

func (l *Level) FixedUpdate(dt float32) error {
	l.player.FixedUpdate()
	l.world.Step(float64(dt))
	l.followPlayer()
	return nil
}

// followPlayer centers the camera on the player, clamped to the map bounds.
func (l *Level) followPlayer() {
	m := l.res.Map
	size := m.Size()
	target := l.player.Position().Sub(core.Vec2{X: baseWidth / 2, Y: baseHeight / 2})

	maxX := m.WorldOffset.X + size.Width - baseWidth
	maxY := m.WorldOffset.Y + size.Height - baseHeight
	if maxX < m.WorldOffset.X {
		maxX = m.WorldOffset.X
	}
	if maxY < m.WorldOffset.Y {
		maxY = m.WorldOffset.Y
	}
	target.X = core.ClampF(target.X, m.WorldOffset.X, maxX)
	target.Y = core.ClampF(target.Y, m.WorldOffset.Y, maxY)
	l.camera = target
}

func (l *Level) Draw(screen *ebiten.Image) {
	m := l.res.Map
	m.DrawBackground(screen, l.textures, l.camera, l.noParallax)
	m.Draw(screen, l.textures, l.camera, 1)
	l.player.Draw(screen, l.camera)
}
