package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/physics"
)

const (
	playerWidth  = 12
	playerHeight = 24
	moveSpeed    = 160
	jumpImpulse  = 360
	// A jump pressed slightly before landing still fires on touchdown, and
	// ground contact lingers a few frames so jumps work off ledge edges.
	jumpBufferFrames  = 9
	groundGraceFrames = 6
)

// Player is a physics-driven box steered with the keyboard.
type Player struct {
	body *cp.Body

	moveX       float64
	jumpBuffer  int
	groundGrace int
}

func NewPlayer(world *physics.World, spawn core.Vec2) *Player {
	body := world.AddBody(
		core.Vec2{X: spawn.X - playerWidth/2, Y: spawn.Y - playerHeight},
		core.NewSize(playerWidth, playerHeight),
	)
	// Keep the box upright; rotation is meaningless for a platformer body.
	body.SetMoment(math.Inf(1))

	p := &Player{body: body}

	solid := world.Space().NewCollisionHandler(physics.CollisionTypeBody, physics.CollisionTypeSolid)
	solid.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		if arb.Normal().Y > 0.5 {
			p.groundGrace = groundGraceFrames
		}
		return true
	}

	jumpThrough := world.Space().NewCollisionHandler(physics.CollisionTypeBody, physics.CollisionTypeJumpThrough)
	jumpThrough.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		// One-way platform: ignore contact while moving up through it.
		if p.body.Velocity().Y < 0 {
			return false
		}
		if arb.Normal().Y > 0.5 {
			p.groundGrace = groundGraceFrames
		}
		return true
	}

	return p
}

// HandleInput samples the keyboard once per frame.
func (p *Player) HandleInput() {
	p.moveX = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		p.moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		p.moveX += 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		p.jumpBuffer = jumpBufferFrames
	}
}

// FixedUpdate applies the sampled input to the body ahead of the physics
// step.
func (p *Player) FixedUpdate() {
	velocity := p.body.Velocity()
	velocity.X = p.moveX * moveSpeed
	p.body.SetVelocity(velocity.X, velocity.Y)

	if p.jumpBuffer > 0 && p.groundGrace > 0 {
		p.body.SetVelocity(velocity.X, -jumpImpulse)
		p.jumpBuffer = 0
		p.groundGrace = 0
	}

	if p.jumpBuffer > 0 {
		p.jumpBuffer--
	}
	if p.groundGrace > 0 {
		p.groundGrace--
	}
}

// Position returns the body center in world pixels.
func (p *Player) Position() core.Vec2 {
	pos := p.body.Position()
	return core.Vec2{X: float32(pos.X), Y: float32(pos.Y)}
}

func (p *Player) Draw(screen *ebiten.Image, camera core.Vec2) {
	pos := p.Position().Sub(camera)
	vector.DrawFilledRect(
		screen,
		pos.X-playerWidth/2,
		pos.Y-playerHeight/2,
		playerWidth,
		playerHeight,
		color.RGBA{0xff, 0xa5, 0x00, 0xff},
		false,
	)
}
