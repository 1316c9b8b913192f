// Package physics builds a chipmunk space from a map's collision layers.
// The editor uses it to count static bodies for its status line; the game
// steps it for players and items.
package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

const (
	CollisionTypeBody cp.CollisionType = iota + 1
	CollisionTypeSolid
	CollisionTypeJumpThrough
)

const defaultGravity = 2.5

// AttrJumpThrough marks a tile as passable from below.
const AttrJumpThrough = "jumpthrough"

// World wraps a cp.Space built from the collision tile layers of a map.
type World struct {
	space    *cp.Space
	shapeCnt int
}

// NewWorld builds the static collision geometry for m. Contiguous solid
// tiles are merged into larger boxes so the space holds fewer static shapes
// than one per tile.
func NewWorld(m *tilemap.Map) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: defaultGravity * float64(m.TileSize.Height)})

	w := &World{space: space}
	for _, layerID := range m.DrawOrder {
		layer := m.Layers[layerID]
		if layer == nil || layer.Kind != tilemap.TileLayer || !layer.HasCollision {
			continue
		}
		w.buildLayerShapes(m, layer)
	}
	w.buildBounds(m)
	return w
}

func (w *World) buildLayerShapes(m *tilemap.Map, layer *tilemap.Layer) {
	width := int(m.GridSize.Width)
	height := int(m.GridSize.Height)
	processed := make([]bool, width*height)

	solid := func(idx int) bool {
		if idx < 0 || idx >= len(layer.Tiles) || processed[idx] {
			return false
		}
		tile := layer.Tiles[idx]
		return tile != nil && !hasAttr(tile, AttrJumpThrough)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] {
				continue
			}
			tile := layer.Tiles[idx]
			if tile == nil {
				processed[idx] = true
				continue
			}

			origin := m.ToPosition(core.Coords{X: uint32(x), Y: uint32(y)})
			x0 := float64(origin.X)
			y0 := float64(origin.Y)

			// Jump-through platforms stay as individual one-way segments
			// along the tile's top edge.
			if hasAttr(tile, AttrJumpThrough) {
				seg := cp.NewSegment(
					w.space.StaticBody,
					cp.Vector{X: x0, Y: y0},
					cp.Vector{X: x0 + float64(m.TileSize.Width), Y: y0},
					1,
				)
				seg.SetFriction(0.8)
				seg.SetCollisionType(CollisionTypeJumpThrough)
				w.space.AddShape(seg)
				w.shapeCnt++
				processed[idx] = true
				continue
			}

			// Greedily expand a rectangle over contiguous solid tiles,
			// width first, then height.
			rw := 1
			for x+rw < width && solid(y*width+(x+rw)) {
				rw++
			}

			rh := 1
		heightLoop:
			for y+rh < height {
				for xi := x; xi < x+rw; xi++ {
					if !solid((y+rh)*width + xi) {
						break heightLoop
					}
				}
				rh++
			}

			bb := cp.BB{
				L: x0,
				B: y0,
				R: x0 + float64(rw)*float64(m.TileSize.Width),
				T: y0 + float64(rh)*float64(m.TileSize.Height),
			}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(CollisionTypeSolid)
			w.space.AddShape(shape)
			w.shapeCnt++

			for yy := y; yy < y+rh; yy++ {
				for xx := x; xx < x+rw; xx++ {
					processed[yy*width+xx] = true
				}
			}
		}
	}
}

func (w *World) buildBounds(m *tilemap.Map) {
	size := m.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	x0 := float64(m.WorldOffset.X)
	y0 := float64(m.WorldOffset.Y)
	x1 := x0 + float64(size.Width)
	y1 := y0 + float64(size.Height)
	segments := [][2]cp.Vector{
		{{X: x0, Y: y0}, {X: x1, Y: y0}},
		{{X: x0, Y: y1}, {X: x1, Y: y1}},
		{{X: x0, Y: y0}, {X: x0, Y: y1}},
		{{X: x1, Y: y0}, {X: x1, Y: y1}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg[0], seg[1], 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(CollisionTypeSolid)
		w.space.AddShape(shape)
		w.shapeCnt++
	}
}

func hasAttr(tile *tilemap.Tile, attr string) bool {
	for _, a := range tile.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// Space exposes the underlying chipmunk space for body attachment.
func (w *World) Space() *cp.Space {
	return w.space
}

// StaticShapeCnt returns how many static shapes the map produced.
func (w *World) StaticShapeCnt() int {
	return w.shapeCnt
}

// AddBody attaches a dynamic box body at position.
func (w *World) AddBody(position core.Vec2, size core.Size) *cp.Body {
	mass := 1.0
	moment := cp.MomentForBox(mass, float64(size.Width), float64(size.Height))
	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{
		X: float64(position.X + size.Width/2),
		Y: float64(position.Y + size.Height/2),
	})
	shape := cp.NewBox(body, float64(size.Width), float64(size.Height), 0)
	shape.SetFriction(0)
	shape.SetCollisionType(CollisionTypeBody)
	w.space.AddBody(body)
	w.space.AddShape(shape)
	return body
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}
