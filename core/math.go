package core

import "math"

// Vec2 is a 2D point or direction in world or screen pixels.
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func NewVec2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Mul(s float32) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

func (v Vec2) Div(s float32) Vec2 { return Vec2{X: v.X / s, Y: v.Y / s} }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Clamp limits v component-wise to the box [min, max].
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{
		X: ClampF(v.X, min.X, max.X),
		Y: ClampF(v.Y, min.Y, max.Y),
	}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func NewSize(w, h float32) Size { return Size{Width: w, Height: h} }

func (s Size) ToVec2() Vec2 { return Vec2{X: s.Width, Y: s.Height} }

// USize is a width/height pair in whole cells.
type USize struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Coords is a tile coordinate within a map grid.
type Coords struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

func NewRect(x, y, w, h float32) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

func (r Rect) Point() Vec2 { return Vec2{X: r.X, Y: r.Y} }

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width && r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func ClampF(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func ClampI(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
