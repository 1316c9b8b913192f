package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color serialized as "#rrggbb" or "#rrggbbaa" in map and
// definition files.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var ColorWhite = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". An empty string is opaque
// black.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return Color{A: 0xff}, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, Errorf(ErrParsing, "invalid color %q", s)
	}
	part := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(h[start:start+2], 16, 8)
		return uint8(v), err
	}
	var c Color
	var err error
	if c.R, err = part(0); err != nil {
		return Color{}, NewError(ErrParsing, err)
	}
	if c.G, err = part(2); err != nil {
		return Color{}, NewError(ErrParsing, err)
	}
	if c.B, err = part(4); err != nil {
		return Color{}, NewError(ErrParsing, err)
	}
	c.A = 0xff
	if len(h) == 8 {
		if c.A, err = part(6); err != nil {
			return Color{}, NewError(ErrParsing, err)
		}
	}
	return c, nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(data []byte) error {
	parsed, err := ParseColor(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
