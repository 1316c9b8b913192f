package tilemap

import (
	"fmt"

	"github.com/olefasting/fishfight/core"
)

// LayerKind distinguishes tile layers from object layers. A layer is always
// exactly one of the two.
type LayerKind int

const (
	TileLayer LayerKind = iota
	ObjectLayer
)

func (k LayerKind) String() string {
	if k == ObjectLayer {
		return "object_layer"
	}
	return "tile_layer"
}

func (k LayerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *LayerKind) UnmarshalText(data []byte) error {
	switch string(data) {
	case "tile_layer":
		*k = TileLayer
	case "object_layer":
		*k = ObjectLayer
	default:
		return core.Errorf(core.ErrParsing, "unknown layer kind %q", data)
	}
	return nil
}

// Tile is a single cell's reference into a tileset.
type Tile struct {
	TileID     uint32   `json:"tile_id"`
	TilesetID  string   `json:"tileset_id"`
	Attributes []string `json:"attributes,omitempty"`
}

// Layer is one entry of a map's layer set. Tile layers own a dense,
// row-major slice of optional tile references sized GridSize; object layers
// own an ordered object list.
type Layer struct {
	ID           string      `json:"id"`
	Kind         LayerKind   `json:"kind"`
	HasCollision bool        `json:"has_collision"`
	IsVisible    bool        `json:"is_visible"`
	GridSize     core.USize  `json:"grid_size"`
	Tiles        []*Tile     `json:"tiles,omitempty"`
	Objects      []MapObject `json:"objects,omitempty"`
}

// NewLayer builds an empty layer of the given kind. Collision only applies
// to tile layers.
func NewLayer(id string, kind LayerKind, hasCollision bool, gridSize core.USize) *Layer {
	l := &Layer{
		ID:           id,
		Kind:         kind,
		IsVisible:    true,
		GridSize:     gridSize,
	}
	if kind == TileLayer {
		l.HasCollision = hasCollision
		l.Tiles = make([]*Tile, gridSize.Width*gridSize.Height)
	}
	return l
}

// Clone deep-copies the layer, including tiles and objects.
func (l *Layer) Clone() *Layer {
	res := &Layer{
		ID:           l.ID,
		Kind:         l.Kind,
		HasCollision: l.HasCollision,
		IsVisible:    l.IsVisible,
		GridSize:     l.GridSize,
	}
	if l.Tiles != nil {
		res.Tiles = make([]*Tile, len(l.Tiles))
		for i, t := range l.Tiles {
			if t != nil {
				c := *t
				c.Attributes = append([]string(nil), t.Attributes...)
				res.Tiles[i] = &c
			}
		}
	}
	if l.Objects != nil {
		res.Objects = make([]MapObject, len(l.Objects))
		copy(res.Objects, l.Objects)
	}
	return res
}

func (l *Layer) String() string {
	return fmt.Sprintf("%s (%s)", l.ID, l.Kind)
}
