package tilemap

import "github.com/olefasting/fishfight/core"

// ObjectKind selects which external definition table resolves an object's
// id: items, decorations, or environment props. Only the kind and id are
// stored in the map; the capability set behind them lives in gamedata.
type ObjectKind int

const (
	ObjectKindItem ObjectKind = iota
	ObjectKindDecoration
	ObjectKindEnvironment
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectKindDecoration:
		return "decoration"
	case ObjectKindEnvironment:
		return "environment"
	default:
		return "item"
	}
}

func (k ObjectKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ObjectKind) UnmarshalText(data []byte) error {
	switch string(data) {
	case "item":
		*k = ObjectKindItem
	case "decoration":
		*k = ObjectKindDecoration
	case "environment":
		*k = ObjectKindEnvironment
	default:
		return core.Errorf(core.ErrParsing, "unknown object kind %q", data)
	}
	return nil
}

// ObjectKinds lists all kinds, in menu order.
func ObjectKinds() []ObjectKind {
	return []ObjectKind{ObjectKindItem, ObjectKindDecoration, ObjectKindEnvironment}
}

// MapObject is a placed instance on an object layer. Its owning layer is
// implicit through containment in that layer's object list.
type MapObject struct {
	ID       string     `json:"id"`
	Kind     ObjectKind `json:"kind"`
	Position core.Vec2  `json:"position"`
}
