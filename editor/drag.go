package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

type draggedKind int

const (
	draggedMapObject draggedKind = iota
	draggedSpawnPoint
)

// DraggedObject is the in-progress drag state, held across frames. It only
// mutates the map once, through a single command committed on release, so a
// drag produces exactly one history entry.
type DraggedObject struct {
	kind        draggedKind
	layerID     string
	index       int
	clickOffset core.Vec2
	start       core.Vec2
	position    core.Vec2
	moved       bool
}

func beginObjectDrag(layerID string, index int, objectPosition, cursor core.Vec2) *DraggedObject {
	return &DraggedObject{
		kind:        draggedMapObject,
		layerID:     layerID,
		index:       index,
		clickOffset: cursor.Sub(objectPosition),
		start:       objectPosition,
		position:    objectPosition,
	}
}

func beginSpawnPointDrag(index int, position, cursor core.Vec2) *DraggedObject {
	return &DraggedObject{
		kind:        draggedSpawnPoint,
		layerID:     "",
		index:       index,
		clickOffset: cursor.Sub(position),
		start:       position,
		position:    position,
	}
}

// update tracks the cursor while the button is held.
func (d *DraggedObject) update(cursor core.Vec2) {
	next := cursor.Sub(d.clickOffset)
	if next != d.position {
		d.moved = true
	}
	d.position = next
}

// Position returns the current drag position for rendering feedback.
func (d *DraggedObject) Position() core.Vec2 {
	return d.position
}

// commit returns the single command for this drag, or nil when the cursor
// never moved (a plain click, not a drag).
func (d *DraggedObject) commit(m *tilemap.Map, ctx *Context) Command {
	if !d.moved {
		return nil
	}
	position := snapPosition(m, ctx, d.position)
	switch d.kind {
	case draggedSpawnPoint:
		return MoveSpawnPointCmd{Index: d.index, Position: position}
	default:
		layer, ok := m.Layers[d.layerID]
		if !ok || d.index < 0 || d.index >= len(layer.Objects) {
			return nil
		}
		object := layer.Objects[d.index]
		return UpdateObjectCmd{
			LayerID:  d.layerID,
			Index:    d.index,
			ID:       object.ID,
			Kind:     object.Kind,
			Position: position,
		}
	}
}
