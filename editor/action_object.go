package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// CreateObjectAction appends an object to an object layer.
type CreateObjectAction struct {
	ID       string
	Kind     tilemap.ObjectKind
	Position core.Vec2
	LayerID  string
}

func (a *CreateObjectAction) Apply(m *tilemap.Map) error {
	layer, err := objectLayer(m, a.LayerID, "create object")
	if err != nil {
		return err
	}
	layer.Objects = append(layer.Objects, tilemap.MapObject{
		ID:       a.ID,
		Kind:     a.Kind,
		Position: a.Position,
	})
	return nil
}

func (a *CreateObjectAction) Undo(m *tilemap.Map) error {
	layer, err := objectLayer(m, a.LayerID, "undo create object")
	if err != nil {
		return err
	}
	if len(layer.Objects) == 0 {
		return core.Errorf(core.ErrEditorAction, "undo create object: layer %q has no objects", a.LayerID)
	}
	layer.Objects = layer.Objects[:len(layer.Objects)-1]
	return nil
}

// DeleteObjectAction removes the object at an index, shifting later indices
// down by one. Undo reinserts at the same index.
type DeleteObjectAction struct {
	LayerID string
	Index   int

	object tilemap.MapObject
}

func (a *DeleteObjectAction) Apply(m *tilemap.Map) error {
	layer, err := objectLayer(m, a.LayerID, "delete object")
	if err != nil {
		return err
	}
	if a.Index < 0 || a.Index >= len(layer.Objects) {
		return core.Errorf(core.ErrEditorAction, "delete object: index %d out of range on layer %q", a.Index, a.LayerID)
	}
	a.object = layer.Objects[a.Index]
	layer.Objects = append(layer.Objects[:a.Index], layer.Objects[a.Index+1:]...)
	return nil
}

func (a *DeleteObjectAction) Undo(m *tilemap.Map) error {
	layer, err := objectLayer(m, a.LayerID, "undo delete object")
	if err != nil {
		return err
	}
	if a.Index < 0 || a.Index > len(layer.Objects) {
		return core.Errorf(core.ErrEditorAction, "undo delete object: index %d out of range on layer %q", a.Index, a.LayerID)
	}
	layer.Objects = append(layer.Objects, tilemap.MapObject{})
	copy(layer.Objects[a.Index+1:], layer.Objects[a.Index:])
	layer.Objects[a.Index] = a.object
	return nil
}

// UpdateObjectAction replaces an object's id, kind and position in place.
type UpdateObjectAction struct {
	LayerID  string
	Index    int
	ID       string
	Kind     tilemap.ObjectKind
	Position core.Vec2

	prev tilemap.MapObject
}

func (a *UpdateObjectAction) Apply(m *tilemap.Map) error {
	layer, err := objectLayer(m, a.LayerID, "update object")
	if err != nil {
		return err
	}
	if a.Index < 0 || a.Index >= len(layer.Objects) {
		return core.Errorf(core.ErrEditorAction, "update object: index %d out of range on layer %q", a.Index, a.LayerID)
	}
	a.prev = layer.Objects[a.Index]
	layer.Objects[a.Index] = tilemap.MapObject{
		ID:       a.ID,
		Kind:     a.Kind,
		Position: a.Position,
	}
	return nil
}

func (a *UpdateObjectAction) Undo(m *tilemap.Map) error {
	layer, err := objectLayer(m, a.LayerID, "undo update object")
	if err != nil {
		return err
	}
	if a.Index < 0 || a.Index >= len(layer.Objects) {
		return core.Errorf(core.ErrEditorAction, "undo update object: index %d out of range on layer %q", a.Index, a.LayerID)
	}
	layer.Objects[a.Index] = a.prev
	return nil
}

func objectLayer(m *tilemap.Map, layerID, op string) (*tilemap.Layer, error) {
	layer, err := m.Layer(layerID)
	if err != nil {
		return nil, core.Errorf(core.ErrEditorAction, "%s: %v", op, err)
	}
	if layer.Kind != tilemap.ObjectLayer {
		return nil, core.Errorf(core.ErrEditorAction, "%s: layer %q is not an object layer", op, layerID)
	}
	return layer, nil
}
