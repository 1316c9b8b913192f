package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// CreateLayerAction adds a new empty layer at a draw-order index.
type CreateLayerAction struct {
	ID           string
	Kind         tilemap.LayerKind
	HasCollision bool
	Index        int
}

func (a *CreateLayerAction) Apply(m *tilemap.Map) error {
	if _, ok := m.Layers[a.ID]; ok {
		return core.Errorf(core.ErrEditorAction, "create layer: layer %q already exists", a.ID)
	}
	m.Layers[a.ID] = tilemap.NewLayer(a.ID, a.Kind, a.HasCollision, m.GridSize)
	m.DrawOrder = insertDrawOrder(m.DrawOrder, a.ID, a.Index)
	return nil
}

func (a *CreateLayerAction) Undo(m *tilemap.Map) error {
	if _, ok := m.Layers[a.ID]; !ok {
		return core.Errorf(core.ErrEditorAction, "undo create layer: layer %q does not exist", a.ID)
	}
	delete(m.Layers, a.ID)
	m.DrawOrder = removeDrawOrder(m.DrawOrder, a.ID)
	return nil
}

// DeleteLayerAction removes a layer, capturing its contents and draw-order
// position so undo can reinsert it at the same index.
type DeleteLayerAction struct {
	ID string

	layer *tilemap.Layer
	index int
}

func (a *DeleteLayerAction) Apply(m *tilemap.Map) error {
	layer, err := m.Layer(a.ID)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "delete layer: %v", err)
	}
	a.layer = layer
	a.index = m.DrawOrderIndex(a.ID)
	delete(m.Layers, a.ID)
	m.DrawOrder = removeDrawOrder(m.DrawOrder, a.ID)
	return nil
}

func (a *DeleteLayerAction) Undo(m *tilemap.Map) error {
	if a.layer == nil {
		return core.Errorf(core.ErrEditorAction, "undo delete layer: no captured layer")
	}
	m.Layers[a.ID] = a.layer
	m.DrawOrder = insertDrawOrder(m.DrawOrder, a.ID, a.index)
	a.layer = nil
	return nil
}

// UpdateLayerAction changes a layer's visibility and collision flags.
type UpdateLayerAction struct {
	ID           string
	IsVisible    bool
	HasCollision bool

	prevVisible   bool
	prevCollision bool
}

func (a *UpdateLayerAction) Apply(m *tilemap.Map) error {
	layer, err := m.Layer(a.ID)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "update layer: %v", err)
	}
	a.prevVisible = layer.IsVisible
	a.prevCollision = layer.HasCollision
	layer.IsVisible = a.IsVisible
	if layer.Kind == tilemap.TileLayer {
		layer.HasCollision = a.HasCollision
	}
	return nil
}

func (a *UpdateLayerAction) Undo(m *tilemap.Map) error {
	layer, err := m.Layer(a.ID)
	if err != nil {
		return core.Errorf(core.ErrEditorAction, "undo update layer: %v", err)
	}
	layer.IsVisible = a.prevVisible
	layer.HasCollision = a.prevCollision
	return nil
}

// SetLayerDrawOrderIndexAction moves a layer within the draw order.
type SetLayerDrawOrderIndexAction struct {
	ID    string
	Index int

	prevIndex int
}

func (a *SetLayerDrawOrderIndexAction) Apply(m *tilemap.Map) error {
	a.prevIndex = m.DrawOrderIndex(a.ID)
	if a.prevIndex < 0 {
		return core.Errorf(core.ErrEditorAction, "set draw order index: layer %q not in draw order", a.ID)
	}
	m.DrawOrder = removeDrawOrder(m.DrawOrder, a.ID)
	m.DrawOrder = insertDrawOrder(m.DrawOrder, a.ID, a.Index)
	return nil
}

func (a *SetLayerDrawOrderIndexAction) Undo(m *tilemap.Map) error {
	if m.DrawOrderIndex(a.ID) < 0 {
		return core.Errorf(core.ErrEditorAction, "undo set draw order index: layer %q not in draw order", a.ID)
	}
	m.DrawOrder = removeDrawOrder(m.DrawOrder, a.ID)
	m.DrawOrder = insertDrawOrder(m.DrawOrder, a.ID, a.prevIndex)
	return nil
}

func insertDrawOrder(order []string, id string, index int) []string {
	if index > len(order) {
		index = len(order)
	}
	if index < 0 {
		index = 0
	}
	order = append(order, "")
	copy(order[index+1:], order[index:])
	order[index] = id
	return order
}

func removeDrawOrder(order []string, id string) []string {
	for i, other := range order {
		if other == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
