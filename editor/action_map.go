package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// UpdateBackgroundAction replaces the background color and parallax layers.
type UpdateBackgroundAction struct {
	Color  core.Color
	Layers []tilemap.BackgroundLayer

	prevColor  core.Color
	prevLayers []tilemap.BackgroundLayer
}

func (a *UpdateBackgroundAction) Apply(m *tilemap.Map) error {
	a.prevColor = m.BackgroundColor
	a.prevLayers = m.BackgroundLayers
	m.BackgroundColor = a.Color
	m.BackgroundLayers = append([]tilemap.BackgroundLayer(nil), a.Layers...)
	return nil
}

func (a *UpdateBackgroundAction) Undo(m *tilemap.Map) error {
	m.BackgroundColor = a.prevColor
	m.BackgroundLayers = a.prevLayers
	a.prevLayers = nil
	return nil
}

// ImportAction bulk-merges tilesets and optionally a background from
// another map as a single history entry. Imported tilesets are re-homed
// onto the next free ranges of the destination's tile-id space.
type ImportAction struct {
	Tilesets         []*tilemap.Tileset
	BackgroundColor  *core.Color
	BackgroundLayers []tilemap.BackgroundLayer

	importedIDs []string
	prevColor   core.Color
	prevLayers  []tilemap.BackgroundLayer
	replacedBg  bool
}

func (a *ImportAction) Apply(m *tilemap.Map) error {
	for _, tileset := range a.Tilesets {
		if _, ok := m.Tilesets[tileset.ID]; ok {
			return core.Errorf(core.ErrEditorAction, "import: tileset %q already exists", tileset.ID)
		}
	}

	a.importedIDs = nil
	for _, tileset := range a.Tilesets {
		imported := tileset.Clone()
		imported.FirstTileID = m.NextFirstTileID()
		m.Tilesets[imported.ID] = imported
		a.importedIDs = append(a.importedIDs, imported.ID)
	}

	a.replacedBg = false
	if a.BackgroundColor != nil {
		a.prevColor = m.BackgroundColor
		a.prevLayers = m.BackgroundLayers
		a.replacedBg = true
		m.BackgroundColor = *a.BackgroundColor
		m.BackgroundLayers = append([]tilemap.BackgroundLayer(nil), a.BackgroundLayers...)
	}
	return nil
}

func (a *ImportAction) Undo(m *tilemap.Map) error {
	for _, id := range a.importedIDs {
		if _, ok := m.Tilesets[id]; !ok {
			return core.Errorf(core.ErrEditorAction, "undo import: tileset %q does not exist", id)
		}
		delete(m.Tilesets, id)
	}
	a.importedIDs = nil
	if a.replacedBg {
		m.BackgroundColor = a.prevColor
		m.BackgroundLayers = a.prevLayers
		a.prevLayers = nil
		a.replacedBg = false
	}
	return nil
}
