package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

const doubleClickWindow = 0.25

type clickTargetKind int

const (
	clickTargetNone clickTargetKind = iota
	clickTargetObject
	clickTargetSpawnPoint
	clickTargetTile
)

type clickTarget struct {
	kind    clickTargetKind
	layerID string
	index   int
	coords  core.Coords
}

// Update samples input and dispatches commands. All map and history
// mutation happens synchronously here.
func (e *Editor) Update(dt float32) error {
	e.input.Advance(PollInput())
	return e.handleFrame(dt)
}

// FixedUpdate applies camera movement at a fixed timestep.
func (e *Editor) FixedUpdate(dt float32) error {
	e.camera.FixedUpdate(dt)
	return nil
}

func (e *Editor) handleFrame(dt float32) error {
	if e.infoTimer > 0 {
		e.infoTimer -= dt
	}
	e.clickTimer += dt

	frame := e.input.Current
	cursorWorld := e.camera.ToWorld(frame.CursorScreen)
	e.ctx.CursorPosition = cursorWorld

	for _, cmd := range e.gui.Update(e.Map(), &e.ctx) {
		e.Apply(cmd)
	}

	e.handleShortcuts(frame)
	e.handleCamera(frame)

	overGui := e.gui.Contains(frame.CursorScreen) || e.gui.ContextMenuContains(frame.CursorScreen)

	if e.input.SecondaryJustPressed() && !overGui {
		e.gui.OpenContextMenu(frame.CursorScreen)
	}

	if e.input.PrimaryJustPressed() && !overGui {
		e.gui.CloseContextMenu()
		e.handlePrimaryPressed(cursorWorld)
	} else if frame.PrimaryDown && e.drag != nil {
		e.drag.update(cursorWorld)
		e.camera.PanEdge(frame.CursorScreen)
	} else if frame.PrimaryDown && !overGui {
		e.handleContinuousTool()
	}

	if e.input.PrimaryJustReleased() && e.drag != nil {
		if cmd := e.drag.commit(e.Map(), &e.ctx); cmd != nil {
			e.Apply(cmd)
		}
		e.drag = nil
	}

	return nil
}

func (e *Editor) handleShortcuts(frame InputFrame) {
	switch {
	case frame.UndoPressed:
		e.Apply(UndoCmd{})
	case frame.RedoPressed:
		e.Apply(RedoCmd{})
	case frame.SaveAsPressed:
		e.Apply(OpenSaveMapWindowCmd{})
	case frame.SavePressed:
		e.Apply(SaveMapCmd{})
	case frame.LoadPressed:
		e.Apply(OpenLoadMapWindowCmd{})
	case frame.ToggleSnapPressed:
		e.Apply(ToggleSnapToGridCmd{})
	case frame.ToggleGridPressed:
		e.Apply(ToggleGridCmd{})
	case frame.ToggleParallaxPressed:
		e.Apply(ToggleParallaxCmd{})
	case frame.MenuPressed:
		e.Apply(OpenMenuCmd{})
	case frame.DeletePressed:
		e.deleteSelection()
	case frame.CopyPressed:
		e.Apply(CopySelectedObjectCmd{})
	case frame.PastePressed:
		e.Apply(PasteObjectCmd{})
	}
}

func (e *Editor) deleteSelection() {
	if sel := e.ctx.SelectedObject; sel != nil {
		e.Apply(DeleteObjectCmd{LayerID: sel.LayerID, Index: sel.Index})
		return
	}
	if sel := e.ctx.SelectedSpawnPoint; sel != nil {
		e.Apply(DeleteSpawnPointCmd{Index: *sel})
	}
}

func (e *Editor) handleCamera(frame InputFrame) {
	if !frame.Pan.IsZero() {
		e.camera.Pan(frame.Pan)
	}
	if frame.MiddleDown {
		delta := frame.CursorScreen.Sub(e.input.Previous.CursorScreen)
		e.camera.Position = e.camera.Position.Sub(delta.Div(e.camera.Zoom))
	}
	if frame.Scroll != 0 {
		e.camera.ZoomBy(frame.Scroll)
	}
}

func (e *Editor) handleContinuousTool() {
	tool, ok := e.tools[e.ctx.SelectedTool]
	if !ok || !tool.IsContinuous() {
		return
	}
	if cmd := tool.Command(e.Map(), &e.ctx); cmd != nil {
		e.Apply(cmd)
	}
}

func (e *Editor) handlePrimaryPressed(cursor core.Vec2) {
	if e.ctx.SelectedTool != ToolNone {
		if tool, ok := e.tools[e.ctx.SelectedTool]; ok {
			if cmd := tool.Command(e.Map(), &e.ctx); cmd != nil {
				e.Apply(cmd)
			}
		}
		return
	}

	target := e.hitTest(cursor)
	isDoubleClick := e.clickTimer < doubleClickWindow && target == e.lastClickTarget && target.kind != clickTargetNone
	e.lastClickTarget = target
	e.clickTimer = 0

	switch target.kind {
	case clickTargetObject:
		if isDoubleClick {
			e.Apply(OpenObjectPropertiesWindowCmd{LayerID: target.layerID, Index: target.index})
			return
		}
		e.Apply(SelectObjectCmd{LayerID: target.layerID, Index: target.index})
		layer := e.Map().Layers[target.layerID]
		e.drag = beginObjectDrag(target.layerID, target.index, layer.Objects[target.index].Position, cursor)
	case clickTargetSpawnPoint:
		if isDoubleClick {
			return
		}
		e.Apply(SelectSpawnPointCmd{Index: target.index})
		e.drag = beginSpawnPointDrag(target.index, e.Map().SpawnPoints[target.index], cursor)
	case clickTargetTile:
		if isDoubleClick {
			e.Apply(OpenTilePropertiesWindowCmd{LayerID: target.layerID, Coords: target.coords})
			return
		}
		e.Apply(SelectLayerCmd{ID: target.layerID})
	default:
		// Nothing under the cursor clears all selections; the repair pass
		// re-defaults the layer.
		e.ctx.SelectedObject = nil
		e.ctx.SelectedSpawnPoint = nil
		e.ctx.SelectedTileset = ""
		e.ctx.SelectedTile = nil
		e.ctx.SelectedLayer = ""
		e.updateContext()
	}
}

// hitTest resolves what sits under a world-space point, in priority order:
// object layers (selected layer first, then front to back), spawn points,
// tile layers. The hit rect for objects and spawn points is one tile.
func (e *Editor) hitTest(point core.Vec2) clickTarget {
	m := e.Map()
	hitSize := m.TileSize

	layerIDs := make([]string, 0, len(m.DrawOrder))
	if e.ctx.SelectedLayer != "" {
		layerIDs = append(layerIDs, e.ctx.SelectedLayer)
	}
	for i := len(m.DrawOrder) - 1; i >= 0; i-- {
		if m.DrawOrder[i] != e.ctx.SelectedLayer {
			layerIDs = append(layerIDs, m.DrawOrder[i])
		}
	}

	for _, layerID := range layerIDs {
		layer := m.Layers[layerID]
		if layer == nil || layer.Kind != tilemap.ObjectLayer || !layer.IsVisible {
			continue
		}
		for i := len(layer.Objects) - 1; i >= 0; i-- {
			object := layer.Objects[i]
			rect := core.NewRect(object.Position.X, object.Position.Y, hitSize.Width, hitSize.Height)
			if rect.Contains(point) {
				return clickTarget{kind: clickTargetObject, layerID: layerID, index: i}
			}
		}
	}

	for i := len(m.SpawnPoints) - 1; i >= 0; i-- {
		position := m.SpawnPoints[i]
		rect := core.NewRect(position.X, position.Y, hitSize.Width, hitSize.Height)
		if rect.Contains(point) {
			return clickTarget{kind: clickTargetSpawnPoint, index: i}
		}
	}

	coords := m.ToCoords(point)
	for _, layerID := range layerIDs {
		layer := m.Layers[layerID]
		if layer == nil || layer.Kind != tilemap.TileLayer || !layer.IsVisible {
			continue
		}
		if tile, err := m.TileAt(layerID, coords); err == nil && tile != nil {
			return clickTarget{kind: clickTargetTile, layerID: layerID, coords: coords}
		}
	}

	return clickTarget{}
}
