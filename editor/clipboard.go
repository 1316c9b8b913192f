package editor

import (
	"encoding/json"
	"sync"

	"golang.design/x/clipboard"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

var (
	clipboardInit sync.Once
	clipboardErr  error
)

func initClipboard() error {
	clipboardInit.Do(func() {
		clipboardErr = clipboard.Init()
	})
	return clipboardErr
}

// clipboardObject is the wire form of a copied map object.
type clipboardObject struct {
	Object tilemap.MapObject `json:"object"`
}

// copySelectedObject writes the selected object to the system clipboard as
// JSON, so objects can be moved between maps and editor instances.
func (e *Editor) copySelectedObject() error {
	sel := e.ctx.SelectedObject
	if sel == nil {
		return core.Errorf(core.ErrEditorAction, "copy: no object selected")
	}
	layer, err := e.Map().Layer(sel.LayerID)
	if err != nil {
		return err
	}
	if sel.Index < 0 || sel.Index >= len(layer.Objects) {
		return core.Errorf(core.ErrEditorAction, "copy: stale object selection")
	}
	if err := initClipboard(); err != nil {
		return core.Errorf(core.ErrInput, "clipboard unavailable: %v", err)
	}
	data, err := json.Marshal(clipboardObject{Object: layer.Objects[sel.Index]})
	if err != nil {
		return core.NewError(core.ErrGeneral, err)
	}
	clipboard.Write(clipboard.FmtText, data)
	e.ShowInfo("copied object " + layer.Objects[sel.Index].ID)
	return nil
}

// pasteObject creates a clipboard object at the cursor, on the selected
// object layer, as a normal undoable create.
func (e *Editor) pasteObject() error {
	layer, err := e.Map().Layer(e.ctx.SelectedLayer)
	if err != nil {
		return err
	}
	if layer.Kind != tilemap.ObjectLayer {
		return core.Errorf(core.ErrEditorAction, "paste: layer %q is not an object layer", layer.ID)
	}
	if err := initClipboard(); err != nil {
		return core.Errorf(core.ErrInput, "clipboard unavailable: %v", err)
	}
	data := clipboard.Read(clipboard.FmtText)
	var copied clipboardObject
	if err := json.Unmarshal(data, &copied); err != nil {
		return core.Errorf(core.ErrParsing, "paste: clipboard does not hold an object")
	}
	return e.history.Apply(&CreateObjectAction{
		ID:       copied.Object.ID,
		Kind:     copied.Object.Kind,
		Position: snapPosition(e.Map(), &e.ctx, e.ctx.CursorPosition),
		LayerID:  layer.ID,
	}, e.Map())
}
