package editor

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

const messageTimeout = 2.5

// Editor owns the open map resource, the undo history and all selection
// state. Tools and gui windows only ever see borrowed references handed to
// them per call.
type Editor struct {
	res     *tilemap.Resource
	history *History
	ctx     Context
	tools   map[ToolKind]Tool

	gui      Gui
	store    Store
	textures *core.TextureStore
	linter   *tilemap.Linter

	camera *Camera
	input  Input
	drag   *DraggedObject
	face   text.Face

	infoMessage     string
	infoTimer       float32
	clickTimer      float32
	lastClickTarget clickTarget

	disableParallax bool

	onLifecycle func(LifecycleEvent)
}

// Params carries the collaborators an editor needs.
type Params struct {
	Resource    *tilemap.Resource
	Gui         Gui
	Store       Store
	Textures    *core.TextureStore
	Linter      *tilemap.Linter
	OnLifecycle func(LifecycleEvent)
}

func New(params Params) *Editor {
	e := &Editor{
		res:         params.Resource,
		history:     NewHistory(),
		tools:       defaultTools(),
		gui:         params.Gui,
		store:       params.Store,
		textures:    params.Textures,
		linter:      params.Linter,
		camera:      NewCamera(),
		onLifecycle: params.OnLifecycle,
	}
	e.ctx.ShouldSnapToGrid = true
	e.ctx.ShouldDrawGrid = true
	e.setResource(params.Resource)
	return e
}

// Map returns the open map document.
func (e *Editor) Map() *tilemap.Map {
	return e.res.Map
}

// Context returns the current selection snapshot.
func (e *Editor) Context() *Context {
	return &e.ctx
}

// History exposes the undo history, mainly for tests.
func (e *Editor) History() *History {
	return e.history
}

// Camera returns the editor viewport camera.
func (e *Editor) Camera() *Camera {
	return e.camera
}

func (e *Editor) setResource(res *tilemap.Resource) {
	e.res = res
	e.history.Clear()
	e.ctx.SelectedLayer = ""
	e.ctx.SelectedTileset = ""
	e.ctx.SelectedTile = nil
	e.ctx.SelectedObject = nil
	e.ctx.SelectedSpawnPoint = nil
	e.ctx.SelectedTool = ToolNone
	e.ctx.IsUserMap = res.Meta.IsUserMap
	e.ctx.IsTiledMap = res.Meta.IsTiledMap
	e.drag = nil
	e.updateContext()
}

// ShowInfo displays a timed status message.
func (e *Editor) ShowInfo(message string) {
	e.infoMessage = message
	e.infoTimer = messageTimeout
}

// InfoMessage returns the currently displayed status message, if any.
func (e *Editor) InfoMessage() string {
	if e.infoTimer <= 0 {
		return ""
	}
	return e.infoMessage
}

// Apply dispatches a command. Failures are recoverable: the command is
// rejected, map and history stay consistent, and the error surfaces as a
// timed info message.
func (e *Editor) Apply(cmd Command) error {
	err := e.dispatch(cmd)
	if err != nil {
		log.Printf("editor: %v", err)
		e.ShowInfo(err.Error())
	}
	e.updateContext()
	return err
}

func (e *Editor) dispatch(cmd Command) error {
	m := e.Map()

	switch cmd := cmd.(type) {
	case UndoCmd:
		return e.history.Undo(m)
	case RedoCmd:
		return e.history.Redo(m)

	case SelectToolCmd:
		if cmd.Kind != ToolNone {
			tool, ok := e.tools[cmd.Kind]
			if !ok || !tool.IsAvailable(m, &e.ctx) {
				return core.Errorf(core.ErrEditorAction, "tool %q is not available", cmd.Kind)
			}
		}
		e.ctx.SelectedTool = cmd.Kind
	case SelectLayerCmd:
		if _, err := m.Layer(cmd.ID); err != nil {
			return err
		}
		e.ctx.SelectedLayer = cmd.ID
	case SelectTilesetCmd:
		if _, err := m.Tileset(cmd.ID); err != nil {
			return err
		}
		e.ctx.SelectedTileset = cmd.ID
		e.ctx.SelectedTile = nil
	case SelectTileCmd:
		if e.ctx.SelectedTileset == "" {
			return core.Errorf(core.ErrEditorAction, "no tileset selected")
		}
		tileset, err := m.Tileset(e.ctx.SelectedTileset)
		if err != nil {
			return err
		}
		if cmd.ID >= tileset.TileCnt {
			return core.Errorf(core.ErrEditorAction, "tile id %d out of range for tileset %q", cmd.ID, tileset.ID)
		}
		id := cmd.ID
		e.ctx.SelectedTile = &id
	case SelectObjectCmd:
		layer, err := m.Layer(cmd.LayerID)
		if err != nil {
			return err
		}
		if layer.Kind != tilemap.ObjectLayer || cmd.Index < 0 || cmd.Index >= len(layer.Objects) {
			return core.Errorf(core.ErrEditorAction, "no object %d on layer %q", cmd.Index, cmd.LayerID)
		}
		e.ctx.SelectedLayer = cmd.LayerID
		e.ctx.SelectedObject = &SelectedObject{LayerID: cmd.LayerID, Index: cmd.Index}
	case SelectSpawnPointCmd:
		if cmd.Index < 0 || cmd.Index >= len(m.SpawnPoints) {
			return core.Errorf(core.ErrEditorAction, "no spawn point %d", cmd.Index)
		}
		index := cmd.Index
		e.ctx.SelectedSpawnPoint = &index
	case DeselectObjectCmd:
		e.ctx.SelectedObject = nil
		e.ctx.SelectedSpawnPoint = nil

	case CreateLayerCmd:
		return e.history.Apply(&CreateLayerAction{
			ID:           cmd.ID,
			Kind:         cmd.Kind,
			HasCollision: cmd.HasCollision,
			Index:        cmd.Index,
		}, m)
	case DeleteLayerCmd:
		return e.history.Apply(&DeleteLayerAction{ID: cmd.ID}, m)
	case UpdateLayerCmd:
		return e.history.Apply(&UpdateLayerAction{
			ID:           cmd.ID,
			IsVisible:    cmd.IsVisible,
			HasCollision: cmd.HasCollision,
		}, m)
	case SetLayerDrawOrderIndexCmd:
		return e.history.Apply(&SetLayerDrawOrderIndexAction{ID: cmd.ID, Index: cmd.Index}, m)
	case CreateTilesetCmd:
		return e.history.Apply(&CreateTilesetAction{
			ID:          cmd.ID,
			TextureID:   cmd.TextureID,
			TextureSize: cmd.TextureSize,
		}, m)
	case DeleteTilesetCmd:
		return e.history.Apply(&DeleteTilesetAction{ID: cmd.ID}, m)
	case UpdateTilesetCmd:
		return e.history.Apply(&UpdateTilesetAction{
			ID:           cmd.ID,
			TextureID:    cmd.TextureID,
			AutotileMask: cmd.AutotileMask,
		}, m)
	case CreateObjectCmd:
		return e.history.Apply(&CreateObjectAction{
			ID:       cmd.ID,
			Kind:     cmd.Kind,
			Position: cmd.Position,
			LayerID:  cmd.LayerID,
		}, m)
	case DeleteObjectCmd:
		return e.history.Apply(&DeleteObjectAction{LayerID: cmd.LayerID, Index: cmd.Index}, m)
	case UpdateObjectCmd:
		return e.history.Apply(&UpdateObjectAction{
			LayerID:  cmd.LayerID,
			Index:    cmd.Index,
			ID:       cmd.ID,
			Kind:     cmd.Kind,
			Position: cmd.Position,
		}, m)
	case CreateSpawnPointCmd:
		return e.history.Apply(&CreateSpawnPointAction{Position: cmd.Position}, m)
	case DeleteSpawnPointCmd:
		return e.history.Apply(&DeleteSpawnPointAction{Index: cmd.Index}, m)
	case MoveSpawnPointCmd:
		return e.history.Apply(&MoveSpawnPointAction{Index: cmd.Index, Position: cmd.Position}, m)
	case PlaceTileCmd:
		return e.history.Apply(&PlaceTileAction{
			TileID:    cmd.TileID,
			LayerID:   cmd.LayerID,
			TilesetID: cmd.TilesetID,
			Coords:    cmd.Coords,
		}, m)
	case RemoveTileCmd:
		return e.history.Apply(&RemoveTileAction{LayerID: cmd.LayerID, Coords: cmd.Coords}, m)
	case UpdateTileAttributesCmd:
		return e.history.Apply(&UpdateTileAttributesAction{
			LayerID:    cmd.LayerID,
			Coords:     cmd.Coords,
			Attributes: cmd.Attributes,
		}, m)
	case UpdateBackgroundCmd:
		return e.history.Apply(&UpdateBackgroundAction{Color: cmd.Color, Layers: cmd.Layers}, m)
	case ImportCmd:
		return e.history.Apply(&ImportAction{
			Tilesets:         cmd.Tilesets,
			BackgroundColor:  cmd.BackgroundColor,
			BackgroundLayers: cmd.BackgroundLayers,
		}, m)

	case OpenCreateMapWindowCmd:
		e.gui.ShowCreateMapWindow()
	case OpenSaveMapWindowCmd:
		e.gui.ShowSaveMapWindow(e.res.Meta.Name)
	case OpenLoadMapWindowCmd:
		e.gui.ShowLoadMapWindow()
	case OpenImportWindowCmd:
		e.gui.ShowImportWindow()
	case OpenCreateLayerWindowCmd:
		e.gui.ShowCreateLayerWindow()
	case OpenCreateTilesetWindowCmd:
		e.gui.ShowCreateTilesetWindow()
	case OpenTilesetPropertiesWindowCmd:
		e.gui.ShowTilesetPropertiesWindow(cmd.TilesetID)
	case OpenCreateObjectWindowCmd:
		e.gui.ShowCreateObjectWindow(cmd.Position, cmd.LayerID)
	case OpenObjectPropertiesWindowCmd:
		e.gui.ShowObjectPropertiesWindow(cmd.LayerID, cmd.Index)
	case OpenTilePropertiesWindowCmd:
		e.gui.ShowTilePropertiesWindow(cmd.LayerID, cmd.Coords)
	case OpenBackgroundPropertiesWindowCmd:
		e.gui.ShowBackgroundPropertiesWindow()
	case OpenMenuCmd:
		e.gui.ShowMenu()

	case BatchCmd:
		for _, sub := range cmd.Commands {
			if err := e.dispatch(sub); err != nil {
				return err
			}
		}

	case CreateMapCmd:
		res, err := e.store.Create(cmd.Name, cmd.Description, tilemap.NewMap(cmd.TileSize, cmd.GridSize))
		if err != nil {
			return err
		}
		e.setResource(res)
		e.ShowInfo("created map " + cmd.Name)
	case OpenMapCmd:
		res, err := e.store.Get(cmd.Filename)
		if err != nil {
			return err
		}
		e.setResource(res)
	case SaveMapCmd:
		return e.saveMap(cmd.Name)
	case DeleteMapCmd:
		return e.store.Delete(cmd.Filename)

	case ToggleGridCmd:
		e.ctx.ShouldDrawGrid = !e.ctx.ShouldDrawGrid
	case ToggleSnapToGridCmd:
		e.ctx.ShouldSnapToGrid = !e.ctx.ShouldSnapToGrid
	case ToggleParallaxCmd:
		e.disableParallax = !e.disableParallax
	case CopySelectedObjectCmd:
		return e.copySelectedObject()
	case PasteObjectCmd:
		return e.pasteObject()

	case ExitToMainMenuCmd:
		if e.onLifecycle != nil {
			e.onLifecycle(LifecycleExitToMainMenu)
		}
	case QuitToDesktopCmd:
		if e.onLifecycle != nil {
			e.onLifecycle(LifecycleQuitToDesktop)
		}

	default:
		return core.Errorf(core.ErrEditorAction, "unknown command %T", cmd)
	}
	return nil
}

// saveMap persists the open map, under a new name when one is given. The
// lint hook, when configured, only warns; it never blocks a save.
func (e *Editor) saveMap(name string) error {
	if e.linter != nil {
		warnings, err := e.linter.Run(e.Map())
		if err != nil {
			log.Printf("editor: lint: %v", err)
		}
		for _, warning := range warnings {
			log.Printf("editor: lint: %s", warning)
		}
		if len(warnings) > 0 {
			e.ShowInfo(warnings[0])
		}
	}

	// Save-as, and the first save of a map that never hit disk, both go
	// through Create so the store assigns the file path.
	if (name != "" && name != e.res.Meta.Name) || e.res.Meta.Path == "" {
		if name == "" {
			name = e.res.Meta.Name
		}
		res, err := e.store.Create(name, e.res.Meta.Description, e.Map())
		if err != nil {
			return err
		}
		e.res = res
		e.ctx.IsUserMap = true
		e.ShowInfo("saved map as " + name)
		return nil
	}
	if err := e.store.Save(e.res); err != nil {
		return err
	}
	e.ShowInfo("saved map " + e.res.Meta.Name)
	return nil
}

// updateContext runs the selection repair pass and refreshes the derived
// flags. Safe to call redundantly.
func (e *Editor) updateContext() {
	e.ctx.IsUserMap = e.res.Meta.IsUserMap
	e.ctx.IsTiledMap = e.res.Meta.IsTiledMap
	e.ctx.repair(e.Map(), e.tools)
}
