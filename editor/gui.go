package editor

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// Gui is the widget-layer collaborator. Windows are modal and identified by
// what they edit; the implementation turns widget interactions into
// commands returned from Update. Implementations receive borrowed map and
// context references per call and must not retain them.
type Gui interface {
	ShowCreateMapWindow()
	ShowSaveMapWindow(name string)
	ShowLoadMapWindow()
	ShowImportWindow()
	ShowCreateLayerWindow()
	ShowCreateTilesetWindow()
	ShowTilesetPropertiesWindow(tilesetID string)
	ShowCreateObjectWindow(position core.Vec2, layerID string)
	ShowObjectPropertiesWindow(layerID string, index int)
	ShowTilePropertiesWindow(layerID string, coords core.Coords)
	ShowBackgroundPropertiesWindow()
	ShowMenu()
	CloseAll()

	Contains(point core.Vec2) bool
	ContextMenuContains(point core.Vec2) bool
	OpenContextMenu(point core.Vec2)
	CloseContextMenu()

	Update(m *tilemap.Map, ctx *Context) []Command
	Draw(screen *ebiten.Image)
}

// Store is the map persistence collaborator, implemented by tilemap.Store.
type Store interface {
	Create(name, description string, m *tilemap.Map) (*tilemap.Resource, error)
	Save(res *tilemap.Resource) error
	Get(filename string) (*tilemap.Resource, error)
	Delete(filename string) error
	Filenames() []string
	Len() int
}

// LifecycleEvent is raised by top-level navigation commands.
type LifecycleEvent int

const (
	LifecycleExitToMainMenu LifecycleEvent = iota
	LifecycleQuitToDesktop
)
