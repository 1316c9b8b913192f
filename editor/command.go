package editor

import (
	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/tilemap"
)

// Command is the closed vocabulary of user-triggered editor intents. The
// concrete variants are dispatched by Editor.Apply; map mutations are
// wrapped 1:1 into undoable actions and routed through History.
type Command interface {
	isCommand()
}

// History operations.

type UndoCmd struct{}
type RedoCmd struct{}

// Selection operations, validated against the current map on dispatch.

type SelectToolCmd struct{ Kind ToolKind }
type SelectLayerCmd struct{ ID string }
type SelectTilesetCmd struct{ ID string }
type SelectTileCmd struct{ ID uint32 }
type SelectObjectCmd struct {
	LayerID string
	Index   int
}
type SelectSpawnPointCmd struct{ Index int }
type DeselectObjectCmd struct{}

// Map mutations, one per undoable action.

type CreateLayerCmd struct {
	ID           string
	Kind         tilemap.LayerKind
	HasCollision bool
	Index        int
}
type DeleteLayerCmd struct{ ID string }
type UpdateLayerCmd struct {
	ID           string
	IsVisible    bool
	HasCollision bool
}
type SetLayerDrawOrderIndexCmd struct {
	ID    string
	Index int
}
type CreateTilesetCmd struct {
	ID          string
	TextureID   string
	TextureSize core.Size
}
type DeleteTilesetCmd struct{ ID string }
type UpdateTilesetCmd struct {
	ID           string
	TextureID    string
	AutotileMask []bool
}
type CreateObjectCmd struct {
	ID       string
	Kind     tilemap.ObjectKind
	Position core.Vec2
	LayerID  string
}
type DeleteObjectCmd struct {
	LayerID string
	Index   int
}
type UpdateObjectCmd struct {
	LayerID  string
	Index    int
	ID       string
	Kind     tilemap.ObjectKind
	Position core.Vec2
}
type CreateSpawnPointCmd struct{ Position core.Vec2 }
type DeleteSpawnPointCmd struct{ Index int }
type MoveSpawnPointCmd struct {
	Index    int
	Position core.Vec2
}
type PlaceTileCmd struct {
	TileID    uint32
	LayerID   string
	TilesetID string
	Coords    core.Coords
}
type RemoveTileCmd struct {
	LayerID string
	Coords  core.Coords
}
type UpdateTileAttributesCmd struct {
	LayerID    string
	Coords     core.Coords
	Attributes []string
}
type UpdateBackgroundCmd struct {
	Color  core.Color
	Layers []tilemap.BackgroundLayer
}
type ImportCmd struct {
	Tilesets         []*tilemap.Tileset
	BackgroundColor  *core.Color
	BackgroundLayers []tilemap.BackgroundLayer
}

// Window lifecycle, forwarded to the gui collaborator.

type OpenCreateMapWindowCmd struct{}
type OpenSaveMapWindowCmd struct{}
type OpenLoadMapWindowCmd struct{}
type OpenImportWindowCmd struct{}
type OpenCreateLayerWindowCmd struct{}
type OpenCreateTilesetWindowCmd struct{}
type OpenTilesetPropertiesWindowCmd struct{ TilesetID string }
type OpenCreateObjectWindowCmd struct {
	Position core.Vec2
	LayerID  string
}
type OpenObjectPropertiesWindowCmd struct {
	LayerID string
	Index   int
}
type OpenTilePropertiesWindowCmd struct {
	LayerID string
	Coords  core.Coords
}
type OpenBackgroundPropertiesWindowCmd struct{}
type OpenMenuCmd struct{}

// Batch applies its commands in order; the first failure aborts the rest.

type BatchCmd struct{ Commands []Command }

// Map resource operations against the persistence collaborator.

type CreateMapCmd struct {
	Name        string
	Description string
	TileSize    core.Size
	GridSize    core.USize
}
type OpenMapCmd struct{ Filename string }
type SaveMapCmd struct{ Name string }
type DeleteMapCmd struct{ Filename string }

// Editor-local state toggles and clipboard.

type ToggleGridCmd struct{}
type ToggleSnapToGridCmd struct{}
type ToggleParallaxCmd struct{}
type CopySelectedObjectCmd struct{}
type PasteObjectCmd struct{}

// Top-level lifecycle events raised to the host.

type ExitToMainMenuCmd struct{}
type QuitToDesktopCmd struct{}

func (UndoCmd) isCommand()                           {}
func (RedoCmd) isCommand()                           {}
func (SelectToolCmd) isCommand()                     {}
func (SelectLayerCmd) isCommand()                    {}
func (SelectTilesetCmd) isCommand()                  {}
func (SelectTileCmd) isCommand()                     {}
func (SelectObjectCmd) isCommand()                   {}
func (SelectSpawnPointCmd) isCommand()               {}
func (DeselectObjectCmd) isCommand()                 {}
func (CreateLayerCmd) isCommand()                    {}
func (DeleteLayerCmd) isCommand()                    {}
func (UpdateLayerCmd) isCommand()                    {}
func (SetLayerDrawOrderIndexCmd) isCommand()         {}
func (CreateTilesetCmd) isCommand()                  {}
func (DeleteTilesetCmd) isCommand()                  {}
func (UpdateTilesetCmd) isCommand()                  {}
func (CreateObjectCmd) isCommand()                   {}
func (DeleteObjectCmd) isCommand()                   {}
func (UpdateObjectCmd) isCommand()                   {}
func (CreateSpawnPointCmd) isCommand()               {}
func (DeleteSpawnPointCmd) isCommand()               {}
func (MoveSpawnPointCmd) isCommand()                 {}
func (PlaceTileCmd) isCommand()                      {}
func (RemoveTileCmd) isCommand()                     {}
func (UpdateTileAttributesCmd) isCommand()           {}
func (UpdateBackgroundCmd) isCommand()               {}
func (ImportCmd) isCommand()                         {}
func (OpenCreateMapWindowCmd) isCommand()            {}
func (OpenSaveMapWindowCmd) isCommand()              {}
func (OpenLoadMapWindowCmd) isCommand()              {}
func (OpenImportWindowCmd) isCommand()               {}
func (OpenCreateLayerWindowCmd) isCommand()          {}
func (OpenCreateTilesetWindowCmd) isCommand()        {}
func (OpenTilesetPropertiesWindowCmd) isCommand()    {}
func (OpenCreateObjectWindowCmd) isCommand()         {}
func (OpenObjectPropertiesWindowCmd) isCommand()     {}
func (OpenTilePropertiesWindowCmd) isCommand()       {}
func (OpenBackgroundPropertiesWindowCmd) isCommand() {}
func (OpenMenuCmd) isCommand()                       {}
func (BatchCmd) isCommand()                          {}
func (CreateMapCmd) isCommand()                      {}
func (OpenMapCmd) isCommand()                        {}
func (SaveMapCmd) isCommand()                        {}
func (DeleteMapCmd) isCommand()                      {}
func (ToggleGridCmd) isCommand()                     {}
func (ToggleSnapToGridCmd) isCommand()               {}
func (ToggleParallaxCmd) isCommand()                 {}
func (CopySelectedObjectCmd) isCommand()             {}
func (PasteObjectCmd) isCommand()                    {}
func (ExitToMainMenuCmd) isCommand()                 {}
func (QuitToDesktopCmd) isCommand()                  {}
