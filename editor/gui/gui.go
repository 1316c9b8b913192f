// Package gui is the ebitenui implementation of the editor's widget layer:
// the toolbar, the modal windows and the context menu. Widget handlers
// never touch the map directly; they queue commands the editor applies on
// its next update.
package gui

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/editor"
	"github.com/olefasting/fishfight/gamedata"
	"github.com/olefasting/fishfight/tilemap"
)

// commandFn defers command construction to the next Update, where the
// current map and context are available.
type commandFn func(m *tilemap.Map, ctx *editor.Context) editor.Command

// windowFn defers window construction to the next Update for windows whose
// widgets are seeded from the current map state.
type windowFn func(m *tilemap.Map, ctx *editor.Context)

type Gui struct {
	ui       *ebitenui.UI
	theme    *widget.Theme
	fontFace text.Face
	root     *widget.Container

	store    editor.Store
	defs     *gamedata.Definitions
	textures *core.TextureStore

	pending        []commandFn
	pendingWindows []windowFn
	overlay        *widget.Container

	contextMenu        *widget.Container
	contextMenuWrapper *widget.Container
	contextMenuOpen    bool
	contextMenuAt      core.Vec2
}

// Params carries the collaborators the widget layer reads from.
type Params struct {
	Store    editor.Store
	Defs     *gamedata.Definitions
	Textures *core.TextureStore
}

func New(params Params) (*Gui, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, core.Errorf(core.ErrFont, "load font: %v", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: source, Size: 14}

	g := &Gui{
		theme:    newTheme(&fontFace),
		fontFace: fontFace,
		store:    params.Store,
		defs:     params.Defs,
		textures: params.Textures,
	}

	g.root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	g.root.AddChild(g.buildToolbar())

	g.ui = &ebitenui.UI{Container: g.root}
	g.ui.PrimaryTheme = g.theme
	return g, nil
}

// Face returns the shared UI font face.
func (g *Gui) Face() text.Face {
	return g.fontFace
}

func (g *Gui) queue(fn commandFn) {
	g.pending = append(g.pending, fn)
}

func (g *Gui) queueCommand(cmd editor.Command) {
	g.queue(func(*tilemap.Map, *editor.Context) editor.Command { return cmd })
}

func (g *Gui) queueWindow(fn windowFn) {
	g.pendingWindows = append(g.pendingWindows, fn)
}

// Update advances the widget tree, builds any deferred windows and drains
// the queued commands.
func (g *Gui) Update(m *tilemap.Map, ctx *editor.Context) []editor.Command {
	g.ui.Update()

	if len(g.pendingWindows) > 0 {
		windows := g.pendingWindows
		g.pendingWindows = nil
		for _, fn := range windows {
			fn(m, ctx)
		}
	}

	if len(g.pending) == 0 {
		return nil
	}
	commands := make([]editor.Command, 0, len(g.pending))
	for _, fn := range g.pending {
		if cmd := fn(m, ctx); cmd != nil {
			commands = append(commands, cmd)
		}
	}
	g.pending = g.pending[:0]
	return commands
}

func (g *Gui) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
}

// Contains reports whether the cursor sits over any widget, so the editor
// can suppress world interaction underneath the UI.
func (g *Gui) Contains(core.Vec2) bool {
	return ebuiinput.UIHovered
}

func (g *Gui) ContextMenuContains(point core.Vec2) bool {
	if !g.contextMenuOpen || g.contextMenu == nil {
		return false
	}
	rect := g.contextMenu.GetWidget().Rect
	return point.X >= float32(rect.Min.X) && point.X < float32(rect.Max.X) &&
		point.Y >= float32(rect.Min.Y) && point.Y < float32(rect.Max.Y)
}

// CloseAll hides every open window and the context menu.
func (g *Gui) CloseAll() {
	g.closeWindow()
	g.CloseContextMenu()
}

func (g *Gui) closeWindow() {
	if g.overlay != nil {
		g.root.RemoveChild(g.overlay)
		g.overlay = nil
	}
}

// showWindow replaces any open window with a new modal overlay. Windows
// are modal; only one is open at a time.
func (g *Gui) showWindow(dialog *widget.Container) {
	g.closeWindow()
	overlay := newModalOverlay(dialog)
	g.root.AddChild(overlay)
	g.overlay = overlay
}
