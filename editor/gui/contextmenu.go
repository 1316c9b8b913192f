package gui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/olefasting/fishfight/core"
	"github.com/olefasting/fishfight/editor"
)

// OpenContextMenu shows the right-click menu at the given screen position.
// The wrapper container stretches over the whole screen and pushes the menu
// to the click point through its layout padding.
func (g *Gui) OpenContextMenu(point core.Vec2) {
	g.CloseContextMenu()

	menu := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{235, 235, 235, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(2),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			),
		),
	)

	entry := func(label string, cmd editor.Command) {
		menu.AddChild(g.newButton(label, func() {
			g.CloseContextMenu()
			g.queueCommand(cmd)
		}))
	}
	entry("New layer", editor.OpenCreateLayerWindowCmd{})
	entry("New tileset", editor.OpenCreateTilesetWindowCmd{})
	entry("Import...", editor.OpenImportWindowCmd{})
	entry("Background...", editor.OpenBackgroundPropertiesWindowCmd{})
	entry("Paste", editor.PasteObjectCmd{})

	wrapper := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&widget.Insets{
					Left: int(point.X),
					Top:  int(point.Y),
				}),
			),
		),
	)
	wrapper.AddChild(menu)

	g.root.AddChild(wrapper)
	g.contextMenu = menu
	g.contextMenuWrapper = wrapper
	g.contextMenuOpen = true
	g.contextMenuAt = point
}

func (g *Gui) CloseContextMenu() {
	if !g.contextMenuOpen {
		return
	}
	g.root.RemoveChild(g.contextMenuWrapper)
	g.contextMenu = nil
	g.contextMenuWrapper = nil
	g.contextMenuOpen = false
}
