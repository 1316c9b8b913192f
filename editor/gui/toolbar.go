package gui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/olefasting/fishfight/editor"
)

// buildToolbar returns the bar along the top edge: tool toggle buttons in a
// radio group, then history and window shortcuts.
func (g *Gui) buildToolbar() *widget.Container {
	tools := []struct {
		label string
		kind  editor.ToolKind
	}{
		{"Tiles", editor.ToolTilePlacement},
		{"Objects", editor.ToolObjectPlacement},
		{"Spawn", editor.ToolSpawnPointPlacement},
		{"Erase", editor.ToolEraser},
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	var toolButtons []*widget.Button
	for _, tool := range tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(g.theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(tool.label, &g.fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 40),
			),
		)
		toolButtons = append(toolButtons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}
	widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range toolButtons {
				if args.Active == b {
					g.queueCommand(editor.SelectToolCmd{Kind: tools[idx].kind})
					return
				}
			}
		}),
	)

	toolbar.AddChild(g.newButton("Undo", func() { g.queueCommand(editor.UndoCmd{}) }))
	toolbar.AddChild(g.newButton("Redo", func() { g.queueCommand(editor.RedoCmd{}) }))
	toolbar.AddChild(g.newButton("Save", func() { g.queueCommand(editor.SaveMapCmd{}) }))
	toolbar.AddChild(g.newButton("Load", func() { g.queueCommand(editor.OpenLoadMapWindowCmd{}) }))
	toolbar.AddChild(g.newButton("Menu", func() { g.queueCommand(editor.OpenMenuCmd{}) }))

	return toolbar
}
