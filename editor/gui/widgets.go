package gui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
)

// newModalOverlay wraps a dialog in a dimmed full-screen container that
// swallows clicks outside the dialog.
func newModalOverlay(dialog *widget.Container) *widget.Container {
	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{0, 0, 0, 160})),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	overlay.AddChild(dialog)
	return overlay
}

func (g *Gui) newDialog(title string) *widget.Container {
	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, 140),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 220, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			),
		),
	)
	dialog.AddChild(g.newLabel(title))
	return dialog
}

func (g *Gui) newLabel(label string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, &g.fontFace, &widget.LabelColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 140},
		}),
	)
}

func (g *Gui) newTextInput(initial string) *widget.TextInput {
	input := widget.NewTextInput(textInputOpts(&g.fontFace)...)
	if initial != "" {
		input.SetText(initial)
	}
	return input
}

func (g *Gui) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(g.theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, &g.fontFace, g.theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (g *Gui) newButtonRow(buttons ...*widget.Button) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	for _, button := range buttons {
		row.AddChild(button)
	}
	return row
}

// newConfirmRow appends OK/Cancel buttons; OK runs submit and closes the
// window.
func (g *Gui) newConfirmRow(submit func()) *widget.Container {
	return g.newButtonRow(
		g.newButton("OK", func() {
			if submit != nil {
				submit()
			}
			g.closeWindow()
		}),
		g.newButton("Cancel", g.closeWindow),
	)
}
