package editor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olefasting/fishfight/core"
)

// InputFrame is one frame's polled input state. The frame logic only reads
// these values, so tests can drive the editor without a window.
type InputFrame struct {
	CursorScreen core.Vec2

	PrimaryDown   bool
	SecondaryDown bool
	MiddleDown    bool
	Scroll        float32
	Pan           core.Vec2

	UndoPressed           bool
	RedoPressed           bool
	SavePressed           bool
	SaveAsPressed         bool
	LoadPressed           bool
	ToggleGridPressed     bool
	ToggleSnapPressed     bool
	ToggleParallaxPressed bool
	MenuPressed           bool
	DeletePressed         bool
	CopyPressed           bool
	PastePressed          bool
}

// Input keeps the previous frame alongside the current one for edge
// detection.
type Input struct {
	Current  InputFrame
	Previous InputFrame
}

func (in *Input) Advance(frame InputFrame) {
	in.Previous = in.Current
	in.Current = frame
}

func (in *Input) PrimaryJustPressed() bool {
	return in.Current.PrimaryDown && !in.Previous.PrimaryDown
}

func (in *Input) PrimaryJustReleased() bool {
	return !in.Current.PrimaryDown && in.Previous.PrimaryDown
}

func (in *Input) SecondaryJustPressed() bool {
	return in.Current.SecondaryDown && !in.Previous.SecondaryDown
}

// PollInput reads the ebiten input state for this frame.
func PollInput() InputFrame {
	x, y := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	frame := InputFrame{
		CursorScreen:  core.Vec2{X: float32(x), Y: float32(y)},
		PrimaryDown:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		SecondaryDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		MiddleDown:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Scroll:        float32(wheelY),

		UndoPressed:           ctrl && !shift && inpututil.IsKeyJustPressed(ebiten.KeyZ),
		RedoPressed:           ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyZ),
		SavePressed:           ctrl && !shift && inpututil.IsKeyJustPressed(ebiten.KeyS),
		SaveAsPressed:         ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyS),
		LoadPressed:           ctrl && inpututil.IsKeyJustPressed(ebiten.KeyL),
		ToggleGridPressed:     !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyG),
		ToggleSnapPressed:     ctrl && inpututil.IsKeyJustPressed(ebiten.KeyG),
		ToggleParallaxPressed: inpututil.IsKeyJustPressed(ebiten.KeyP),
		MenuPressed:           inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		DeletePressed:         inpututil.IsKeyJustPressed(ebiten.KeyDelete),
		CopyPressed:           ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC),
		PastePressed:          ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV),
	}

	// WASD panning is suppressed while a chord modifier is held so Ctrl+S
	// and friends do not also pan the camera.
	wasd := !ctrl
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || (wasd && ebiten.IsKeyPressed(ebiten.KeyA)) {
		frame.Pan.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || (wasd && ebiten.IsKeyPressed(ebiten.KeyD)) {
		frame.Pan.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || (wasd && ebiten.IsKeyPressed(ebiten.KeyW)) {
		frame.Pan.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || (wasd && ebiten.IsKeyPressed(ebiten.KeyS)) {
		frame.Pan.Y += 1
	}

	return frame
}
