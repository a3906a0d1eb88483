package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/hecs/scene"
)

// KeyEvent reports a key going down or up.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// CursorEvent reports a cursor move in window pixels.
type CursorEvent struct {
	X, Y int
}

// WheelEvent reports a scroll.
type WheelEvent struct {
	DX, DY float64
}

// ResizeEvent reports a new layout size.
type ResizeEvent struct {
	Width, Height int
}

// Input polls ebiten once per tick and turns changes into scene events.
type Input struct {
	keys []ebiten.Key

	width, height    int
	cursorX, cursorY int
}

// Poll emits the events since the previous call. width and height are the
// current layout size.
func (in *Input) Poll(width, height int, emit func(scene.Event)) {
	if width != in.width || height != in.height {
		in.width, in.height = width, height
		emit(ResizeEvent{Width: width, Height: height})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		emit(KeyEvent{Key: k, Pressed: true})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		emit(KeyEvent{Key: k, Pressed: false})
	}

	if x, y := ebiten.CursorPosition(); x != in.cursorX || y != in.cursorY {
		in.cursorX, in.cursorY = x, y
		emit(CursorEvent{X: x, Y: y})
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		emit(WheelEvent{DX: dx, DY: dy})
	}
}
