package polymorph

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerSource reports the per-tick input the engine reacts to. Cursor
// coordinates are relative to the window.
type pointerSource interface {
	CursorPosition() (x, y int)
	JustPressed() bool
	Pressed() bool
	JustReleased() bool
	ClosePressed() bool
}

// windowMover reads and sets the window position in screen coordinates.
type windowMover interface {
	WindowPosition() (x, y int)
	SetWindowPosition(x, y int)
}

// ebitenPointer reads the left mouse button, the cursor and the Escape key.
type ebitenPointer struct{}

func (ebitenPointer) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenPointer) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointer) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointer) JustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (ebitenPointer) ClosePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// ebitenWindow moves the real window.
type ebitenWindow struct{}

func (ebitenWindow) WindowPosition() (int, int) { return ebiten.WindowPosition() }
func (ebitenWindow) SetWindowPosition(x, y int) { ebiten.SetWindowPosition(x, y) }

// dragTracker turns cursor motion while the button is held into window
// translation. The press point is kept in window coordinates; since the
// window follows the cursor, the press point stays under it.
type dragTracker struct {
	dragging     bool
	downX, downY int
}

func (d *dragTracker) press(x, y int) {
	d.downX, d.downY = x, y
	d.dragging = true
}

func (d *dragTracker) release() {
	d.dragging = false
}

// move returns how far the window must be translated so the press point is
// back under the cursor at (x, y). ok is false when not dragging or when the
// cursor has not moved.
func (d *dragTracker) move(x, y int) (dx, dy int, ok bool) {
	if !d.dragging {
		return 0, 0, false
	}
	dx, dy = x-d.downX, y-d.downY
	return dx, dy, dx != 0 || dy != 0
}

// processInput applies one tick of pointer input to the window. It reports
// whether the user asked to close.
func processInput(src pointerSource, win windowMover, drag *dragTracker) (closeRequested bool) {
	if src.ClosePressed() {
		return true
	}
	x, y := src.CursorPosition()
	switch {
	case src.JustPressed():
		drag.press(x, y)
	case src.JustReleased() || !src.Pressed():
		drag.release()
	default:
		if dx, dy, ok := drag.move(x, y); ok {
			wx, wy := win.WindowPosition()
			win.SetWindowPosition(wx+dx, wy+dy)
		}
	}
	return false
}
