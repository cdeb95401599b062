package polymorph

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often, in seconds, the overlay text is redrawn.
const fpsRefreshInterval = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// It uses a private image and ebitenutil.DebugPrint for rendering.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	stale      bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), stale: true}
}

func (f *fpsOverlay) update(dt float64) {
	f.lastUpdate += dt
	if f.lastUpdate >= fpsRefreshInterval {
		f.lastUpdate = 0
		f.stale = true
	}
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.stale {
		f.stale = false
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}
