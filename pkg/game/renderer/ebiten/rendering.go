package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"roguegen/pkg/engine/world"
)

// Draw renders the latest frame and the status line (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.monoFace == nil {
		// Can't draw without fonts
		return
	}

	e.frameMutex.RLock()
	frame := e.frame
	status := e.status
	e.frameMutex.RUnlock()

	if frame != nil {
		e.drawMap(screen, frame)
	}

	e.drawStatusBar(screen, status)
}

// drawMap draws every non-empty tile of the frame
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, frame *world.TileBuffer) {
	frame.ForEachTile(func(x, y int, t world.Tile) {
		if t.Kind == world.TileEmpty {
			return
		}

		px, py := x*tileWidth, y*tileHeight
		if bg, ok := tileBackground(t); ok {
			vector.DrawFilledRect(screen, float32(px), float32(py),
				float32(tileWidth), float32(tileHeight), bg, false)
		}

		e.drawColoredChar(screen, string(t.Glyph), px, py, tileColor(t.Colour))
	})
}

// drawStatusBar draws the status line below the map
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, status string) {
	y := e.rows * tileHeight
	vector.DrawFilledRect(screen, 0, float32(y),
		float32(e.cols*tileWidth), float32(statusLines*tileHeight), colorStatusBar, false)

	if status == "" {
		return
	}
	e.drawColoredText(screen, status, tileWidth/2, y+tileHeight/2, colorText)
}
