package renderer

import (
	"roguegen/pkg/engine/world"
)

// Renderer defines the interface for dungeon display backends.
// Implementations include the terminal (TUI) and the Ebiten viewer.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderDungeon draws a complete or partially generated tile buffer
	RenderDungeon(tiles *world.TileBuffer)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderDungeon renders a tile buffer with the current renderer
func RenderDungeon(tiles *world.TileBuffer) {
	if Current != nil {
		Current.RenderDungeon(tiles)
	}
}

// ShowMessage shows a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
