package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a map of the given size plus reserved prompt lines
// fits in a terminal of termWidth x termHeight
func Fits(mapWidth, mapHeight, promptLines, termWidth, termHeight int) bool {
	return mapWidth <= termWidth && mapHeight+promptLines <= termHeight
}

// FitsDungeon reports whether the current terminal can show a dungeon of
// the given size with promptLines of text below it
func FitsDungeon(mapWidth, mapHeight, promptLines int) bool {
	w, h := GetSize()
	return Fits(mapWidth, mapHeight, promptLines, w, h)
}
