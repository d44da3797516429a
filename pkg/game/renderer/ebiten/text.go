package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var regexpMarkup = regexp.MustCompile(`(ACTION|SUBTLE){([^}]*)}`)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// drawColoredChar draws a character centred in the tile at x, y
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y int, col color.Color) {
	w, h := text.Measure(char, e.monoFace, 0)

	// text/v2 Draw uses top-left as the origin point
	offsetX := (float64(tileWidth) - w) / 2
	offsetY := (float64(tileHeight) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+offsetX, float64(y)+offsetY)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, char, e.monoFace, op)
}

// drawColoredText draws a line of text, honouring ACTION{} and SUBTLE{} markup
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	cursor := float64(x)
	for _, seg := range parseMarkup(str, col) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cursor, float64(y))
		op.ColorScale.ScaleWithColor(seg.color)
		text.Draw(screen, seg.text, e.monoFace, op)

		w, _ := text.Measure(seg.text, e.monoFace, 0)
		cursor += w
	}
}

// parseMarkup splits msg into coloured segments; plain text uses base
func parseMarkup(msg string, base color.Color) []textSegment {
	var segments []textSegment

	last := 0
	for _, m := range regexpMarkup.FindAllStringSubmatchIndex(msg, -1) {
		if m[0] > last {
			segments = append(segments, textSegment{text: msg[last:m[0]], color: base})
		}

		col := colorSubtle
		if msg[m[2]:m[3]] == "ACTION" {
			col = colorWall
		}
		segments = append(segments, textSegment{text: msg[m[4]:m[5]], color: col})
		last = m[1]
	}

	if last < len(msg) {
		segments = append(segments, textSegment{text: msg[last:], color: base})
	}

	return segments
}
