package devtools

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"roguegen/pkg/engine/world"
	"roguegen/pkg/game/generator"
)

// colourClasses maps tile colours to the CSS classes of the screenshot
var colourClasses = map[world.Colour]string{
	world.ColourDefault:  "plain",
	world.ColourGround:   "ground",
	world.ColourWall:     "wall",
	world.ColourDoor:     "door",
	world.ColourCorridor: "corridor",
	world.ColourStairs:   "stairs",
	world.ColourMonster:  "monster",
}

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .plain { color: #eee; }
        .ground { color: #00aa00; }
        .wall { color: #aaaa00; }
        .door { color: #aaaa00; }
        .corridor { color: #666; }
        .stairs { color: #fff; font-weight: bold; }
        .monster { color: #ff4444; font-weight: bold; }
    </style>
</head>
<body>
`

// WriteScreenshotHTML writes the last generated dungeon as a coloured HTML
// page. Runs of tiles sharing a colour become one span.
func WriteScreenshotHTML(w io.Writer, g *generator.Generator) error {
	if len(g.Rooms()) == 0 {
		return ErrNotGenerated
	}

	out := bufio.NewWriter(w)
	tiles := g.Tiles()

	out.WriteString(screenshotHead)
	fmt.Fprintf(out, `    <div class="header">Seed %d</div>`+"\n", g.Seed())
	out.WriteString(`    <div class="map-container">` + "\n")

	for y := 0; y < tiles.Height(); y++ {
		out.WriteString(`        <div class="map-row">`)

		run := []rune{}
		runColour := world.ColourDefault
		flush := func() {
			if len(run) == 0 {
				return
			}
			fmt.Fprintf(out, `<span class="%s">%s</span>`, colourClasses[runColour], html.EscapeString(string(run)))
			run = run[:0]
		}

		for x := 0; x < tiles.Width(); x++ {
			t := tiles.At(x, y)
			if t.Colour != runColour {
				flush()
			}
			runColour = t.Colour
			run = append(run, t.Glyph)
		}
		flush()

		out.WriteString("</div>\n")
	}

	out.WriteString(`    </div>` + "\n")
	out.WriteString("</body>\n</html>\n")

	return out.Flush()
}
