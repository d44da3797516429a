package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"roguegen/pkg/engine/input"
	"roguegen/pkg/engine/world"
	"roguegen/pkg/game/generator"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out         io.Writer
	clearScreen bool

	tileStyles map[world.Colour]color.Style

	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorTitle       color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out. The screen is only cleared
// when out is stdout.
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		out:         out,
		clearScreen: out == os.Stdout,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.tileStyles = map[world.Colour]color.Style{
		world.ColourDefault:  {color.FgWhite},
		world.ColourGround:   {color.FgGreen},
		world.ColourWall:     {color.FgYellow}, // Dark yellow
		world.ColourDoor:     {color.FgYellow},
		world.ColourCorridor: {color.FgDarkGray},
		world.ColourStairs:   {color.FgWhite, color.OpBold},
		world.ColourMonster:  {color.FgRed, color.OpBold},
	}

	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgGreen, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !t.clearScreen {
		return
	}

	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// styleFor returns the style for a tile colour, falling back to the default
func (t *TUIRenderer) styleFor(c world.Colour) color.Style {
	if s, ok := t.tileStyles[c]; ok {
		return s
	}
	return t.tileStyles[world.ColourDefault]
}

// RenderDungeon prints the buffer row by row. Consecutive tiles sharing a
// colour are printed as one styled run.
func (t *TUIRenderer) RenderDungeon(tiles *world.TileBuffer) {
	var sb strings.Builder

	for y := 0; y < tiles.Height(); y++ {
		var run strings.Builder
		runColour := world.ColourDefault

		for x := 0; x < tiles.Width(); x++ {
			tile := tiles.At(x, y)
			if tile.Colour != runColour && run.Len() > 0 {
				sb.WriteString(t.styleFor(runColour).Sprint(run.String()))
				run.Reset()
			}
			runColour = tile.Colour
			run.WriteRune(tile.Glyph)
		}

		if run.Len() > 0 {
			sb.WriteString(t.styleFor(runColour).Sprint(run.String()))
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(t.out, sb.String())
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, ACTION{Generate} highlights the first letter as a key,
// SUBTLE{text} dims the text and TITLE{text} emphasises it.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		case "TITLE":
			val = t.colorTitle.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText("%s", msg))
}

// ShowBanner prints the welcome banner and the key help
func (t *TUIRenderer) ShowBanner() {
	t.ShowMessage("TITLE{" + gotext.Get("BANNER_TITLE") + "}")
	t.ShowMessage("SUBTLE{" + gotext.Get("BANNER_SUBTITLE") + "}")
	fmt.Fprintln(t.out)
	t.ShowMessage("ACTION{" + gotext.Get("ACTION_GENERATE") + "}")
	t.ShowMessage("ACTION{" + gotext.Get("ACTION_STEP") + "}")
	t.ShowMessage("ACTION{" + gotext.Get("ACTION_DUMP") + "}")
	t.ShowMessage(gotext.Get("ACTION_QUIT"))
}

// StepHook returns a generator step hook that redraws the partial dungeon and
// waits for a key before letting generation continue. Quitting from a paused
// step exits the program.
func (t *TUIRenderer) StepHook(gen *generator.Generator, readKey func() (string, error)) generator.StepFunc {
	return func() {
		t.Clear()
		t.RenderDungeon(gen.Tiles())
		t.ShowMessage("SUBTLE{" + gotext.Get("PRESS_ANY_KEY_TO_ADVANCE") + "}")

		code, err := readKey()
		if err != nil {
			log.Printf("Step input failed: %v", err)
			return
		}

		if input.MapKey(code) == input.ActionQuit {
			os.Exit(0)
		}
	}
}
