package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"roguegen/pkg/engine/input"
	"roguegen/pkg/engine/terminal"
	"roguegen/pkg/game/devtools"
	"roguegen/pkg/game/generator"
	"roguegen/pkg/game/renderer"
	ebitenrenderer "roguegen/pkg/game/renderer/ebiten"
	"roguegen/pkg/game/renderer/tui"
	"roguegen/pkg/game/server"
	"roguegen/pkg/game/state"
)

// promptLines is the space kept below the map for messages and prompts
const promptLines = 7

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

// logMessage adds a translated message to the session's message log
func logMessage(s *state.Session, key string, a ...any) {
	s.AddMessage(gotext.Get(key, a...))
}

// writeDump writes the current dungeon to path and logs where it went
func writeDump(s *state.Session, path string) {
	absPath, err := devtools.DumpDungeonToFile(s.Generator, path)
	if err != nil {
		log.Printf("Dump failed: %v", err)
		logMessage(s, "DUMP_FAILED")
		return
	}
	logMessage(s, "DUMP_WRITTEN", absPath)
}

func main() {
	cfg := generator.DefaultConfig()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "dungeon width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "dungeon height in tiles")
	flag.IntVar(&cfg.HorizontalRooms, "hrooms", cfg.HorizontalRooms, "number of room cells across")
	flag.IntVar(&cfg.VerticalRooms, "vrooms", cfg.VerticalRooms, "number of room cells down")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 for time-based)")
	flag.IntVar(&cfg.MonsterChance, "monsters", cfg.MonsterChance, "percent chance of a monster per room")
	rendererName := flag.String("renderer", "tui", "front end: tui or ebiten")
	stepByStep := flag.Bool("step", false, "with -once, pause after every generation step")
	once := flag.Bool("once", false, "generate one dungeon, print it and exit")
	dumpPath := flag.String("dump", "", "write each generated dungeon to this file (.html for a screenshot)")
	serveAddr := flag.String("serve", "", "serve dungeons over HTTP on this address instead of running interactively")
	lang := flag.String("locale", "en_GB", "language of user-facing text")
	flag.Parse()

	initGettext(*lang)

	if *serveAddr != "" {
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
		log.Fatal(server.New(cfg).ListenAndServe(*serveAddr))
	}

	gen, err := generator.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	session := state.NewSession(gen)

	switch *rendererName {
	case "tui":
		runTUI(session, *once, *stepByStep, *dumpPath)
	case "ebiten":
		runEbiten(session, *dumpPath)
	default:
		log.Fatalf("Unknown renderer %q (want tui or ebiten)", *rendererName)
	}
}

// runEbiten opens the graphical viewer and blocks until it closes
func runEbiten(s *state.Session, dumpPath string) {
	viewer := ebitenrenderer.New(s, dumpPath)
	renderer.SetRenderer(viewer)
	renderer.Init()

	if err := viewer.Run(); err != nil {
		log.Fatal(err)
	}
}

// runTUI drives generation from the terminal
func runTUI(s *state.Session, once, stepByStep bool, dumpPath string) {
	t := tui.New(os.Stdout)
	renderer.SetRenderer(t)
	renderer.Init()

	s.Generator.SetStepHook(t.StepHook(s.Generator, input.ReadKey))

	if once {
		s.Generate(stepByStep)
		renderer.RenderDungeon(s.Generator.Tiles())
		if dumpPath != "" {
			writeDump(s, dumpPath)
			for _, msg := range s.Messages {
				fmt.Fprintln(os.Stderr, msg)
			}
		}
		return
	}

	if !input.IsTerminal() {
		log.Fatalf("Interactive mode needs a terminal; use -once to print a single dungeon")
	}

	cfg := s.Generator.Config()
	if !terminal.FitsDungeon(cfg.Width, cfg.Height, promptLines) {
		log.Printf("Terminal is smaller than %dx%d, the map may wrap", cfg.Width, cfg.Height+promptLines)
	}

	renderer.Clear()
	t.ShowBanner()

	for {
		if !mainLoop(s, dumpPath) {
			return
		}
	}
}

// mainLoop waits for one key and acts on it. It returns false when the
// user quits.
func mainLoop(s *state.Session, dumpPath string) bool {
	code, err := input.ReadKey()
	if err != nil {
		log.Fatalf("Cannot read key: %v", err)
	}

	action := input.MapKey(code)
	switch action {
	case input.ActionGenerate, input.ActionGenerateStepwise:
		seed := s.Generate(action == input.ActionGenerateStepwise)
		logMessage(s, "GENERATED_WITH_SEED", seed)
		if dumpPath != "" {
			writeDump(s, dumpPath)
		}
	case input.ActionDump:
		if dumpPath == "" {
			logMessage(s, "DUMP_NO_PATH")
		} else if s.Generations > 0 {
			writeDump(s, dumpPath)
		}
	case input.ActionQuit:
		return false
	default:
		return true
	}

	renderer.Clear()
	if s.Generations > 0 {
		renderer.RenderDungeon(s.Generator.Tiles())
	}
	for _, msg := range s.Messages {
		renderer.ShowMessage(msg)
	}
	renderer.ShowMessage("SUBTLE{" + gotext.Get("PROMPT_KEYS") + "}")

	return true
}
