package ebiten

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomono"

	"roguegen/pkg/engine/world"
	"roguegen/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based dungeon viewer. Generation runs on its
// own goroutine; Draw only ever sees cloned frames.
type EbitenRenderer struct {
	session  *state.Session
	dumpPath string

	cols int
	rows int

	monoFontSource *text.GoTextFaceSource
	monoFace       *text.GoTextFace

	// Latest frame and status line, shared with the generation goroutine
	frame      *world.TileBuffer
	status     string
	generating bool
	frameMutex sync.RWMutex

	// Step-by-step handshake with the generation goroutine
	advance  chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

// New creates a viewer for the session's generator. dumpPath is where the
// dump key writes the current dungeon; empty disables dumping.
func New(session *state.Session, dumpPath string) *EbitenRenderer {
	cfg := session.Generator.Config()
	return &EbitenRenderer{
		session:  session,
		dumpPath: dumpPath,
		cols:     cfg.Width,
		rows:     cfg.Height,
		advance:  make(chan struct{}),
		quit:     make(chan struct{}),
	}
}

// Init loads the monospace font and sets up the window
func (e *EbitenRenderer) Init() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Fatalf("Cannot load Go Mono font: %v", err)
	}
	e.monoFontSource = source
	e.monoFace = &text.GoTextFace{Source: source, Size: baseFontSize}

	ebiten.SetWindowSize(e.cols*tileWidth, (e.rows+statusLines)*tileHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))

	e.ShowMessage(gotext.Get("VIEWER_HELP"))
}

// Clear drops the current frame
func (e *EbitenRenderer) Clear() {
	e.frameMutex.Lock()
	e.frame = nil
	e.frameMutex.Unlock()
}

// RenderDungeon publishes a copy of tiles as the frame to draw
func (e *EbitenRenderer) RenderDungeon(tiles *world.TileBuffer) {
	clone := tiles.Clone()

	e.frameMutex.Lock()
	e.frame = clone
	e.frameMutex.Unlock()
}

// ShowMessage replaces the status line
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.frameMutex.Lock()
	e.status = msg
	e.frameMutex.Unlock()
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	log.Printf("Opening viewer window (%dx%d tiles)", e.cols, e.rows)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten viewer: %w", err)
	}
	return nil
}

// startGeneration runs one generation in the background unless one is
// already in progress
func (e *EbitenRenderer) startGeneration(stepByStep bool) {
	e.frameMutex.Lock()
	if e.generating {
		e.frameMutex.Unlock()
		return
	}
	e.generating = true
	e.frameMutex.Unlock()

	if stepByStep {
		e.session.Generator.SetStepHook(e.stepHook)
	}

	go func() {
		seed := e.session.Generate(stepByStep)
		e.RenderDungeon(e.session.Generator.Tiles())
		e.ShowMessage(gotext.Get("GENERATED_WITH_SEED", seed))

		e.frameMutex.Lock()
		e.generating = false
		e.frameMutex.Unlock()
	}()
}

// stepHook runs on the generation goroutine: it publishes the partial
// dungeon and blocks until the viewer advances or quits
func (e *EbitenRenderer) stepHook() {
	e.RenderDungeon(e.session.Generator.Tiles())
	e.ShowMessage(gotext.Get("PRESS_SPACE_TO_ADVANCE"))

	select {
	case <-e.advance:
	case <-e.quit:
	}
}

// requestAdvance wakes a paused generation without blocking the game loop
func (e *EbitenRenderer) requestAdvance() {
	select {
	case e.advance <- struct{}{}:
	default:
	}
}

// stop releases any paused generation
func (e *EbitenRenderer) stop() {
	e.quitOnce.Do(func() { close(e.quit) })
}
