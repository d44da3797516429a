package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	engineinput "roguegen/pkg/engine/input"
	"roguegen/pkg/game/devtools"
)

// watchedKeys maps the Ebiten keys the viewer reacts to onto input key codes
var watchedKeys = map[ebiten.Key]string{
	ebiten.KeyG:      "KeyG",
	ebiten.KeyS:      "KeyS",
	ebiten.KeyM:      "KeyM",
	ebiten.KeySpace:  "Space",
	ebiten.KeyEnter:  "Enter",
	ebiten.KeyEscape: "Escape",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	for key, code := range watchedKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}

		switch engineinput.MapKey(code) {
		case engineinput.ActionGenerate:
			e.startGeneration(false)
		case engineinput.ActionGenerateStepwise:
			e.startGeneration(true)
		case engineinput.ActionAdvance:
			e.requestAdvance()
		case engineinput.ActionDump:
			e.dump()
		case engineinput.ActionQuit:
			e.stop()
			return ebiten.Termination
		}
	}

	return nil
}

// dump writes the current dungeon to the configured dump file
func (e *EbitenRenderer) dump() {
	e.frameMutex.RLock()
	busy := e.generating
	e.frameMutex.RUnlock()

	if busy || e.dumpPath == "" {
		return
	}

	path, err := devtools.DumpDungeonToFile(e.session.Generator, e.dumpPath)
	if err != nil {
		log.Printf("Dump failed: %v", err)
		e.ShowMessage(gotext.Get("DUMP_FAILED"))
		return
	}
	e.ShowMessage(gotext.Get("DUMP_WRITTEN", path))
}

// Layout returns the viewer's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cols * tileWidth, (e.rows + statusLines) * tileHeight
}
