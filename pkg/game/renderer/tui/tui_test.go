package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"roguegen/pkg/engine/world"
	"roguegen/pkg/game/generator"
)

func newTestRenderer() (*TUIRenderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	r := New(buf)
	r.Init()
	return r, buf
}

func TestRenderDungeonMatchesBuffer(t *testing.T) {
	r, buf := newTestRenderer()

	tiles := world.NewTileBuffer(6, 3)
	tiles.Set(1, 1, world.NewTile(world.TileGround))
	tiles.Set(2, 1, world.NewTile(world.TileGround))
	tiles.Set(3, 1, world.NewTile(world.TileDoor))
	tiles.Set(4, 1, world.NewTile(world.TileCorridor))
	tiles.Set(0, 0, world.NewTile(world.TileWallTopLeft))
	tiles.Set(5, 2, world.NewMonsterTile('Z'))

	r.RenderDungeon(tiles)

	if got, want := color.ClearCode(buf.String()), tiles.String(); got != want {
		t.Errorf("rendered output =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderGeneratedDungeon(t *testing.T) {
	r, buf := newTestRenderer()

	cfg := generator.DefaultConfig()
	cfg.Seed = 7
	gen, err := generator.New(cfg)
	if err != nil {
		t.Fatalf("generator.New() error = %v", err)
	}
	gen.Generate(false)

	r.RenderDungeon(gen.Tiles())

	lines := strings.Split(strings.TrimSuffix(color.ClearCode(buf.String()), "\n"), "\n")
	if len(lines) != cfg.Height {
		t.Fatalf("rendered %d lines, want %d", len(lines), cfg.Height)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != cfg.Width {
			t.Errorf("line %d has %d runes, want %d", i, n, cfg.Width)
		}
	}
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"action", "ACTION{Generate}", "Generate"},
		{"subtle", "seed SUBTLE{42}", "seed 42"},
		{"untranslated key", "GT{NO_SUCH_KEY}", "NO_SUCH_KEY"},
		{"unknown function", "NOPE{x}", "ERROR, function not found: NOPE -> x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := color.ClearCode(r.FormatText("%s", tt.in)); got != tt.want {
				t.Errorf("FormatText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStepHookRendersAndWaits(t *testing.T) {
	r, buf := newTestRenderer()

	cfg := generator.DefaultConfig()
	cfg.Seed = 3
	gen, err := generator.New(cfg)
	if err != nil {
		t.Fatalf("generator.New() error = %v", err)
	}

	reads := 0
	gen.SetStepHook(r.StepHook(gen, func() (string, error) {
		reads++
		return "space", nil
	}))
	gen.Generate(true)

	if reads == 0 {
		t.Fatal("step hook never waited for a key")
	}
	if got := strings.Count(buf.String(), "PRESS_ANY_KEY_TO_ADVANCE"); got != reads {
		t.Errorf("prompt shown %d times, want %d", got, reads)
	}
}
