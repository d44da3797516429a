// Package devtools provides developer tools for inspecting generated dungeons.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"roguegen/pkg/engine/world"
	"roguegen/pkg/game/generator"
)

// ErrNotGenerated is returned when dumping a generator that has not run yet
var ErrNotGenerated = errors.New("dungeon has not been generated")

// WriteDump writes a full debug dump of the last generated dungeon: metadata,
// legend, map, rooms, corridors, monsters and reachability. The format is
// sections of "key: value" lines so it stays readable and diffable.
func WriteDump(w io.Writer, g *generator.Generator) error {
	rooms := g.Rooms()
	if len(rooms) == 0 {
		return ErrNotGenerated
	}

	f := bufio.NewWriter(w)
	cfg := g.Config()
	cellWidth, cellHeight := g.CellSize()
	up, down := g.Stairs()

	// --- Metadata ---
	fmt.Fprintln(f, "=== DUNGEON DUMP (layout, connections, entities) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", g.Seed())
	fmt.Fprintf(f, "width: %d\n", cfg.Width)
	fmt.Fprintf(f, "height: %d\n", cfg.Height)
	fmt.Fprintf(f, "horizontal_rooms: %d\n", cfg.HorizontalRooms)
	fmt.Fprintf(f, "vertical_rooms: %d\n", cfg.VerticalRooms)
	fmt.Fprintf(f, "cell_width: %d\n", cellWidth)
	fmt.Fprintf(f, "cell_height: %d\n", cellHeight)
	fmt.Fprintf(f, "monster_chance: %d\n", cfg.MonsterChance)
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(f, "entry_room: %d\n", g.EntryRoom())
	fmt.Fprintf(f, "exit_room: %d\n", g.ExitRoom())
	fmt.Fprintf(f, "stairs_up: %s\n", up)
	fmt.Fprintf(f, "stairs_down: %s\n", down)
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend (tile glyphs) ---")
	fmt.Fprintf(f, "%c = floor  %c%c%c%c%c%c = walls  %c = door  %c = corridor  %c = stairs up  %c = stairs down  M/P/Z = Medusa/Phantom/Zombie\n",
		world.GlyphGround,
		world.GlyphWallHorizontal, world.GlyphWallVertical,
		world.GlyphWallTopLeft, world.GlyphWallTopRight,
		world.GlyphWallBottomLeft, world.GlyphWallBottomRight,
		world.GlyphDoor, world.GlyphCorridor, world.GlyphStairsUp, world.GlyphStairsDown)
	fmt.Fprintln(f, "")

	// --- Map ---
	fmt.Fprintln(f, "--- Map ---")
	fmt.Fprint(f, g.Tiles().String())
	fmt.Fprintln(f, "")

	// --- Rooms ---
	fmt.Fprintln(f, "--- Rooms (grid order, x outer) ---")
	for i, r := range rooms {
		fmt.Fprintf(f, "  index: %d cell: %d,%d x: %d y: %d width: %d height: %d gone: %v connections: %s\n",
			i, r.IX, r.IY, r.X, r.Y, r.Width, r.Height, r.IsGone, formatConnections(r))
	}
	fmt.Fprintln(f, "")

	// --- Corridors ---
	fmt.Fprintln(f, "--- Corridors ---")
	for _, c := range g.Corridors() {
		doors := make([]string, len(c.Doors))
		for i, d := range c.Doors {
			doors[i] = d.String()
		}
		fmt.Fprintf(f, "  from: %d to: %d direction: %s start: %s end: %s doors: [%s] length: %d\n",
			c.From, c.To, c.Direction, c.Start, c.End, strings.Join(doors, " "), len(c.Path))
	}
	fmt.Fprintln(f, "")

	// --- Monsters ---
	fmt.Fprintln(f, "--- Monsters ---")
	if len(g.Monsters()) == 0 {
		fmt.Fprintln(f, "  (none)")
	}
	for _, m := range g.Monsters() {
		fmt.Fprintf(f, "  kind: %s glyph: %c position: %s\n", m.Kind, m.Kind.Glyph(), m.Position())
	}
	fmt.Fprintln(f, "")

	// --- Reachability ---
	fmt.Fprintln(f, "--- Reachability (from entry room) ---")
	unreachable := g.UnreachableRooms()
	if len(unreachable) == 0 {
		fmt.Fprintln(f, "  unreachable_rooms: none")
	} else {
		fmt.Fprintf(f, "  unreachable_rooms: %v\n", unreachable)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END DUNGEON DUMP ===")

	return f.Flush()
}

// formatConnections renders a room's edges as "target:direction" pairs
func formatConnections(r generator.Room) string {
	if len(r.Connections) == 0 {
		return "[]"
	}

	parts := make([]string, len(r.Connections))
	for i, c := range r.Connections {
		parts[i] = fmt.Sprintf("%d:%s", c, r.ConnectionDirections[i])
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DumpDungeonToFile writes a dump of g to path and returns the absolute path.
// Paths ending in .html get an HTML screenshot instead of the text dump.
func DumpDungeonToFile(g *generator.Generator, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(absPath), ".html") {
		err = WriteScreenshotHTML(f, g)
	} else {
		err = WriteDump(f, g)
	}
	if err != nil {
		return absPath, err
	}

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
