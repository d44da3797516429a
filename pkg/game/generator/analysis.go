package generator

import (
	"github.com/zyedidia/generic/mapset"
)

// ReachableFrom collects the indices of all rooms reachable from start,
// treating every connection as walkable in both directions
func (g *Generator) ReachableFrom(start int) mapset.Set[int] {
	visited := mapset.New[int]()
	if start < 0 || start >= len(g.rooms) {
		return visited
	}

	adjacent := make([][]int, len(g.rooms))
	for i := range g.rooms {
		for _, c := range g.rooms[i].Connections {
			adjacent[i] = append(adjacent[i], c)
			adjacent[c] = append(adjacent[c], i)
		}
	}

	queue := []int{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range adjacent[current] {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// UnreachableRooms returns the non-gone rooms that cannot be reached from the
// entry room. The connectivity passes do not guarantee an empty result.
func (g *Generator) UnreachableRooms() []int {
	if len(g.rooms) == 0 {
		return nil
	}

	reachable := g.ReachableFrom(g.firstRoom)
	var isolated []int
	for i := range g.rooms {
		if !g.rooms[i].IsGone && !reachable.Has(i) {
			isolated = append(isolated, i)
		}
	}
	return isolated
}
