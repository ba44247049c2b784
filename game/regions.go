package game

// FindIsolatedRegions returns the maximal 8-connected groups of active cells
// whose cells all share one occupancy value (all empty, or all one side's
// pieces). Groups mixing occupancies are left out. The regions are disjoint.
func FindIsolatedRegions(occupancy *[Size][Size]Side, active *[Size][Size]bool) [][]Position {
	var visited [Size][Size]bool
	var regions [][]Position

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if !active[x][y] || visited[x][y] {
				continue
			}
			region := component(Position{X: x, Y: y}, active, &visited)
			if uniform(region, occupancy) {
				regions = append(regions, region)
			}
		}
	}
	return regions
}

// component collects the active cells 8-connected to start by depth-first traversal.
func component(start Position, active *[Size][Size]bool, visited *[Size][Size]bool) []Position {
	var region []Position
	stack := []Position{start}
	visited[start.X][start.Y] = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, current)

		for _, offset := range offsets {
			next := neighbour(current, offset)
			if !next.InBounds() || !active[next.X][next.Y] || visited[next.X][next.Y] {
				continue
			}
			visited[next.X][next.Y] = true
			stack = append(stack, next)
		}
	}
	return region
}

func uniform(region []Position, occupancy *[Size][Size]Side) bool {
	first := occupancy[region[0].X][region[0].Y]
	for _, p := range region[1:] {
		if occupancy[p.X][p.Y] != first {
			return false
		}
	}
	return true
}
