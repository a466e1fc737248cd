package maze

import (
	"strings"
)

// Layout is the topology produced by a generator run.
// Horizontals[r][c] opens (r,c)-(r+1,c); Verticals[r][c] opens (r,c)-(r,c+1).
type Layout struct {
	Size        int
	Horizontals [][]bool // (Size-1) x Size
	Verticals   [][]bool // Size x (Size-1)
	Start       Cell     // First cell visited during generation
}

// Passages returns the number of open walls
func (l *Layout) Passages() int {
	n := 0
	for _, row := range l.Horizontals {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	for _, row := range l.Verticals {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	return n
}

// InBounds reports whether c lies on the grid
func (l *Layout) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < l.Size && c.Col >= 0 && c.Col < l.Size
}

// IsOpen reports whether a and b are adjacent and joined by a passage
func (l *Layout) IsOpen(a, b Cell) bool {
	if !l.InBounds(a) || !l.InBounds(b) {
		return false
	}
	dr, dc := b.Row-a.Row, b.Col-a.Col
	switch {
	case dr == 1 && dc == 0:
		return l.Horizontals[a.Row][a.Col]
	case dr == -1 && dc == 0:
		return l.Horizontals[b.Row][b.Col]
	case dr == 0 && dc == 1:
		return l.Verticals[a.Row][a.Col]
	case dr == 0 && dc == -1:
		return l.Verticals[b.Row][b.Col]
	}
	return false
}

// Neighbors returns the cells reachable from c in one step
func (l *Layout) Neighbors(c Cell) []Cell {
	if !l.InBounds(c) {
		return nil
	}
	result := make([]Cell, 0, 4)
	candidates := [4]Cell{
		{c.Row - 1, c.Col},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
	}
	for _, n := range candidates {
		if l.IsOpen(c, n) {
			result = append(result, n)
		}
	}
	return result
}

// Solve returns the path from start to end inclusive using BFS.
// A perfect maze has exactly one such path. Returns nil for out-of-bounds endpoints.
func (l *Layout) Solve(start, end Cell) []Cell {
	if !l.InBounds(start) || !l.InBounds(end) {
		return nil
	}

	queue := []Cell{start}
	cameFrom := make(map[Cell]Cell)
	visited := map[Cell]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Cell{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, next := range l.Neighbors(curr) {
			if !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// String renders the layout as ASCII art
func (l *Layout) String() string { return l.Draw(nil) }

// Draw renders the layout as ASCII art with each cell interior supplied by mark.
// Interiors are three columns wide; a nil mark or an empty result leaves the cell blank.
func (l *Layout) Draw(mark func(Cell) string) string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", l.Size) + "\n")

	for row := 0; row < l.Size; row++ {
		b.WriteString("|")
		for col := 0; col < l.Size; col++ {
			interior := "   "
			if mark != nil {
				if m := mark(Cell{Row: row, Col: col}); m != "" {
					interior = m
				}
			}
			b.WriteString(interior)
			if col < l.Size-1 && l.Verticals[row][col] {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < l.Size; col++ {
			if row < l.Size-1 && l.Horizontals[row][col] {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
