package maze

import (
	"errors"
)

// ErrInvalidConfiguration is returned when a maze cannot be generated from the given inputs
var ErrInvalidConfiguration = errors.New("maze: invalid configuration")

// MinSize is the smallest grid that has a meaningful spanning tree
const MinSize = 2

// Source supplies uniform integers in [0, n)
// Satisfied by *rand.Rand and vmath.FastRand
type Source interface {
	Intn(n int) int
}

// Direction tags a neighbor relative to the current cell
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "unknown"
}

// Cell is a grid coordinate, 0-indexed
type Cell struct {
	Row, Col int
}

// neighbor is a candidate step out of a cell
type neighbor struct {
	cell Cell
	dir  Direction
}

// frame is one level of the depth-first traversal
type frame struct {
	cell      Cell
	neighbors [4]neighbor
	next      int
}

// Generator carves a perfect maze with a randomized depth-first traversal.
// It owns the visited grid and both wall matrices for the duration of a run.
type Generator struct {
	size int
	rng  Source

	grid        [][]bool
	horizontals [][]bool
	verticals   [][]bool

	// OnVisit, when set, observes cells in the order they are marked visited
	OnVisit func(Cell)
}

// NewGenerator validates inputs and returns a generator for an size×size grid
func NewGenerator(size int, rng Source) (*Generator, error) {
	if size < MinSize || rng == nil {
		return nil, ErrInvalidConfiguration
	}
	return &Generator{size: size, rng: rng}, nil
}

// Generate is a convenience wrapper around NewGenerator and Generator.Generate
func Generate(size int, rng Source) (*Layout, error) {
	g, err := NewGenerator(size, rng)
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// Size returns the grid dimension
func (g *Generator) Size() int {
	return g.size
}

// Generate runs one traversal and returns the resulting layout.
// Each call starts from fresh matrices and consumes the source further.
func (g *Generator) Generate() *Layout {
	g.reset()

	start := Cell{Row: g.rng.Intn(g.size), Col: g.rng.Intn(g.size)}
	g.carve(start)

	layout := &Layout{
		Size:        g.size,
		Horizontals: g.horizontals,
		Verticals:   g.verticals,
		Start:       start,
	}

	// Matrices now belong to the layout
	g.grid, g.horizontals, g.verticals = nil, nil, nil
	return layout
}

func (g *Generator) reset() {
	n := g.size
	g.grid = newMatrix(n, n)
	g.horizontals = newMatrix(n-1, n)
	g.verticals = newMatrix(n, n-1)
}

// carve walks the grid depth-first from start using an explicit stack.
// A frame is pushed exactly when the recursive form would enter a call, so the
// source is consumed in the same order.
func (g *Generator) carve(start Cell) {
	stack := make([]*frame, 0, g.size*g.size)

	if f := g.enter(start); f != nil {
		stack = append(stack, f)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}

		nb := top.neighbors[top.next]
		top.next++

		if !g.inBounds(nb.cell) || g.grid[nb.cell.Row][nb.cell.Col] {
			continue
		}

		g.open(top.cell, nb.dir)

		if f := g.enter(nb.cell); f != nil {
			stack = append(stack, f)
		}
	}
}

// enter marks a cell visited and prepares its shuffled neighbor list.
// Returns nil when the cell was already visited.
func (g *Generator) enter(c Cell) *frame {
	if g.grid[c.Row][c.Col] {
		return nil
	}
	g.grid[c.Row][c.Col] = true
	if g.OnVisit != nil {
		g.OnVisit(c)
	}

	f := &frame{
		cell: c,
		neighbors: [4]neighbor{
			{Cell{c.Row - 1, c.Col}, DirUp},
			{Cell{c.Row, c.Col + 1}, DirRight},
			{Cell{c.Row + 1, c.Col}, DirDown},
			{Cell{c.Row, c.Col - 1}, DirLeft},
		},
	}
	shuffle(f.neighbors[:], g.rng)
	return f
}

// open removes the wall between c and its neighbor in direction d
func (g *Generator) open(c Cell, d Direction) {
	switch d {
	case DirUp:
		g.horizontals[c.Row-1][c.Col] = true
	case DirDown:
		g.horizontals[c.Row][c.Col] = true
	case DirLeft:
		g.verticals[c.Row][c.Col-1] = true
	case DirRight:
		g.verticals[c.Row][c.Col] = true
	}
}

func (g *Generator) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// shuffle swaps the last unprocessed slot with a uniformly chosen unprocessed slot
func shuffle(arr []neighbor, rng Source) {
	count := len(arr)
	for count > 0 {
		idx := rng.Intn(count)
		count--
		arr[count], arr[idx] = arr[idx], arr[count]
	}
}

func newMatrix(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}
