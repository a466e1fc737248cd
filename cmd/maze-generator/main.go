package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-maze/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== RECURSIVE BACKTRACKER MAZE GENERATOR ===")

		size := getInt(reader, "Size [cells per side] (default 8): ", 8)
		seed := getInt(reader, "Seed (default 0 = time): ", 0)
		if seed == 0 {
			seed = int(time.Now().UnixNano())
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		layout, err := maze.Generate(size, rand.New(rand.NewSource(int64(seed))))
		dur := time.Since(startT)

		switch {
		case errors.Is(err, maze.ErrInvalidConfiguration):
			fmt.Printf("Cannot generate a %dx%d maze: size must be at least %d\n", size, size, maze.MinSize)
		case err != nil:
			fmt.Printf("Generation failed: %v\n", err)
		default:
			fmt.Printf("Done in %v (seed %d)\n", dur, seed)
			fmt.Printf("Passages: %d, start cell: (%d,%d)\n", layout.Passages(), layout.Start.Row, layout.Start.Col)

			end := maze.Cell{Row: size - 1, Col: size - 1}
			path := layout.Solve(maze.Cell{}, end)
			fmt.Printf("Solution Path Length: %d cells\n", len(path))

			draw(layout, path)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw prints the layout with the solution path marked
func draw(layout *maze.Layout, path []maze.Cell) {
	onPath := make(map[maze.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	end := maze.Cell{Row: layout.Size - 1, Col: layout.Size - 1}

	fmt.Print(layout.Draw(func(c maze.Cell) string {
		switch {
		case c == maze.Cell{}:
			return " S "
		case c == end:
			return " E "
		case onPath[c]:
			return " • "
		}
		return ""
	}))
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
