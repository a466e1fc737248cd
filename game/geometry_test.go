package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/vmath"
)

func TestBorders(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 800, 600

	b := Borders(cfg)
	require.Len(t, b, 4)

	assert.Equal(t, Rect{Center: vmath.V(400, 0), Width: 800, Height: 2, Label: LabelBorder}, b[0], "top")
	assert.Equal(t, Rect{Center: vmath.V(400, 600), Width: 800, Height: 2, Label: LabelBorder}, b[1], "bottom")
	assert.Equal(t, Rect{Center: vmath.V(0, 300), Width: 2, Height: 600, Label: LabelBorder}, b[2], "left")
	assert.Equal(t, Rect{Center: vmath.V(800, 300), Width: 2, Height: 600, Label: LabelBorder}, b[3], "right")
}

func TestWalls_Positions(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 300, 600

	// 3x3 with one closed horizontal (0,2)-(1,2) and one closed vertical (2,0)-(2,1)
	layout := &maze.Layout{
		Size:        3,
		Horizontals: [][]bool{{true, true, false}, {true, true, true}},
		Verticals:   [][]bool{{true, true}, {true, true}, {false, true}},
	}

	walls := Walls(layout, cfg)
	require.Len(t, walls, 2)

	// unitX = 100, unitY = 200
	assert.Equal(t, Rect{Center: vmath.V(250, 200), Width: 100, Height: 5, Label: LabelWall}, walls[0])
	assert.Equal(t, Rect{Center: vmath.V(100, 500), Width: 5, Height: 200, Label: LabelWall}, walls[1])
}

func TestWalls_CountMatchesClosedPassages(t *testing.T) {
	cfg := config.Default()
	for _, n := range []int{2, 5, 9} {
		layout, err := maze.Generate(n, vmath.NewFastRand(uint64(n)))
		require.NoError(t, err)

		walls := Walls(layout, cfg)
		assert.Len(t, walls, 2*n*(n-1)-layout.Passages(), "n=%d", n)
		for _, w := range walls {
			assert.Equal(t, LabelWall, w.Label)
			assert.True(t, w.Center.X > 0 && w.Center.X < cfg.Width)
			assert.True(t, w.Center.Y > 0 && w.Center.Y < cfg.Height)
		}
	}
}

func TestWalls_HorizontalsBeforeVerticals(t *testing.T) {
	cfg := config.Default()
	layout := &maze.Layout{
		Size:        2,
		Horizontals: [][]bool{{false, false}},
		Verticals:   [][]bool{{false}, {false}},
	}

	walls := Walls(layout, cfg)
	require.Len(t, walls, 4)
	assert.Equal(t, cfg.WallThickness, walls[0].Height)
	assert.Equal(t, cfg.WallThickness, walls[1].Height)
	assert.Equal(t, cfg.WallThickness, walls[2].Width)
	assert.Equal(t, cfg.WallThickness, walls[3].Width)
}

func TestCellCenter(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 600, 300

	assert.Equal(t, vmath.V(50, 25), CellCenter(maze.Cell{}, 6, cfg))
	assert.Equal(t, vmath.V(550, 275), CellCenter(maze.Cell{Row: 5, Col: 5}, 6, cfg))
}

func TestEvent_IsPair(t *testing.T) {
	ball := Entity{ID: 1, Label: LabelBall}
	goal := Entity{ID: 2, Label: LabelGoal}

	assert.True(t, Collision(ball, goal).IsPair(LabelBall, LabelGoal))
	assert.True(t, Collision(goal, ball).IsPair(LabelBall, LabelGoal))
	assert.False(t, Collision(ball, ball).IsPair(LabelBall, LabelGoal))
	assert.False(t, Move(EventMoveUp).IsPair("", ""), "moves are never pairs")
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "MoveUp", EventMoveUp.String())
	assert.Equal(t, "Collision", EventCollision.String())
	assert.Equal(t, "None", EventNone.String())
}
