package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/physics"
	"github.com/lixenwraith/vi-maze/vmath"
)

type fakeBody struct {
	center        vmath.Vec2
	width, height float64
	radius        float64
	label         string
	static        bool
	vel           vmath.Vec2
}

// fakeEngine records what the controller asks of the physics boundary
type fakeEngine struct {
	bodies  map[physics.BodyID]*fakeBody
	next    physics.BodyID
	gravity bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{bodies: make(map[physics.BodyID]*fakeBody)}
}

func (f *fakeEngine) AddRect(center vmath.Vec2, width, height float64, label string, static bool) physics.BodyID {
	f.next++
	f.bodies[f.next] = &fakeBody{center: center, width: width, height: height, label: label, static: static}
	return f.next
}

func (f *fakeEngine) AddCircle(center vmath.Vec2, radius float64, label string) physics.BodyID {
	f.next++
	f.bodies[f.next] = &fakeBody{center: center, radius: radius, label: label}
	return f.next
}

func (f *fakeEngine) Velocity(id physics.BodyID) vmath.Vec2       { return f.bodies[id].vel }
func (f *fakeEngine) SetVelocity(id physics.BodyID, v vmath.Vec2) { f.bodies[id].vel = v }
func (f *fakeEngine) SetStatic(id physics.BodyID, static bool)    { f.bodies[id].static = static }
func (f *fakeEngine) SetGravity(enabled bool)                     { f.gravity = enabled }

func testLayout(t *testing.T, size int) *maze.Layout {
	t.Helper()
	layout, err := maze.Generate(size, vmath.NewFastRand(11))
	require.NoError(t, err)
	return layout
}

func newTestController(t *testing.T, hooks Hooks) (*Controller, *fakeEngine) {
	t.Helper()
	eng := newFakeEngine()
	ctrl, err := NewController(eng, testLayout(t, 4), config.Default(), hooks)
	require.NoError(t, err)
	return ctrl, eng
}

func entity(eng *fakeEngine, id physics.BodyID) Entity {
	return Entity{ID: id, Label: eng.bodies[id].label}
}

func TestNewController_Placement(t *testing.T) {
	cfg := config.Default()
	ctrl, eng := newTestController(t, Hooks{})
	n := ctrl.Layout().Size
	unitX, unitY := cfg.Width/float64(n), cfg.Height/float64(n)

	assert.False(t, eng.gravity, "gravity starts off")
	assert.Equal(t, StatePlaying, ctrl.State())

	require.Len(t, ctrl.Borders(), 4)
	for _, id := range ctrl.Borders() {
		assert.True(t, eng.bodies[id].static)
		assert.Equal(t, LabelBorder, eng.bodies[id].label)
	}

	// Closed passages of a perfect maze: all internal walls minus the n²-1 open ones
	closed := 2*n*(n-1) - (n*n - 1)
	require.Len(t, ctrl.Walls(), closed)
	for _, id := range ctrl.Walls() {
		assert.True(t, eng.bodies[id].static)
		assert.Equal(t, LabelWall, eng.bodies[id].label)
	}

	goal := eng.bodies[ctrl.Goal()]
	assert.Equal(t, LabelGoal, goal.label)
	assert.True(t, goal.static)
	assert.Equal(t, vmath.V(float64(n-1)*unitX+unitX/2, float64(n-1)*unitY+unitY/2), goal.center)
	assert.InDelta(t, unitX*cfg.GoalScale, goal.width, 1e-9)
	assert.InDelta(t, unitY*cfg.GoalScale, goal.height, 1e-9)

	ball := eng.bodies[ctrl.Ball()]
	assert.Equal(t, LabelBall, ball.label)
	assert.False(t, ball.static)
	assert.Equal(t, vmath.V(unitX/2, unitY/2), ball.center)
	assert.InDelta(t, unitX*cfg.BallScale, ball.radius, 1e-9)

	assert.Len(t, eng.bodies, 4+closed+2)
}

func TestNewController_NilLayout(t *testing.T) {
	_, err := NewController(newFakeEngine(), nil, config.Default(), Hooks{})
	assert.ErrorIs(t, err, ErrNoLayout)
}

func TestHandle_MoveRightTwice(t *testing.T) {
	ctrl, eng := newTestController(t, Hooks{})
	step := config.Default().VelocityStep

	eng.bodies[ctrl.Ball()].vel = vmath.V(1, 3)

	ctrl.Handle(Move(EventMoveRight))
	ctrl.Handle(Move(EventMoveRight))

	v := eng.bodies[ctrl.Ball()].vel
	assert.InDelta(t, 1+2*step, v.X, 1e-9)
	assert.InDelta(t, 3.0, v.Y, 1e-9, "other axis untouched")
	assert.Equal(t, 2, ctrl.Moves())
}

func TestHandle_EachDirection(t *testing.T) {
	step := config.Default().VelocityStep
	tests := []struct {
		ev   EventType
		want vmath.Vec2
	}{
		{EventMoveUp, vmath.V(0, -step)},
		{EventMoveDown, vmath.V(0, step)},
		{EventMoveLeft, vmath.V(-step, 0)},
		{EventMoveRight, vmath.V(step, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			ctrl, eng := newTestController(t, Hooks{})
			ctrl.Handle(Move(tt.ev))
			assert.Equal(t, tt.want, eng.bodies[ctrl.Ball()].vel)
		})
	}
}

func TestHandle_NoneIsIgnored(t *testing.T) {
	ctrl, eng := newTestController(t, Hooks{})
	ctrl.Handle(Event{})
	assert.Equal(t, vmath.Vec2{}, eng.bodies[ctrl.Ball()].vel)
	assert.Zero(t, ctrl.Moves())
}

func TestHandle_BallGoalWins(t *testing.T) {
	for _, swapped := range []bool{false, true} {
		wins := 0
		ctrl, eng := newTestController(t, Hooks{OnWin: func() { wins++ }})

		ball, goal := entity(eng, ctrl.Ball()), entity(eng, ctrl.Goal())
		if swapped {
			ball, goal = goal, ball
		}
		ctrl.Handle(Collision(ball, goal))

		assert.Equal(t, StateWon, ctrl.State(), "swapped=%v", swapped)
		assert.Equal(t, 1, wins)
		assert.True(t, eng.gravity, "gravity enabled on win")
		for _, id := range ctrl.Walls() {
			assert.False(t, eng.bodies[id].static, "walls released")
		}
		for _, id := range ctrl.Borders() {
			assert.True(t, eng.bodies[id].static, "borders stay")
		}
	}
}

func TestHandle_WinIsIdempotent(t *testing.T) {
	wins := 0
	ctrl, eng := newTestController(t, Hooks{OnWin: func() { wins++ }})
	ev := Collision(entity(eng, ctrl.Ball()), entity(eng, ctrl.Goal()))

	ctrl.Handle(ev)
	ctrl.Handle(ev)
	ctrl.HandleAll([]Event{ev, ev})

	assert.Equal(t, StateWon, ctrl.State())
	assert.Equal(t, 1, wins)
}

func TestHandle_BallWallBumps(t *testing.T) {
	bumps, wins := 0, 0
	ctrl, eng := newTestController(t, Hooks{
		OnWin:  func() { wins++ },
		OnBump: func() { bumps++ },
	})
	ball := entity(eng, ctrl.Ball())

	ctrl.Handle(Collision(ball, entity(eng, ctrl.Walls()[0])))
	ctrl.Handle(Collision(entity(eng, ctrl.Borders()[0]), ball))

	assert.Equal(t, StatePlaying, ctrl.State())
	assert.Equal(t, 2, bumps)
	assert.Zero(t, wins)
	assert.False(t, eng.gravity)
	for _, id := range ctrl.Walls() {
		assert.True(t, eng.bodies[id].static)
	}
}

func TestHandle_UnrelatedCollision(t *testing.T) {
	bumps := 0
	ctrl, eng := newTestController(t, Hooks{OnBump: func() { bumps++ }})

	ctrl.Handle(Collision(entity(eng, ctrl.Walls()[0]), entity(eng, ctrl.Borders()[1])))
	ctrl.Handle(Collision(entity(eng, ctrl.Walls()[0]), entity(eng, ctrl.Goal())))

	assert.Equal(t, StatePlaying, ctrl.State())
	assert.Zero(t, bumps)
}

func TestHandle_MovesAfterWinStillApply(t *testing.T) {
	ctrl, eng := newTestController(t, Hooks{})
	ctrl.Handle(Collision(entity(eng, ctrl.Ball()), entity(eng, ctrl.Goal())))

	ctrl.Handle(Move(EventMoveLeft))
	assert.Equal(t, vmath.V(-config.Default().VelocityStep, 0), eng.bodies[ctrl.Ball()].vel)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Playing", StatePlaying.String())
	assert.Equal(t, "Won", StateWon.String())
}

// openLayout has every internal passage open so nothing blocks the diagonal
func openLayout() *maze.Layout {
	return &maze.Layout{
		Size:        2,
		Horizontals: [][]bool{{true, true}},
		Verticals:   [][]bool{{true}, {true}},
	}
}

func runWorld(world *physics.World, ctrl *Controller, ticks int) {
	for i := 0; i < ticks; i++ {
		for _, c := range world.Step() {
			ctrl.Handle(CollisionFromContact(c))
		}
	}
}

func TestController_WithWorld_ReachesGoal(t *testing.T) {
	cfg := config.Default()
	world := physics.NewWorld(physics.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Gravity: vmath.V(0, cfg.Gravity),
	})

	wins := 0
	ctrl, err := NewController(world, openLayout(), cfg, Hooks{OnWin: func() { wins++ }})
	require.NoError(t, err)

	ctrl.Handle(Move(EventMoveRight))
	ctrl.Handle(Move(EventMoveDown))
	runWorld(world, ctrl, 200)

	assert.Equal(t, StateWon, ctrl.State())
	assert.Equal(t, 1, wins)
	assert.True(t, world.GravityEnabled())
	assert.True(t, world.Body(ctrl.Goal()).Static)
}

func TestController_WithWorld_BumpFiresOncePerContact(t *testing.T) {
	cfg := config.Default()
	world := physics.NewWorld(physics.Config{Width: cfg.Width, Height: cfg.Height})

	bumps := 0
	ctrl, err := NewController(world, openLayout(), cfg, Hooks{OnBump: func() { bumps++ }})
	require.NoError(t, err)

	ctrl.Handle(Move(EventMoveUp))
	runWorld(world, ctrl, 100)

	assert.Equal(t, 1, bumps, "resting against the top border is one contact")
	assert.Equal(t, StatePlaying, ctrl.State())
}

func TestController_WithWorld_WallsFallAfterWin(t *testing.T) {
	cfg := config.Default()
	world := physics.NewWorld(physics.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Gravity: vmath.V(0, cfg.Gravity),
	})
	// A single free-standing wall across the top middle cell
	layout := &maze.Layout{
		Size:        3,
		Horizontals: [][]bool{{true, false, true}, {true, true, true}},
		Verticals:   [][]bool{{true, true}, {true, true}, {true, true}},
	}
	ctrl, err := NewController(world, layout, cfg, Hooks{})
	require.NoError(t, err)

	require.Len(t, ctrl.Walls(), 1)
	wall := world.Body(ctrl.Walls()[0])
	startY := wall.Pos.Y

	ctrl.Handle(Collision(
		Entity{ID: ctrl.Ball(), Label: LabelBall},
		Entity{ID: ctrl.Goal(), Label: LabelGoal},
	))
	runWorld(world, ctrl, 5)

	assert.False(t, wall.Static)
	assert.Greater(t, wall.Pos.Y, startY, "released wall falls under gravity")
	for _, id := range ctrl.Borders() {
		assert.True(t, world.Body(id).Static)
	}
}
