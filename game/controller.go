// Package game turns a maze layout into world bodies and drives the Playing -> Won
// state machine from directional input and collision events.
package game

import (
	"errors"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/physics"
	"github.com/lixenwraith/vi-maze/vmath"
)

// ErrNoLayout is returned when the controller is built without a layout
var ErrNoLayout = errors.New("game: nil layout")

// Engine is the physics boundary the controller drives.
// physics.World satisfies it.
type Engine interface {
	AddRect(center vmath.Vec2, width, height float64, label string, static bool) physics.BodyID
	AddCircle(center vmath.Vec2, radius float64, label string) physics.BodyID
	Velocity(id physics.BodyID) vmath.Vec2
	SetVelocity(id physics.BodyID, v vmath.Vec2)
	SetStatic(id physics.BodyID, static bool)
	SetGravity(enabled bool)
}

// State of a session
type State uint8

const (
	StatePlaying State = iota
	StateWon
)

func (s State) String() string {
	if s == StateWon {
		return "Won"
	}
	return "Playing"
}

// Hooks are optional notifications fired from Handle
type Hooks struct {
	OnWin  func()
	OnBump func()
}

// Controller owns the player, goal and wall bodies of one session
type Controller struct {
	session uuid.UUID
	cfg     *config.Config
	engine  Engine
	layout  *maze.Layout
	hooks   Hooks

	ball    physics.BodyID
	goal    physics.BodyID
	walls   []physics.BodyID
	borders []physics.BodyID

	state State
	moves int
}

// NewController places borders, walls, goal and ball into the engine with gravity off
func NewController(engine Engine, layout *maze.Layout, cfg *config.Config, hooks Hooks) (*Controller, error) {
	if layout == nil {
		return nil, ErrNoLayout
	}

	c := &Controller{
		session: uuid.New(),
		cfg:     cfg,
		engine:  engine,
		layout:  layout,
		hooks:   hooks,
		state:   StatePlaying,
	}

	engine.SetGravity(false)

	for _, r := range Borders(cfg) {
		c.borders = append(c.borders, engine.AddRect(r.Center, r.Width, r.Height, r.Label, true))
	}
	for _, r := range Walls(layout, cfg) {
		c.walls = append(c.walls, engine.AddRect(r.Center, r.Width, r.Height, r.Label, true))
	}

	n := layout.Size
	unitX, unitY := cfg.CellSize(n)

	goalCenter := CellCenter(maze.Cell{Row: n - 1, Col: n - 1}, n, cfg)
	c.goal = engine.AddRect(goalCenter, unitX*cfg.GoalScale, unitY*cfg.GoalScale, LabelGoal, true)

	ballCenter := CellCenter(maze.Cell{}, n, cfg)
	radius := math.Min(unitX, unitY) * cfg.BallScale
	c.ball = engine.AddCircle(ballCenter, radius, LabelBall)

	log.Printf("[game] session %s: %dx%d maze, %d walls", c.session, n, n, len(c.walls))
	return c, nil
}

// Handle dispatches one event. Unknown event types are ignored.
func (c *Controller) Handle(ev Event) {
	switch ev.Type {
	case EventMoveUp:
		c.nudge(0, -c.cfg.VelocityStep)
	case EventMoveDown:
		c.nudge(0, c.cfg.VelocityStep)
	case EventMoveLeft:
		c.nudge(-c.cfg.VelocityStep, 0)
	case EventMoveRight:
		c.nudge(c.cfg.VelocityStep, 0)
	case EventCollision:
		c.collide(ev)
	}
}

// HandleAll dispatches events in order
func (c *Controller) HandleAll(events []Event) {
	for _, ev := range events {
		c.Handle(ev)
	}
}

// nudge changes one velocity axis of the ball, the other is untouched
func (c *Controller) nudge(dx, dy float64) {
	v := c.engine.Velocity(c.ball)
	v.X += dx
	v.Y += dy
	c.engine.SetVelocity(c.ball, v)
	c.moves++
}

func (c *Controller) collide(ev Event) {
	switch {
	case ev.IsPair(LabelBall, LabelGoal):
		c.win()
	case ev.IsPair(LabelBall, LabelWall), ev.IsPair(LabelBall, LabelBorder):
		if c.hooks.OnBump != nil {
			c.hooks.OnBump()
		}
	}
}

// win releases the maze: gravity on, every wall dynamic. Runs once per session.
func (c *Controller) win() {
	if c.state == StateWon {
		return
	}
	c.state = StateWon

	c.engine.SetGravity(true)
	for _, id := range c.walls {
		c.engine.SetStatic(id, false)
	}

	log.Printf("[game] session %s: won after %d moves", c.session, c.moves)
	if c.hooks.OnWin != nil {
		c.hooks.OnWin()
	}
}

// State returns the current session state
func (c *Controller) State() State {
	return c.state
}

// Moves returns the number of directional inputs handled
func (c *Controller) Moves() int {
	return c.moves
}

// Session returns the session id used in logs
func (c *Controller) Session() uuid.UUID {
	return c.session
}

// Layout returns the maze the session was built from
func (c *Controller) Layout() *maze.Layout {
	return c.layout
}

func (c *Controller) Ball() physics.BodyID { return c.ball }
func (c *Controller) Goal() physics.BodyID { return c.goal }

// Walls returns the inner wall body ids. The slice is owned by the controller.
func (c *Controller) Walls() []physics.BodyID {
	return c.walls
}

// Borders returns the boundary body ids
func (c *Controller) Borders() []physics.BodyID {
	return c.borders
}
