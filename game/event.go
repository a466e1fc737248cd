package game

import (
	"github.com/lixenwraith/vi-maze/physics"
)

// Entity labels
const (
	LabelBall   = "ball"
	LabelGoal   = "goal"
	LabelWall   = "wall"
	LabelBorder = "border"
)

// EventType discriminates controller events
type EventType uint8

const (
	EventNone EventType = iota
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
	EventCollision
)

func (t EventType) String() string {
	switch t {
	case EventMoveUp:
		return "MoveUp"
	case EventMoveDown:
		return "MoveDown"
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventCollision:
		return "Collision"
	}
	return "None"
}

// Entity is a labeled body reference carried by collision events
type Entity struct {
	ID    physics.BodyID
	Label string
}

// Event is the single input type of Controller.Handle
// A and B are set only for EventCollision
type Event struct {
	Type EventType
	A, B Entity
}

// Move returns a directional event
func Move(t EventType) Event {
	return Event{Type: t}
}

// Collision builds a collision event from two entities
func Collision(a, b Entity) Event {
	return Event{Type: EventCollision, A: a, B: b}
}

// CollisionFromContact adapts a physics contact
func CollisionFromContact(c physics.Contact) Event {
	return Collision(
		Entity{ID: c.A.ID, Label: c.A.Label},
		Entity{ID: c.B.ID, Label: c.B.Label},
	)
}

// IsPair reports whether the event's labels are exactly {x, y}, in either order
func (e Event) IsPair(x, y string) bool {
	if e.Type != EventCollision {
		return false
	}
	return (e.A.Label == x && e.B.Label == y) || (e.A.Label == y && e.B.Label == x)
}
