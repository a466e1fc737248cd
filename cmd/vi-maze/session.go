package main

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/physics"
	"github.com/lixenwraith/vi-maze/vmath"
)

// session is one generated maze and its simulation
type session struct {
	seed  uint64
	world *physics.World
	ctrl  *game.Controller
}

func newSession(cfg *config.Config, seed uint64, hooks game.Hooks) (*session, error) {
	layout, err := maze.Generate(cfg.GridSize, vmath.NewFastRand(seed))
	if err != nil {
		return nil, err
	}
	log.Printf("[maze] seed %d: %d passages, start %v", seed, layout.Passages(), layout.Start)

	world := physics.NewWorld(physics.Config{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Gravity:     vmath.V(0, cfg.Gravity),
		FrictionAir: cfg.FrictionAir,
		MaxSpeed:    cfg.MaxSpeed,
	})

	ctrl, err := game.NewController(world, layout, cfg, hooks)
	if err != nil {
		return nil, err
	}

	return &session{seed: seed, world: world, ctrl: ctrl}, nil
}

// tick steps the world and feeds collision starts back to the controller
func (s *session) tick() {
	for _, c := range s.world.Step() {
		s.ctrl.Handle(game.CollisionFromContact(c))
	}
}

// nextSeed keeps a configured seed reproducible across restarts
func nextSeed(configured, previous uint64) uint64 {
	if configured != 0 {
		if previous == 0 {
			return configured
		}
		return previous + 1
	}
	return uint64(time.Now().UnixNano())
}
