package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/audio"
	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/render"
	"github.com/lixenwraith/vi-maze/render/renderers"
)

// options holds the command line overrides
type options struct {
	size  int
	seed  uint64
	debug bool
	mute  bool
	env   string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("vi-maze", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.IntVar(&opts.size, "size", 0, "Grid size in cells per side (0 = from config)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Maze seed (0 = from config or time)")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to logs/vi-maze.log")
	fs.BoolVar(&opts.mute, "mute", false, "Disable audio")
	fs.StringVar(&opts.env, "env", "", "Path to a .env file (default ./.env)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr, tcell.NewScreen))
}

// realMain runs the game and returns the process exit code. Every exit goes
// through its deferred cleanup; main owns the only os.Exit.
func realMain(args []string, stderr io.Writer, newScreen func() (tcell.Screen, error)) (code int) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var envFiles []string
	if opts.env != "" {
		envFiles = append(envFiles, opts.env)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	if opts.size != 0 {
		cfg.GridSize = opts.size
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.debug {
		cfg.Debug = true
	}
	if opts.mute {
		cfg.AudioEnabled = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: the deferred Fini below has already restored the terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "\n\x1b[31mVI-MAZE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager(1.0)
	if cfg.AudioEnabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game runs without sound
			log.Printf("[audio] initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()

	if err := run(screen, cfg, sound); err != nil {
		screen.Fini()
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func run(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) error {
	hooks := game.Hooks{
		OnWin:  sound.PlayWin,
		OnBump: sound.PlayBump,
	}

	sess, err := newSession(cfg, nextSeed(cfg.Seed, 0), hooks)
	if err != nil {
		return err
	}

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(renderers.NewWallRenderer(), render.PriorityWall)
	orchestrator.Register(renderers.NewEntityRenderer(), render.PriorityEntities)
	orchestrator.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewBannerRenderer(), render.PriorityOverlay)

	keys := input.DefaultKeyTable()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			intent := keys.Translate(ev)
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("[game] session %s: quit", sess.ctrl.Session())
				return nil
			case input.IntentRestart:
				next, err := newSession(cfg, nextSeed(cfg.Seed, sess.seed), hooks)
				if err != nil {
					return err
				}
				sess = next
			case input.IntentResize:
				orchestrator.Resize()
			case input.IntentMove:
				if gev, ok := intent.Event(); ok {
					sess.ctrl.Handle(gev)
				}
			}

		case <-ticker.C:
			sess.tick()
			w, h := screen.Size()
			orchestrator.RenderFrame(render.NewRenderContext(sess.world, sess.ctrl, sess.seed, w, h))
		}
	}
}
