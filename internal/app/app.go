package app

import (
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/termpong/pingpong/internal/audio"
	"github.com/termpong/pingpong/internal/config"
	"github.com/termpong/pingpong/internal/game"
	"github.com/termpong/pingpong/internal/sfx"
	"github.com/termpong/pingpong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg    *config.Config
	logger *log.Logger
	layout game.Layout

	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *game.Engine
	keyboard *ui.Keyboard
	sounds   *audio.Bank

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		layout:   game.DefaultLayout(),
		keyboard: ui.NewKeyboard(),
		quit:     make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It loads the sounds, initializes the screen and runs the game until the
// player quits.
func (a *App) Run() error {
	// Game works without sound
	if err := audio.Init(); err != nil {
		a.logger.Warn("audio unavailable, playing silently", "error", err)
	}
	sounds := audio.Load(a.cfg.AssetsDir, a.logger)
	sounds.SetMuted(a.cfg.Mute)

	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return errors.Wrap(err, "initialize screen")
	}
	a.attach(screen, nil, sounds)

	engine, err := game.NewEngine(a.layout, newRand(a.cfg.Seed))
	if err != nil {
		err = a.fail(errors.Wrap(err, "create engine"))
		a.cleanup()
		return err
	}
	a.engine = engine

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.sigChan:
			a.logger.Info("signal received", "signal", sig)
			a.stop()
		case <-a.quit:
		}
	}()

	a.logger.Info("game started", "fps", a.cfg.FPS, "assets", a.cfg.AssetsDir, "mute", a.cfg.Mute)
	runErr := a.mainLoop()

	a.cleanup()
	a.logger.Info("game exited")

	return runErr
}

func (a *App) attach(screen *ui.Screen, engine *game.Engine, sounds *audio.Bank) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.engine = engine
	a.sounds = sounds
}

// fail shows err on the error screen and waits for a key before returning it.
func (a *App) fail(err error) error {
	a.logger.Error("fatal error", "error", err)
	a.renderer.RenderError(err.Error())
	for {
		switch a.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return err
		}
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// mainLoop forwards terminal events to the keyboard and advances the game one
// frame per tick.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.renderer.Render(a.engine.Snapshot())

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if a.tick() {
				return nil
			}
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsInterruptKey(ev.Key()) {
			a.logger.Info("interrupted", "state", a.engine.State())
			return true
		}
		if action, ok := ui.KeyToAction(ev.Key(), ev.Rune()); ok {
			a.keyboard.Press(action)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Render(a.engine.Snapshot())
	}

	return false
}

// tick runs one frame: input, simulation, sounds, then drawing.
// Returns true once the player has chosen to exit.
func (a *App) tick() bool {
	prev := a.engine.State()

	a.engine.HandleInput(a.keyboard.Frame())
	for _, ev := range a.engine.Update() {
		if effect, ok := effectFor(ev); ok {
			a.sounds.Play(effect)
		}
	}

	if a.engine.Exited() {
		return true
	}

	if state := a.engine.State(); state != prev {
		player, ai := a.engine.Scores()
		a.logger.Info("state changed",
			"from", prev,
			"to", state,
			"target", a.engine.WinningScore(),
			"player", player,
			"ai", ai,
			"winner", a.engine.Winner(),
		)
		// Keys pressed for the old screen must not leak into the new one.
		a.keyboard.Reset()
	}

	a.renderer.Render(a.engine.Snapshot())
	return false
}

// effectFor maps a simulation event to the sound it plays.
func effectFor(ev game.Event) (sfx.Effect, bool) {
	switch ev {
	case game.EventPaddle:
		return sfx.Paddle, true
	case game.EventWall:
		return sfx.Wall, true
	case game.EventScore:
		return sfx.Score, true
	default:
		return "", false
	}
}

func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.stop()

	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}
