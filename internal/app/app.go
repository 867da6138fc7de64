package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/regexplore/internal/config"
	"github.com/dshills/regexplore/internal/event"
	"github.com/dshills/regexplore/internal/match"
	"github.com/dshills/regexplore/internal/samples"
	"github.com/dshills/regexplore/internal/ui"
)

// focusTarget identifies which widget receives plain key input.
type focusTarget int

const (
	focusPattern focusTarget = iota
	focusFlags
	focusContent
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses builtin
	// defaults and disables live reload.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Debug forces debug logging.
	Debug bool

	// ContentPath is an optional file whose contents seed the content
	// box instead of the builtin sample text.
	ContentPath string
}

// Application owns the widgets, the session and the dispatcher, and
// drives everything from a single event loop. All state mutation happens
// on the loop goroutine; the config watcher crosses over by posting an
// interrupt event rather than touching state directly.
type Application struct {
	opts   Options
	cfg    config.Config
	logger *Logger

	dispatcher *event.Dispatcher
	session    *SessionState
	finder     *match.Finder
	library    []samples.Sample

	backend ui.Backend
	theme   *ui.Theme

	patternBar *ui.PatternBar
	flagBar    *ui.FlagBar
	view       *ui.ContentView
	status     *ui.StatusLine
	popup      *ui.Popup
	menu       *ui.SampleMenu
	focus      focusTarget

	watcher *config.Watcher

	mu       sync.Mutex
	running  atomic.Bool
	quitting atomic.Bool
	shutdown sync.Once
}

// New creates an application from options. Configuration problems are
// reported but never fatal; the tool starts with defaults instead.
func New(opts Options) *Application {
	cfg, cfgErr := config.Load(opts.ConfigPath)

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logLevel := ParseLogLevel(level)
	if opts.Debug {
		logLevel = LogLevelDebug
	}
	logger := NewLogger(logLevel, nil)
	if cfgErr != nil {
		logger.Warn("config: %v", cfgErr)
	}

	library := samples.Builtin()
	if cfg.Samples.LuaPath != "" {
		user, err := samples.LoadLua(cfg.Samples.LuaPath)
		if err != nil {
			logger.Warn("user samples: %v", err)
		} else {
			library = append(library, user...)
			logger.WithField("count", len(user)).Info("loaded user samples")
		}
	}

	session := NewSessionState()
	if opts.ContentPath != "" {
		data, err := os.ReadFile(opts.ContentPath)
		if err != nil {
			logger.Warn("content file: %v", err)
		} else {
			session.Content = string(data)
		}
	}

	a := &Application{
		opts:       opts,
		cfg:        cfg,
		logger:     logger,
		session:    session,
		finder:     match.NewFinder(match.WithTimeout(time.Duration(cfg.Engine.TimeoutMS) * time.Millisecond)),
		library:    library,
		theme:      ui.NewTheme(cfg.Theme),
		patternBar: ui.NewPatternBar(session.Pattern),
		flagBar:    ui.NewFlagBar(),
		view:       ui.NewContentView(session.Content),
		status:     ui.NewStatusLine(),
	}
	a.view.SetPadding(cfg.Display.Padding)
	a.view.SetWrap(cfg.Display.Wrap)

	a.dispatcher = event.NewDispatcher(event.WithPanicHandler(func(ev event.Event, v any) {
		a.logger.WithField("event", string(ev.Name)).Error("handler panic: %v", v)
		a.status.SetError(fmt.Sprintf("Internal error during %s", ev.Name))
	}))
	a.registerHandlers()

	return a
}

// SetBackend attaches the terminal (or test) backend. Must be called
// before Run and not while running.
func (a *Application) SetBackend(b ui.Backend) error {
	if a.running.Load() {
		return ErrAlreadyRunning
	}
	a.mu.Lock()
	a.backend = b
	a.mu.Unlock()
	return nil
}

// Run initializes the backend and processes events until quit. It
// returns ErrQuit on a normal exit.
func (a *Application) Run() error {
	a.mu.Lock()
	b := a.backend
	a.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := b.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	defer b.Fini()

	a.startWatcher()
	a.logger.Info("started")

	a.draw(b)
	for {
		ev := b.PollEvent()
		if ev == nil {
			return ErrQuit
		}
		a.handleEvent(ev)
		if a.quitting.Load() {
			return ErrQuit
		}
		a.draw(b)
	}
}

// Shutdown requests the run loop to exit and releases the watcher. It is
// safe to call from any goroutine and more than once.
func (a *Application) Shutdown() {
	a.shutdown.Do(func() {
		a.quitting.Store(true)
		if a.watcher != nil {
			if err := a.watcher.Close(); err != nil {
				a.logger.Warn("watcher close: %v", err)
			}
		}
		a.mu.Lock()
		b := a.backend
		a.mu.Unlock()
		if b != nil {
			// Unblock PollEvent so the loop observes the quit flag.
			_ = b.PostEvent(tcell.NewEventInterrupt(nil))
		}
		a.logger.Info("shutdown")
	})
}

// startWatcher begins live configuration reload if a config path was
// given. Reloads are handed to the loop goroutine as interrupt events.
func (a *Application) startWatcher() {
	if a.opts.ConfigPath == "" {
		return
	}
	w, err := config.NewWatcher(a.opts.ConfigPath,
		func(cfg config.Config) {
			a.mu.Lock()
			b := a.backend
			a.mu.Unlock()
			if b != nil {
				_ = b.PostEvent(tcell.NewEventInterrupt(cfg))
			}
		},
		func(err error) {
			a.logger.Warn("config watch: %v", err)
		})
	if err != nil {
		a.logger.Warn("config watch unavailable: %v", err)
		return
	}
	a.watcher = w
}

// dispatch raises a named event and logs handler failures. User-input
// errors were already presented on the status line by the handler.
func (a *Application) dispatch(name event.Name, payload any) {
	results := a.dispatcher.Dispatch(context.Background(), event.New(name, payload))
	for _, r := range results {
		if r.Err != nil {
			a.logger.WithField("event", string(name)).Debug("handler: %v", r.Err)
		}
	}
}

func (a *Application) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(tev)
	case *tcell.EventInterrupt:
		if cfg, ok := tev.Data().(config.Config); ok {
			a.dispatch(event.ConfigReloaded, cfg)
		}
	case *tcell.EventPaste:
		// Bracketed paste bounds arrive separately; runes in between are
		// delivered as ordinary key events.
	case *tcell.EventResize:
		// Redraw happens after every event.
	}
}

// handleKey translates terminal keys into events and widget edits.
// Modal overlays capture input first: a popup swallows everything, the
// menu navigates and applies.
func (a *Application) handleKey(kev *tcell.EventKey) {
	if a.popup != nil {
		switch kev.Key() {
		case tcell.KeyDown:
			a.popup.ScrollDown()
		case tcell.KeyUp:
			a.popup.ScrollUp()
		default:
			a.popup = nil
		}
		return
	}

	if a.menu != nil {
		switch kev.Key() {
		case tcell.KeyDown:
			a.menu.MoveDown()
		case tcell.KeyUp:
			a.menu.MoveUp()
		case tcell.KeyEnter:
			idx := a.menu.Selected()
			a.menu = nil
			a.dispatch(event.ApplySample, idx)
		case tcell.KeyEscape:
			a.menu = nil
		}
		return
	}

	switch kev.Key() {
	case tcell.KeyCtrlC:
		a.dispatch(event.Quit, nil)
		return
	case tcell.KeyCtrlR:
		a.dispatch(event.FindMatches, nil)
		return
	case tcell.KeyF1:
		a.dispatch(event.ShowHelp, nil)
		return
	case tcell.KeyF2:
		a.menu = ui.NewSampleMenu(a.library)
		return
	case tcell.KeyF3:
		a.dispatch(event.ShowCode, nil)
		return
	case tcell.KeyF7:
		a.dispatch(event.AdjustPadding, -1)
		return
	case tcell.KeyF8:
		a.dispatch(event.AdjustPadding, 1)
		return
	case tcell.KeyTab:
		a.focus = (a.focus + 1) % 3
		return
	case tcell.KeyBacktab:
		a.focus = (a.focus + 2) % 3
		return
	}

	switch a.focus {
	case focusPattern:
		a.handlePatternKey(kev)
	case focusFlags:
		a.handleFlagKey(kev)
	case focusContent:
		a.handleContentKey(kev)
	}
}

func (a *Application) handlePatternKey(kev *tcell.EventKey) {
	switch kev.Key() {
	case tcell.KeyEnter:
		a.dispatch(event.FindMatches, nil)
	case tcell.KeyLeft:
		a.patternBar.MoveLeft()
	case tcell.KeyRight:
		a.patternBar.MoveRight()
	case tcell.KeyHome:
		a.patternBar.MoveHome()
	case tcell.KeyEnd:
		a.patternBar.MoveEnd()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.patternBar.Backspace()
	case tcell.KeyRune:
		a.patternBar.InsertRune(kev.Rune())
	}
}

func (a *Application) handleFlagKey(kev *tcell.EventKey) {
	switch kev.Key() {
	case tcell.KeyEnter:
		a.dispatch(event.FindMatches, nil)
	case tcell.KeyLeft:
		a.flagBar.MoveLeft()
	case tcell.KeyRight:
		a.flagBar.MoveRight()
	case tcell.KeyRune:
		if kev.Rune() == ' ' {
			a.flagBar.Toggle(&a.session.Flags)
			return
		}
		a.flagBar.ToggleLetter(&a.session.Flags, kev.Rune())
	}
}

func (a *Application) handleContentKey(kev *tcell.EventKey) {
	switch kev.Key() {
	case tcell.KeyEnter:
		a.view.InsertRune('\n')
	case tcell.KeyLeft:
		a.view.MoveLeft()
	case tcell.KeyRight:
		a.view.MoveRight()
	case tcell.KeyUp:
		a.view.MoveUp()
	case tcell.KeyDown:
		a.view.MoveDown()
	case tcell.KeyHome:
		a.view.MoveHome()
	case tcell.KeyEnd:
		a.view.MoveEnd()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.view.Backspace()
	case tcell.KeyDelete:
		a.view.Delete()
	case tcell.KeyRune:
		a.view.InsertRune(kev.Rune())
	}
}

// draw renders the full screen: pattern bar, flag bar, content area,
// status line, then any overlay on top. The backend is passed in by the
// run loop, which captured it under the mutex; draw itself never reads
// shared fields.
func (a *Application) draw(b ui.Backend) {
	w, h := b.Size()
	if w < 1 || h < 4 {
		return
	}

	b.Clear()
	b.HideCursor()

	a.patternBar.Draw(b, 1, 0, w-2, a.theme, a.focus == focusPattern)
	a.flagBar.Draw(b, 1, 1, w-2, a.session.Flags, a.theme, a.focus == focusFlags)
	a.view.Draw(b, 1, 2, w-2, h-3, a.theme, a.focus == focusContent)
	a.status.Draw(b, 1, h-1, w-2, a.theme)

	if a.menu != nil {
		b.HideCursor()
		a.menu.Draw(b, a.theme)
	}
	if a.popup != nil {
		b.HideCursor()
		a.popup.Draw(b, a.theme)
	}

	b.Show()
}
