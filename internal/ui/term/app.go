package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/input"
	"github.com/dshills/textobj/internal/input/key"
	"github.com/dshills/textobj/internal/input/keymap"
	"github.com/dshills/textobj/internal/log"
)

// App runs an editor session on a tcell screen.
type App struct {
	screen tcell.Screen
	editor *editor.Editor
	input  *input.Handler
	logger *log.Logger
	styles Styles

	top  int
	quit bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.logger = log.OrNull(l).WithComponent("term")
	}
}

// WithStyles overrides the default styles.
func WithStyles(s Styles) Option {
	return func(a *App) {
		a.styles = s
	}
}

// New creates an App drawing ed on screen. The screen must already be
// initialised; the caller finalises it.
func New(screen tcell.Screen, ed *editor.Editor, keys *keymap.Registry, opts ...Option) *App {
	a := &App{
		screen: screen,
		editor: ed,
		input:  input.NewHandler(ed, keys),
		logger: log.Null,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Editor returns the editor driven by the app.
func (a *App) Editor() *editor.Editor {
	return a.editor
}

// Quit reports whether a quit key has been pressed.
func (a *App) Quit() bool {
	return a.quit
}

// Run draws and handles events until a quit key is pressed, the screen is
// finalised or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for !a.quit {
		a.Draw()
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			a.HandleKey(key.FromTcell(ev))
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// HandleKey processes one key press. The status message is cleared when
// a new key sequence starts.
func (a *App) HandleKey(ev key.Event) {
	if isQuit(ev) {
		a.quit = true
		return
	}
	if a.input.Idle() {
		a.editor.ClearStatus()
	}
	res := a.input.HandleKeyEvent(ev)
	if res.Outcome == input.Executed || res.Outcome == input.Failed {
		a.logger.Debug("%s %s x%d", res.Outcome, res.Command, res.Count)
	}
}

// PendingKeys returns the count and keys typed towards a binding.
func (a *App) PendingKeys() string {
	return a.input.PendingKeys()
}

func isQuit(ev key.Event) bool {
	if !ev.Modifiers.Has(key.ModCtrl) {
		return false
	}
	return ev.Rune == 'q' || ev.Rune == 'c'
}
