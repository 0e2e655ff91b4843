package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/heroesofcode/devmenu/internal/logging"
)

// Result tells the loop driver what to do after a dispatch.
type Result int

const (
	Continue Result = iota
	Terminate
)

func (r Result) String() string {
	if r == Terminate {
		return "terminate"
	}
	return "continue"
}

// Dispatcher runs the action bound to an option. Quit and Invalid are
// handled here and never reach an action.
type Dispatcher struct {
	registry *Registry
	out      io.Writer
	styles   Styles
	logger   *slog.Logger
}

func NewDispatcher(reg *Registry, out io.Writer, styles Styles, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{registry: reg, out: out, styles: styles, logger: logger}
}

// Dispatch handles one option. Action failures come back as *ActionError,
// except input failures during an action's prompt, which stay *InputError.
// Either is fatal to the run; nothing is retried.
func (d *Dispatcher) Dispatch(ctx context.Context, o Option) (Result, error) {
	if o == Quit {
		fmt.Fprintln(d.out, farewellText)
		d.logger.Info("quit requested")
		return Terminate, nil
	}

	entry, ok := d.registry.Lookup(o)
	if !ok {
		fmt.Fprintln(d.out, d.styles.Notice(notFoundText))
		d.logger.Debug("invalid option")
		return Continue, nil
	}

	logger := d.logger.With("option", int(o), "action", entry.ID)
	logger.Info("action selected")
	if err := entry.Action.Run(ctx); err != nil {
		logger.Error("action failed", "error", err)
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			return Terminate, err
		}
		return Terminate, &ActionError{Action: entry.ID, Err: err}
	}
	logger.Info("action finished")
	return Continue, nil
}
