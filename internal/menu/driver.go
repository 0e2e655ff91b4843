package menu

import (
	"context"
	"io"
	"log/slog"

	"github.com/heroesofcode/devmenu/internal/logging"
)

// Driver renders the menu, reads a choice and dispatches it. With Loop
// unset it handles exactly one choice; with Loop set it repeats until the
// operator quits or an error occurs.
type Driver struct {
	Loop bool

	registry   *Registry
	parser     Parser
	reader     Reader
	out        io.Writer
	styles     Styles
	dispatcher *Dispatcher
	logger     *slog.Logger
}

func NewDriver(reg *Registry, reader Reader, out io.Writer, styles Styles, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Driver{
		registry:   reg,
		parser:     reg.Parser(),
		reader:     reader,
		out:        out,
		styles:     styles,
		dispatcher: NewDispatcher(reg, out, styles, logger),
		logger:     logger,
	}
}

// Run returns nil when the operator quits or, without Loop, after one
// handled choice. Any *InputError or *ActionError ends the run.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("menu started", "actions", d.registry.Len(), "loop", d.Loop)
	for {
		Render(d.out, d.registry, d.styles)
		renderPrompt(d.out)

		line, err := d.reader.ReadLine()
		if err != nil {
			d.logger.Error("reading choice failed", "error", err)
			return err
		}

		result, err := d.dispatcher.Dispatch(ctx, d.parser.Parse(line))
		if err != nil {
			return err
		}
		if result == Terminate || !d.Loop {
			return nil
		}
	}
}
