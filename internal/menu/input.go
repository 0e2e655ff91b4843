package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
)

// Reader reads one line of operator input at a time.
type Reader interface {
	ReadLine() (string, error)
}

// LineReader reads operator lines through readline. On a terminal it gives
// line editing and in-session history; on piped input it reads plain lines.
type LineReader struct {
	rl     *readline.Instance
	closed bool
}

// Interactive reports whether in and out are both terminals.
func Interactive(in io.Reader, out io.Writer) bool {
	return isTerminal(in) && isTerminal(out)
}

// NewLineReader reads from in and echoes edits to out. With interactive
// false the terminal is never put in raw mode.
func NewLineReader(in io.Reader, out io.Writer, interactive bool) (*LineReader, error) {
	cfg := &readline.Config{
		Stdin:          io.NopCloser(in),
		Stdout:         out,
		FuncIsTerminal: func() bool { return interactive },
	}
	if !interactive {
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
		cfg.FuncOnWidthChanged = func(func()) {}
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("init line reader: %w", err)
	}
	return &LineReader{rl: rl}, nil
}

// ReadLine returns the next line with trailing whitespace removed. A final
// line without a newline is still returned. End of input is an *InputError
// wrapping ErrInputClosed, and so is every read after it; Ctrl-C is an
// *InputError wrapping readline.ErrInterrupt.
func (l *LineReader) ReadLine() (string, error) {
	if l.closed {
		return "", &InputError{Err: ErrInputClosed}
	}
	line, err := l.rl.Readline()
	switch {
	case errors.Is(err, io.EOF):
		l.closed = true
		return "", &InputError{Err: ErrInputClosed}
	case err != nil:
		return "", &InputError{Err: err}
	}
	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}

func (l *LineReader) Close() error {
	l.closed = true
	return l.rl.Close()
}

// Prompt asks questions on out and reads replies through the same Reader as
// the menu loop.
type Prompt struct {
	reader Reader
	out    io.Writer
}

func NewPrompt(reader Reader, out io.Writer) *Prompt {
	return &Prompt{reader: reader, out: out}
}

// Ask prints a blank line and the question, then returns the trimmed reply.
func (p *Prompt) Ask(question string) (string, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, question)
	reply, err := p.reader.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
