package action

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Process describes one external program invocation.
type Process struct {
	Name string
	Args []string
	Dir  string
}

// Argv returns the program name followed by its arguments.
func (p Process) Argv() []string {
	return append([]string{p.Name}, p.Args...)
}

func (p Process) String() string {
	return strings.Join(p.Argv(), " ")
}

// processFromArgv splits argv into a Process rooted at dir.
func processFromArgv(argv []string, dir string) Process {
	return Process{Name: argv[0], Args: argv[1:], Dir: dir}
}

// Runner starts a program and waits for it to finish. A non-zero exit
// status is an error.
type Runner interface {
	Run(ctx context.Context, p Process) error
}

// ExecRunner runs programs with os/exec, attached to the given streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger *slog.Logger
}

// NewExecRunner returns a runner attached to the launcher's own terminal.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

func (r *ExecRunner) Run(ctx context.Context, p Process) error {
	cmd := exec.CommandContext(ctx, p.Name, p.Args...)
	cmd.Dir = p.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if r.logger != nil {
		r.logger.Info("running process", "argv", p.Argv(), "dir", p.Dir)
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d: %w", p.Name, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("start %s: %w", p.Name, err)
	}
	return nil
}
