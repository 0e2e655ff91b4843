package action

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/heroesofcode/devmenu/internal/fsutil"
)

const setupScriptName = "rust_files.sh"

//go:embed templates/rust_files.sh
var rustFiles []byte

// Scaffold creates a project with NewArgv, then drops Template into the new
// project directory, executes it there and deletes it, and finally removes
// the project's .git directory. Steps run once each; a failed step aborts
// the rest and leaves earlier steps in place.
type Scaffold struct {
	NewArgv  []string
	Prompt   string
	Workdir  string
	Template []byte
	Runner   Runner
	Prompter Prompter
	Logger   *slog.Logger
}

func (s *Scaffold) Run(ctx context.Context) error {
	name, err := s.Prompter.Ask(s.Prompt)
	if err != nil {
		return err
	}

	workdir := s.Workdir
	if workdir == "" {
		if workdir, err = os.Getwd(); err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
	}

	projectDir, err := projectPath(workdir, name)
	if err != nil {
		return err
	}

	argv := append(slices.Clone(s.NewArgv), name)
	if err := s.Runner.Run(ctx, processFromArgv(argv, workdir)); err != nil {
		return err
	}

	script := filepath.Join(projectDir, setupScriptName)
	if err := fsutil.WriteExecutable(script, s.Template); err != nil {
		return err
	}
	s.log("setup script written", "path", script)

	if err := s.Runner.Run(ctx, Process{Name: script, Dir: projectDir}); err != nil {
		return err
	}

	if err := os.Remove(script); err != nil {
		return fmt.Errorf("remove setup script: %w", err)
	}
	if err := os.RemoveAll(filepath.Join(projectDir, ".git")); err != nil {
		return fmt.Errorf("remove .git: %w", err)
	}
	s.log("project scaffolded", "dir", projectDir)
	return nil
}

// projectPath returns the directory the project named name gets under
// workdir. It must lie strictly inside workdir: the scaffold deletes its .git.
func projectPath(workdir, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid project name %q", name)
	}
	dir := filepath.Join(workdir, name)
	rel, err := filepath.Rel(workdir, dir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid project name %q: must be a directory inside %s", name, workdir)
	}
	return dir, nil
}

func (s *Scaffold) log(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Info(msg, args...)
	}
}
