package action

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Built-in action IDs, in default menu order.
const (
	CloneRepos   = "clone"
	Releasor     = "releasor"
	RustProject  = "rust"
	InstallXcode = "xcode"
	CreateRepo   = "repo"
	BrewUpgrade  = "upgrade"
)

// Definition describes a built-in action: its menu label, the default command
// prefix, and the question asked before running it (empty for none).
type Definition struct {
	ID     string
	Label  string
	Argv   []string
	Prompt string
}

var definitions = []Definition{
	{ID: CloneRepos, Label: "Clone HeroesOfCode's repositories", Argv: []string{"hoc", "clone"}},
	{ID: Releasor, Label: "Releasor", Argv: []string{"releasor", "-f"}, Prompt: "What's the package name: "},
	{ID: RustProject, Label: "Create rust project", Argv: []string{"cargo", "new"}, Prompt: "What's the project name: "},
	{ID: InstallXcode, Label: "Install Xcode version", Argv: []string{"xcodes", "install"}, Prompt: "Which Xcode version: "},
	{ID: CreateRepo, Label: "Create GitHub repository", Argv: []string{"gh", "repo", "create", "--private"}, Prompt: "What's the repository name: "},
	{ID: BrewUpgrade, Label: "Upgrade Homebrew packages", Argv: []string{"brew", "upgrade"}},
}

// Definitions returns the built-in actions in default menu order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		d.Argv = slices.Clone(d.Argv)
		out[i] = d
	}
	return out
}

// IDs returns the IDs of the built-in actions in default menu order.
func IDs() []string {
	ids := make([]string, len(definitions))
	for i, d := range definitions {
		ids[i] = d.ID
	}
	return ids
}

// Lookup returns the built-in definition with the given ID.
func Lookup(id string) (Definition, bool) {
	for _, d := range Definitions() {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Deps are the collaborators shared by all built-in actions.
type Deps struct {
	Runner   Runner
	Prompter Prompter
	Workdir  string
	Logger   *slog.Logger
}

// New builds the action for def. argv replaces def.Argv as the command
// prefix; the prompted value, if any, is appended to it.
func New(def Definition, argv []string, deps Deps) (Action, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("action %s: empty command", def.ID)
	}
	if def.ID == RustProject {
		return &Scaffold{
			NewArgv:  slices.Clone(argv),
			Prompt:   def.Prompt,
			Workdir:  deps.Workdir,
			Template: rustFiles,
			Runner:   deps.Runner,
			Prompter: deps.Prompter,
			Logger:   deps.Logger,
		}, nil
	}
	return &Command{
		Argv:     slices.Clone(argv),
		Prompt:   def.Prompt,
		Dir:      deps.Workdir,
		Runner:   deps.Runner,
		Prompter: deps.Prompter,
	}, nil
}

// Command runs Argv once, optionally after one prompt whose trimmed reply is
// passed verbatim as the last argument.
type Command struct {
	Argv     []string
	Prompt   string
	Dir      string
	Runner   Runner
	Prompter Prompter
}

func (c *Command) Run(ctx context.Context) error {
	argv := slices.Clone(c.Argv)
	if c.Prompt != "" {
		reply, err := c.Prompter.Ask(c.Prompt)
		if err != nil {
			return err
		}
		argv = append(argv, reply)
	}
	return c.Runner.Run(ctx, processFromArgv(argv, c.Dir))
}
