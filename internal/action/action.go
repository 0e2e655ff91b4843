// Package action holds the behaviors bound to menu entries: running an
// external tool, optionally after asking the operator for one value, and
// scaffolding new projects.
package action

import "context"

// Action is the behavior of a single menu entry.
type Action interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to Action.
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error { return f(ctx) }

// Prompter asks the operator a question and returns the trimmed reply.
type Prompter interface {
	Ask(question string) (string, error)
}
