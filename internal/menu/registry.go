package menu

import (
	"errors"
	"fmt"

	"github.com/heroesofcode/devmenu/internal/action"
)

// Entry binds a menu line to its action.
type Entry struct {
	ID     string
	Label  string
	Action action.Action
}

// Registry is the fixed, ordered action table of a menu.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry from entries in menu order.
func NewRegistry(entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.New("menu has no actions")
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Action == nil {
			return nil, fmt.Errorf("action %q has no implementation", e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate action %q", e.ID)
		}
		seen[e.ID] = true
	}
	return &Registry{entries: append([]Entry(nil), entries...)}, nil
}

func (r *Registry) Len() int { return len(r.entries) }

// Lookup returns the entry selected by o. Sentinels never resolve.
func (r *Registry) Lookup(o Option) (Entry, bool) {
	if o < 1 || int(o) > len(r.entries) {
		return Entry{}, false
	}
	return r.entries[o-1], true
}

// Entries returns a copy of the table in menu order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Parser returns a parser sized to this registry.
func (r *Registry) Parser() Parser {
	return NewParser(len(r.entries))
}
