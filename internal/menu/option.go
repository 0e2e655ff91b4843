// Package menu implements the launcher's read-parse-dispatch loop.
package menu

import (
	"strconv"
	"strings"
)

// Option is a parsed menu choice. Values 1..N select the N registered
// actions in declaration order; Quit and Invalid are sentinels.
type Option int

const (
	Invalid Option = 0
	Quit    Option = -1
)

func (o Option) String() string {
	switch {
	case o == Quit:
		return "quit"
	case o <= Invalid:
		return "invalid"
	default:
		return strconv.Itoa(int(o))
	}
}

// quitAliases are matched case-sensitively: "Q" is not quit.
var quitAliases = map[string]bool{
	"q":    true,
	"quit": true,
	"exit": true,
}

// Parser maps operator input to an Option for a menu of n actions.
type Parser struct {
	n int
}

func NewParser(n int) Parser {
	return Parser{n: n}
}

// Parse is total and pure: surrounding whitespace is ignored, every other
// token that is not a quit alias or the exact decimal form of 1..n is
// Invalid.
func (p Parser) Parse(token string) Option {
	token = strings.TrimSpace(token)
	if quitAliases[token] {
		return Quit
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > p.n || strconv.Itoa(n) != token {
		return Invalid
	}
	return Option(n)
}
