package menu

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	promptText    = "Choose an option: "
	farewellText  = "Bye 👋"
	notFoundText  = "❌ This option does not exist"
	quitMenuLabel = "Quit"
)

// Styles colors menu output. The zero value renders plain text.
type Styles struct {
	enabled bool
	key     lipgloss.Style
	notice  lipgloss.Style
}

// NewStyles returns styles for w; color false yields plain text.
func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return Styles{}
	}
	r := lipgloss.NewRenderer(w)
	return Styles{
		enabled: true,
		key:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (s Styles) Key(text string) string {
	if !s.enabled {
		return text
	}
	return s.key.Render(text)
}

func (s Styles) Notice(text string) string {
	if !s.enabled {
		return text
	}
	return s.notice.Render(text)
}

// ColorEnabled reports whether w is a terminal that should get colors.
// NO_COLOR and TERM=dumb turn colors off.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(w)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the numbered menu with "q - Quit" last.
func Render(w io.Writer, reg *Registry, styles Styles) {
	fmt.Fprintln(w)
	for i, e := range reg.entries {
		fmt.Fprintf(w, "%s - %s\n", styles.Key(fmt.Sprint(i+1)), e.Label)
	}
	fmt.Fprintf(w, "%s - %s\n", styles.Key("q"), quitMenuLabel)
}

func renderPrompt(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, promptText)
}
