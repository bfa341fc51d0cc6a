package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
	"tuievent/internal/ui/textutil"
)

// StatusBar is a one-line, mouse-only widget. Clicking it cycles through
// Hints. Text is set by the application.
type StatusBar struct {
	Placement
	Text  string
	Hints []string
	hint  int
}

// NewStatusBar creates a status bar with rotating hints.
func NewStatusBar(hints ...string) *StatusBar {
	return &StatusBar{Hints: hints}
}

// Hint returns the hint currently shown.
func (s *StatusBar) Hint() string {
	if len(s.Hints) == 0 {
		return ""
	}
	return s.Hints[s.hint]
}

// Init implements Widget.
func (s *StatusBar) Init() tea.Cmd { return nil }

// Handle implements event.Handler.
func (s *StatusBar) Handle(msg tea.Msg, _ event.Qualifier) event.Outcome {
	m, ok := msg.(tea.MouseMsg)
	if !ok || m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return event.Continue
	}
	if !s.Area().Contains(m.X, m.Y) {
		return event.Continue
	}
	if len(s.Hints) < 2 {
		return event.Unchanged
	}
	s.hint = (s.hint + 1) % len(s.Hints)
	return event.Changed
}

// View implements Widget.
func (s *StatusBar) View(width, _ int) string {
	line := s.Text
	if h := s.Hint(); h != "" {
		if line != "" {
			line += "  "
		}
		line += h
	}
	return Styles.Status.Render(textutil.Fit(line, width))
}
