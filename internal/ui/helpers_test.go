package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
)

// probe is a widget that records what it was offered and answers with a
// fixed outcome. Its view fills its area with its mark.
type probe struct {
	Placement
	mark    string
	out     event.Outcome
	got     []tea.Msg
	quals   []event.Qualifier
	focused bool
}

func newProbe(mark string, out event.Outcome) *probe {
	return &probe{mark: mark, out: out}
}

func (p *probe) Handle(msg tea.Msg, q event.Qualifier) event.Outcome {
	p.got = append(p.got, msg)
	p.quals = append(p.quals, q)
	return p.out
}

func (p *probe) Init() tea.Cmd { return nil }

func (p *probe) View(width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(p.mark, width)
	}
	return strings.Join(rows, "\n")
}

func (p *probe) SetFocused(f bool) { p.focused = f }

func (p *probe) reset() {
	p.got = nil
	p.quals = nil
}
