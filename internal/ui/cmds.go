package ui

import tea "github.com/charmbracelet/bubbletea"

// Cmds collects commands widgets emit while handling an event. Handlers
// only return an Outcome, so side effects for Bubble Tea go here and the
// Root drains them after each dispatch.
type Cmds struct {
	pending []tea.Cmd
}

// Push queues cmd. Nil commands are ignored.
func (c *Cmds) Push(cmd tea.Cmd) {
	if c == nil || cmd == nil {
		return
	}
	c.pending = append(c.pending, cmd)
}

// Send queues a command that delivers msg.
func (c *Cmds) Send(msg tea.Msg) {
	c.Push(func() tea.Msg { return msg })
}

// Len returns the number of queued commands.
func (c *Cmds) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pending)
}

// Drain returns the queued commands as one command, run in order, and
// clears the queue.
func (c *Cmds) Drain() tea.Cmd {
	if c == nil || len(c.pending) == 0 {
		return nil
	}
	cmds := c.pending
	c.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}
