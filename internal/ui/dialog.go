package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuievent/internal/event"
)

// ConfirmDialog is a modal yes/no dialog. y or enter confirms; n or esc
// cancels. Both close the dialog and report Consumed. Every other key is
// swallowed as Unchanged.
type ConfirmDialog struct {
	Placement
	Title   string
	Label   string
	Details string // Optional warning details
	// OnConfirm runs synchronously when the user confirms.
	OnConfirm func()
	// Cmds receives the dismiss message.
	Cmds *Cmds
}

// NewConfirmDialog creates a confirmation dialog.
func NewConfirmDialog(title, label string, cmds *Cmds, onConfirm func()) *ConfirmDialog {
	return &ConfirmDialog{Title: title, Label: label, Cmds: cmds, OnConfirm: onConfirm}
}

// WithDetails adds warning details to the dialog.
func (d *ConfirmDialog) WithDetails(details string) *ConfirmDialog {
	d.Details = details
	return d
}

// Overlay wraps the dialog for an OverlayStack.
func (d *ConfirmDialog) Overlay(id string) Overlay {
	return Overlay{ID: id, Widget: d, Qualifier: event.Dialog, Bounds: Centered(44, 9)}
}

// Init implements Widget.
func (d *ConfirmDialog) Init() tea.Cmd { return nil }

// Handle implements event.Handler.
func (d *ConfirmDialog) Handle(msg tea.Msg, _ event.Qualifier) event.Outcome {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Paste {
			return event.Unchanged
		}
		switch msg.String() {
		case "y", "enter":
			if d.OnConfirm != nil {
				d.OnConfirm()
			}
			d.Cmds.Send(DismissOverlayMsg{})
			return event.Consumed
		case "n", "esc":
			d.Cmds.Send(DismissOverlayMsg{})
			return event.Consumed
		}
		return event.Unchanged
	case tea.MouseMsg:
		return event.Unchanged
	}
	return event.Continue
}

// View implements Widget.
func (d *ConfirmDialog) View(width, height int) string {
	content := Styles.TitleWarning.Render(d.Title) + "\n\n" + Styles.Normal.Render(d.Label)
	if d.Details != "" {
		content += "\n" + Styles.Details.Render(d.Details)
	}
	content += "\n\n" + Styles.Muted.Render("y/Enter: confirm  n/Esc: cancel")
	return boxed(Styles.BoxDanger, "", content, width, height)
}
