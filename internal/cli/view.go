package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewTree ViewID = iota
	ViewForm
	ViewConfirm
)

// View is the interface all TUI views implement. It extends tea.Model with
// navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	Title() string            // breadcrumb segment for this view
	ShortHelp() []key.Binding // key hints shown in the bottom bar
}

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ── navigation messages ──────────────────────────────────────────────────────

type pushViewMsg struct{ view View }

type popViewMsg struct{}

// refreshViewMsg is broadcast to every view on the stack so underlying views
// reload data after mutations made in views above them.
type refreshViewMsg struct{}

// statusMsg sets the transient status line under the active view.
type statusMsg struct {
	text  string
	isErr bool
}

// formResultMsg reports the outcome of an edit form submit. A non-nil retry
// view replaces the form (rejected parent, corrected in place); otherwise the
// form pops and err, if any, lands on the status line.
type formResultMsg struct {
	err   error
	retry View
}

// quitAppMsg ends the program from anywhere in the view stack.
type quitAppMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func statusError(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isErr: true} }
}
