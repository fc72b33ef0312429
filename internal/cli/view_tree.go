package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hebdo/internal/budget"
	"github.com/alexanderramin/hebdo/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// treeLoadedMsg signals that the projection has been rebuilt.
type treeLoadedMsg struct {
	rows      []formatter.TreeRow
	available string
	warn      string
}

// treeView is the home screen: the projected activity tree with computed
// hours, the remaining weekly hours, and cursor selection for edit/delete.
type treeView struct {
	state     *SharedState
	rows      []formatter.TreeRow
	available string
	warn      string
	cursor    int
	loading   bool
}

func newTreeView(state *SharedState) *treeView {
	return &treeView{state: state, loading: true}
}

func (v *treeView) ID() ViewID    { return ViewTree }
func (v *treeView) Title() string { return "Weekly hours" }

func (v *treeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save and close")),
		key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "cancel")),
	}
}

func (v *treeView) Init() tea.Cmd {
	return v.loadProjection()
}

func (v *treeView) loadProjection() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		tree, err := app.Budget.Tree()
		msg := treeLoadedMsg{
			rows:      formatter.TreeRows(tree),
			available: budget.FormatHours(app.Budget.Available()),
		}
		if err != nil {
			msg.warn = "Could not find the parent activity"
		}
		return msg
	}
}

// selected returns the activity name under the cursor, or "".
func (v *treeView) selected() string {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return ""
	}
	return v.rows[v.cursor].Plain
}

func (v *treeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case treeLoadedMsg:
		v.loading = false
		v.rows = msg.rows
		v.available = msg.available
		v.warn = msg.warn
		if v.cursor >= len(v.rows) {
			v.cursor = max(0, len(v.rows)-1)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadProjection()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "n":
			return v, pushView(newEditFormView(v.state, ""))
		case "e":
			name := v.selected()
			if name == "" {
				return v, statusError("Select an activity to edit.")
			}
			return v, pushView(newEditFormView(v.state, name))
		case "x":
			name := v.selected()
			if name == "" {
				return v, statusError("Select an activity to delete.")
			}
			return v, v.confirmDelete(name)
		case "r":
			return v, v.loadProjection()
		case "s":
			return v, v.saveAndClose()
		case "q", "esc":
			return v, v.cancel()
		}
	}
	return v, nil
}

// confirmDelete routes a parent activity to the cascading delete prompt and
// a childless one to the single delete prompt.
func (v *treeView) confirmDelete(name string) tea.Cmd {
	app := v.state.App
	if app.Budget.IsParent(name) {
		prompt := fmt.Sprintf("Ready to delete %q and all of its subactivities.\nAre you sure?", name)
		return pushView(newConfirmView(v.state, "Confirm", prompt, func() tea.Cmd {
			return func() tea.Msg {
				if err := app.Budget.DeleteSubtree(name); err != nil {
					return statusMsg{text: err.Error(), isErr: true}
				}
				return refreshViewMsg{}
			}
		}))
	}
	prompt := fmt.Sprintf("Ready to delete %q.\nAre you sure?", name)
	return pushView(newConfirmView(v.state, "Confirm", prompt, func() tea.Cmd {
		return func() tea.Msg {
			if err := app.Budget.Delete(name); err != nil {
				return statusMsg{text: err.Error(), isErr: true}
			}
			return refreshViewMsg{}
		}
	}))
}

func (v *treeView) saveAndClose() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Budget.Save(); err != nil {
			return statusMsg{text: err.Error(), isErr: true}
		}
		return quitAppMsg{}
	}
}

// cancel quits without saving, confirming first when changes are unsaved.
func (v *treeView) cancel() tea.Cmd {
	if !v.state.App.Budget.Dirty() {
		return func() tea.Msg { return quitAppMsg{} }
	}
	prompt := "Are you sure you want to lose any unsaved changes?"
	return pushView(newConfirmView(v.state, "Confirm", prompt, func() tea.Cmd {
		return func() tea.Msg { return quitAppMsg{} }
	}))
}

func (v *treeView) View() string {
	if v.loading {
		return "  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	if len(v.rows) == 0 {
		b.WriteString("  " + formatter.Dim("No activities yet. Press 'n' to add one.") + "\n")
	} else {
		b.WriteString(v.renderTable())
	}

	b.WriteString("\n  Available weekly hours: " + formatter.StyleBold.Render(v.available) + "\n")
	if v.warn != "" {
		b.WriteString("  " + formatter.StyleYellow.Render(v.warn) + "\n")
	}
	return b.String()
}

func (v *treeView) renderTable() string {
	rows := make([]formatter.TreeRow, len(v.rows))
	copy(rows, v.rows)
	for i := range rows {
		if i == v.cursor {
			rows[i].Name = formatter.StyleGreen.Render("▸ ") + formatter.StyleBold.Render(rows[i].Name)
		} else {
			rows[i].Name = "  " + rows[i].Name
		}
	}
	table := formatter.HoursTable(rows)

	// Indent the whole table two spaces to match the frame.
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
