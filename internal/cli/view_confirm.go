package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// confirmView is a modal OK/Cancel prompt. On OK it pops itself and runs
// onConfirm; on Cancel or escape it just pops.
type confirmView struct {
	state     *SharedState
	form      *huh.Form
	titleStr  string
	confirmed bool
	onConfirm func() tea.Cmd
}

func newConfirmView(state *SharedState, title, prompt string, onConfirm func() tea.Cmd) *confirmView {
	v := &confirmView{
		state:     state,
		titleStr:  title,
		confirmed: true, // OK is focused by default, like the original dialogs
		onConfirm: onConfirm,
	}
	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("OK").
				Negative("Cancel").
				Value(&v.confirmed),
		),
	).WithTheme(hebdoHuhTheme()).WithShowHelp(false)
	return v
}

func (v *confirmView) ID() ViewID    { return ViewConfirm }
func (v *confirmView) Title() string { return v.titleStr }

func (v *confirmView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *confirmView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *confirmView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		if v.confirmed && v.onConfirm != nil {
			return v, tea.Batch(popView(), v.onConfirm())
		}
		return v, popView()
	}
	return v, cmd
}

func (v *confirmView) View() string {
	return v.form.View()
}
