package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/hebdo/internal/budget"
	"github.com/alexanderramin/hebdo/internal/cli/formatter"
	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formValues carries the edit form's field contents. Kept separate from the
// view so a rejected submit can reseed a fresh form with what the user typed.
type formValues struct {
	name   string
	hpd    string
	dpw    string
	parent string
}

// editFormView is the modal form for creating or editing an activity.
// Parent activities only expose the name field: their hours are derived, and
// reparenting or valuing them directly would break the aggregation invariant.
type editFormView struct {
	state    *SharedState
	form     *huh.Form
	oldName  string
	isParent bool
	vals     formValues
}

// newEditFormView builds the form for a new activity (oldName == "") or for
// editing an existing one, prefilled from the record.
func newEditFormView(state *SharedState, oldName string) View {
	vals := formValues{name: oldName}
	if oldName != "" {
		if a, err := state.App.Budget.Get(oldName); err == nil {
			if a.IsLeaf() {
				vals.hpd = budget.FormatHours(*a.HoursPerDay)
				vals.dpw = budget.FormatHours(*a.DaysPerWeek)
			}
			vals.parent = a.Parent
		}
	}
	return newEditFormSeeded(state, oldName, vals, "")
}

// newEditFormSeeded builds the form from explicit values, with an optional
// error note shown above the fields (used to reopen after a rejected submit).
func newEditFormSeeded(state *SharedState, oldName string, vals formValues, errText string) View {
	v := &editFormView{
		state:    state,
		oldName:  oldName,
		isParent: oldName != "" && state.App.Budget.IsParent(oldName),
		vals:     vals,
	}

	var fields []huh.Field
	if errText != "" {
		fields = append(fields, huh.NewNote().
			Title(formatter.StyleRed.Render("Error")).
			Description(errText))
	}
	fields = append(fields, huh.NewInput().
		Title("Activity name").
		Value(&v.vals.name).
		Validate(validateRequired("activity name")))

	if !v.isParent {
		fields = append(fields,
			huh.NewInput().
				Title("Hours per day").
				Placeholder("0").
				Value(&v.vals.hpd).
				Validate(validateNumber),
			huh.NewInput().
				Title("Days per week").
				Placeholder("0").
				Value(&v.vals.dpw).
				Validate(validateNumber),
			huh.NewInput().
				Title("Parent activity").
				Value(&v.vals.parent),
		)
	}

	v.form = huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(hebdoHuhTheme()).
		WithShowHelp(false)
	return v
}

func (v *editFormView) ID() ViewID { return ViewForm }

func (v *editFormView) Title() string {
	if v.oldName == "" {
		return "New activity"
	}
	return "Edit activity"
}

func (v *editFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/submit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *editFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *editFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, v.submit()
	}
	return v, cmd
}

// submit applies the upsert. A missing parent reopens the form with the
// entered values so the user can correct it; any other failure pops back to
// the tree with the error on the status line.
func (v *editFormView) submit() tea.Cmd {
	app := v.state.App
	oldName := v.oldName
	vals := v.vals
	state := v.state

	return func() tea.Msg {
		err := app.Budget.Upsert(budget.UpsertInput{
			OldName:     oldName,
			NewName:     vals.name,
			HoursPerDay: vals.hpd,
			DaysPerWeek: vals.dpw,
			Parent:      vals.parent,
		})
		if errors.Is(err, domain.ErrParentNotFound) {
			retry := newEditFormSeeded(state, oldName, vals, "Chosen parent activity does not exist.")
			return formResultMsg{retry: retry}
		}
		return formResultMsg{err: err}
	}
}

func (v *editFormView) View() string {
	return v.form.View()
}

// ── shared field validation ──────────────────────────────────────────────────

// validateRequired rejects blank input.
func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// validateNumber accepts blank (treated as zero) or any number.
func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}
