package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/hebdo/internal/budget"
	"github.com/alexanderramin/hebdo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the activity tree and available hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(app, cmd.OutOrStdout())
		},
	}
}

func newAvailableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "available",
		Short: "Print the remaining hours in the week",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), budget.FormatHours(app.Budget.Available()))
			return nil
		},
	}
}

// runShow renders the projection as a table, one warning line for anything
// that failed to resolve, and the available-hours summary.
func runShow(app *App, w io.Writer) error {
	tree, err := app.Budget.Tree()
	if err != nil {
		fmt.Fprintln(w, formatter.StyleYellow.Render("Warning: "+err.Error()))
	}

	rows := formatter.TreeRows(tree)
	if len(rows) == 0 {
		fmt.Fprintln(w, formatter.Dim("No activities yet."))
	} else {
		fmt.Fprint(w, formatter.HoursTable(rows))
	}

	fmt.Fprintf(w, "\nAvailable weekly hours: %s\n", budget.FormatHours(app.Budget.Available()))
	return nil
}
