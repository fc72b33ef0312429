package cli

import (
	"fmt"

	"github.com/alexanderramin/hebdo/internal/budget"
	"github.com/alexanderramin/hebdo/internal/persist"
	"github.com/spf13/cobra"
)

// App holds the wired services used by CLI commands and the TUI.
type App struct {
	Budget *budget.Service

	// IsInteractive reports whether stdin is an interactive terminal.
	// The bare root command only launches the TUI when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "hebdo" command. The saved-hours file is
// resolved from the --file flag (defaultPath covers the env/home fallback)
// and loaded once before any command runs.
func NewRootCmd(app *App, defaultPath string) *cobra.Command {
	var filePath string

	root := &cobra.Command{
		Use:   "hebdo",
		Short: "Weekly hours budget tracker",
		Long: "Hebdo tracks a weekly time budget across a hierarchy of activities.\n" +
			"Leaf activities carry hours-per-day and days-per-week; parent activities\n" +
			"derive their totals from their children against a 168-hour week.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Budget != nil {
				return nil // already wired (tests)
			}
			file := persist.NewFile(filePath)
			st, err := file.Load()
			if err != nil {
				return fmt.Errorf("loading saved hours: %w", err)
			}
			app.Budget = budget.NewService(st, file)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return runShow(app, cmd.OutOrStdout())
			}
			return runTUI(app)
		},
	}

	root.PersistentFlags().StringVar(&filePath, "file", defaultPath, "path to the saved hours file")

	root.AddCommand(
		newShowCmd(app),
		newAvailableCmd(app),
	)
	return root
}
