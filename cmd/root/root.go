// Package root contains the root command for the application.
package root

import (
	"os"

	"budgetbook/internal/auth"
	"budgetbook/internal/config"
	"budgetbook/internal/logging"
	"budgetbook/internal/menu"
	"budgetbook/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Cfg is the loaded configuration, shared with subcommands.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger

	dataDir  string
	logLevel string

	// Cmd is the root command. Running it without a subcommand starts the
	// interactive budgeting session.
	Cmd = &cobra.Command{
		Use:   "budgetbook",
		Short: "A personal budgeting CLI: track income and expenses, set category limits, export snapshots.",
		Long: `budgetbook tracks a per-user ledger of dated income and expense entries,
budget limits per expense category and the warnings derived from them.
Running it without a subcommand starts the interactive menu.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.Data.Directory = dataDir
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New(Cfg.Data.Directory, Log)
			if err != nil {
				return err
			}
			authenticator, err := auth.New(s, Log)
			if err != nil {
				return err
			}
			return menu.New(authenticator, s, Cfg.Notifications.Enabled, os.Stdin, os.Stdout, Log).Run()
		},
	}
)

// Init registers the root command's persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Base directory for application data")
	Cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
}
