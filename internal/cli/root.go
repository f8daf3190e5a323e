package cli

import (
	"github.com/andy/tradebook/internal/app"
	"github.com/andy/tradebook/internal/tui"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A CLI record keeper for a trader's clients and their transactions",
	Long: `Tradebook keeps an encrypted book of clients and the goods bought from
and sold to them.

By default, running tradebook without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(appInstance)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// NeedsApp reports whether the command line runs a command that touches
// the database. Help, check and config work without it.
func NeedsApp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" || a == "help" {
			return false
		}
	}
	cmd, _, err := rootCmd.Find(args)
	if err != nil {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c == checkCmd || c == configCmd {
			return false
		}
	}
	return true
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}
