package cli

import (
	"github.com/andy/tradebook/internal/tui"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Add a client through an interactive form",
	Long: `Open the interactive new client form. Each field is checked when you
press enter and must be corrected before moving on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunNewClientForm(appInstance)
	},
}
