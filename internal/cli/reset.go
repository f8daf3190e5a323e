package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset data in the database",
	Long: `Reset data in the database.

Examples:
  tradebook reset transactions   # Delete every transaction, keep clients
  tradebook reset all            # Wipe everything: clients, tags, transactions`,
}

var resetTransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Delete all transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return resetTables(cmd,
			"This will delete ALL transactions. Continue?",
			"All transactions have been deleted.",
			"transactions",
		)
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete ALL data: clients, tags and transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Order matters due to foreign keys
		return resetTables(cmd,
			"This will delete ALL data (clients, tags, transactions). Continue?",
			"All data has been deleted.",
			"transactions", "client_tags", "clients",
		)
	},
}

func resetTables(cmd *cobra.Command, prompt, done string, tables ...string) error {
	out := cmd.OutOrStdout()
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !confirmPrompt(cmd.InOrStdin(), out, prompt) {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	tx, err := appInstance.DB.BeginTx(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	appInstance.Log.Info("database reset", "tables", strings.Join(tables, ","))
	fmt.Fprintln(out, done)
	return nil
}

func confirmPrompt(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.AddCommand(resetTransactionsCmd)
	resetCmd.AddCommand(resetAllCmd)

	resetCmd.PersistentFlags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
