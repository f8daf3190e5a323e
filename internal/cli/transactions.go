package cli

import (
	"context"
	"fmt"

	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/parser"
	"github.com/andy/tradebook/internal/service"
	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transactions"},
	Short:   "Record and review transactions",
	Long:    `Record goods bought from or sold to a client, and review a client's history.`,
}

var txAddCmd = &cobra.Command{
	Use:   "add [index]",
	Short: "Record a transaction for a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx, err := parser.ParseIndex(args[0])
		if err != nil {
			return err
		}

		in, err := transactionInput(cmd)
		if err != nil {
			return err
		}

		t, err := appInstance.TransactionService.Add(ctx, idx, in)
		if err != nil {
			return userError(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, success(fmt.Sprintf("Recorded %s: %s x %s on %s", t.Kind, t.Goods, t.Quantity, t.Date)))
		fmt.Fprintf(out, "  Total: %s\n", money(t.Total()))
		return nil
	},
}

// transactionInput parses the add flags in the order they are shown to the user
func transactionInput(cmd *cobra.Command) (service.TransactionInput, error) {
	var in service.TransactionInput
	var err error

	kind, _ := cmd.Flags().GetString("kind")
	if in.Kind, err = parser.ParseKind(kind); err != nil {
		return in, err
	}
	goods, _ := cmd.Flags().GetString("goods")
	if in.Goods, err = parser.ParseGoods(goods); err != nil {
		return in, err
	}
	price, _ := cmd.Flags().GetString("price")
	if in.Price, err = parser.ParsePrice(price); err != nil {
		return in, err
	}
	quantity, _ := cmd.Flags().GetString("quantity")
	if in.Quantity, err = parser.ParseQuantity(quantity); err != nil {
		return in, err
	}
	date, _ := cmd.Flags().GetString("date")
	if in.Date, err = parser.ParseDate(date); err != nil {
		return in, err
	}
	return in, nil
}

var txListCmd = &cobra.Command{
	Use:   "list [index]",
	Short: "List a client's transactions, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		idx, err := parser.ParseIndex(args[0])
		if err != nil {
			return err
		}

		client, txs, err := appInstance.TransactionService.List(ctx, idx)
		if err != nil {
			return userError(err)
		}

		if len(txs) == 0 {
			fmt.Fprintf(out, "No transactions found for %s\n", client.Name)
			return nil
		}

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-12s %-5s %-24s %10s %14s %16s",
			"Date", "Kind", "Goods", "Quantity", "Price", "Total")))
		fmt.Fprintln(out, "-------------------------------------------------------------------------------------")
		for _, t := range txs {
			fmt.Fprintf(out, "%-12s %-5s %-24s %10s %14s %16s\n",
				t.Date,
				t.Kind,
				truncate(t.Goods.String(), 24),
				t.Quantity,
				money(t.Price.Value()),
				money(t.SignedTotal()),
			)
		}

		fmt.Fprintf(out, "\nTotal: %d transaction(s)\n", len(txs))
		return nil
	},
}

var txSummaryCmd = &cobra.Command{
	Use:   "summary [index]",
	Short: "Show totals bought, sold and net for a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		idx, err := parser.ParseIndex(args[0])
		if err != nil {
			return err
		}

		summary, err := appInstance.TransactionService.Summary(ctx, idx)
		if err != nil {
			return userError(err)
		}

		fmt.Fprintln(out, headerStyle.Render(summary.Client.Name.String()))
		fmt.Fprintf(out, "  Transactions: %d\n", summary.Transactions)
		fmt.Fprintf(out, "  Bought:       %s\n", money(summary.Bought))
		fmt.Fprintf(out, "  Sold:         %s\n", money(summary.Sold))
		fmt.Fprintf(out, "  Net:          %s\n", money(summary.Net))
		return nil
	},
}

// money prints an amount with the configured currency prefix
func money(amount float64) string {
	currency := appInstance.Currency()
	if amount < 0 {
		return "-" + currency + domain.FormatAmount(-amount)
	}
	return currency + domain.FormatAmount(amount)
}

func init() {
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txSummaryCmd)

	txAddCmd.Flags().String("kind", "", "buy or sell")
	txAddCmd.Flags().String("goods", "", "What changed hands")
	txAddCmd.Flags().String("price", "", "Unit price, below 1 million")
	txAddCmd.Flags().String("quantity", "", "Whole number of units, below 1 million")
	txAddCmd.Flags().String("date", "", "Date as DD/MM/YYYY")
}
