package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/parser"
	"github.com/andy/tradebook/internal/service"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
	Long:  `List, add, edit, remark and delete clients. Clients are addressed by their position in 'clients list'.`,
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		clients, err := appInstance.ClientService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if len(clients) == 0 {
			fmt.Fprintln(out, "No clients found")
			return nil
		}

		for i, client := range clients {
			printClient(out, i+1, client)
		}

		fmt.Fprintf(out, "\nTotal: %d client(s)\n", len(clients))
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		name, err := parser.ParseName(args[0])
		if err != nil {
			return err
		}
		rawPhone, _ := cmd.Flags().GetString("phone")
		phone, err := parser.ParsePhone(rawPhone)
		if err != nil {
			return err
		}
		rawEmail, _ := cmd.Flags().GetString("email")
		email, err := parser.ParseEmail(rawEmail)
		if err != nil {
			return err
		}
		rawAddress, _ := cmd.Flags().GetString("address")
		address, err := parser.ParseAddress(rawAddress)
		if err != nil {
			return err
		}
		rawTags, _ := cmd.Flags().GetStringSlice("tag")
		tags, err := parser.ParseTags(rawTags)
		if err != nil {
			return err
		}

		client := domain.NewClient(name, phone, email, address, tags)
		if err := appInstance.ClientService.Add(ctx, client); err != nil {
			return userError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), success("New client added: "+client.Name.String()))
		return nil
	},
}

var clientsEditCmd = &cobra.Command{
	Use:   "edit [index]",
	Short: "Edit an existing client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx, err := parser.ParseIndex(args[0])
		if err != nil {
			return err
		}

		var patch service.ClientPatch
		if cmd.Flags().Changed("name") {
			raw, _ := cmd.Flags().GetString("name")
			name, err := parser.ParseName(raw)
			if err != nil {
				return err
			}
			patch.Name = &name
		}
		if cmd.Flags().Changed("phone") {
			raw, _ := cmd.Flags().GetString("phone")
			phone, err := parser.ParsePhone(raw)
			if err != nil {
				return err
			}
			patch.Phone = &phone
		}
		if cmd.Flags().Changed("email") {
			raw, _ := cmd.Flags().GetString("email")
			email, err := parser.ParseEmail(raw)
			if err != nil {
				return err
			}
			patch.Email = &email
		}
		if cmd.Flags().Changed("address") {
			raw, _ := cmd.Flags().GetString("address")
			address, err := parser.ParseAddress(raw)
			if err != nil {
				return err
			}
			patch.Address = &address
		}
		if cmd.Flags().Changed("tag") {
			raw, _ := cmd.Flags().GetStringSlice("tag")
			tags, err := parser.ParseTags(raw)
			if err != nil {
				return err
			}
			patch.Tags = tags
		}

		client, err := appInstance.ClientService.Edit(ctx, idx, patch)
		if err != nil {
			return userError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), success("Edited client: "+client.Name.String()))
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete [index]",
	Short: "Delete a client and its transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx, err := parser.ParseIndex(args[0])
		if err != nil {
			return err
		}

		client, err := appInstance.ClientService.Delete(ctx, idx)
		if err != nil {
			return userError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), success("Deleted client: "+client.Name.String()))
		return nil
	},
}

var clientsRemarkCmd = &cobra.Command{
	Use:   "remark [index] [text]",
	Short: "Set a client's remark, or clear it when no text is given",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx, err := parser.ParseIndex(args[0])
		if err != nil {
			return err
		}

		var remark *domain.Text
		if raw := strings.Join(args[1:], " "); strings.TrimSpace(raw) != "" {
			text, err := parser.ParseText(raw)
			if err != nil {
				return err
			}
			remark = &text
		}

		client, err := appInstance.ClientService.Remark(ctx, idx, remark)
		if err != nil {
			return userError(err)
		}

		out := cmd.OutOrStdout()
		if remark == nil {
			fmt.Fprintln(out, success("Removed remark from client: "+client.Name.String()))
		} else {
			fmt.Fprintln(out, success("Added remark to client: "+client.Name.String()))
		}
		return nil
	},
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsEditCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)
	clientsCmd.AddCommand(clientsRemarkCmd)

	// Add flags
	clientsAddCmd.Flags().String("phone", "", "Phone number (at least 3 digits)")
	clientsAddCmd.Flags().String("email", "", "Email address")
	clientsAddCmd.Flags().String("address", "", "Postal address")
	clientsAddCmd.Flags().StringSlice("tag", nil, "Tag, repeatable")

	// Edit flags
	clientsEditCmd.Flags().String("name", "", "New name")
	clientsEditCmd.Flags().String("phone", "", "New phone number")
	clientsEditCmd.Flags().String("email", "", "New email")
	clientsEditCmd.Flags().String("address", "", "New address")
	clientsEditCmd.Flags().StringSlice("tag", nil, "Replacement tags, repeatable; --tag \"\" clears them")
}

func printClient(out io.Writer, position int, client *domain.Client) {
	line := fmt.Sprintf("%d. %s", position, client.Name)
	for _, tag := range client.Tags {
		line += " " + tag.String()
	}
	fmt.Fprintln(out, headerStyle.Render(line))
	fmt.Fprintf(out, "   Phone: %s\n", client.Phone)
	fmt.Fprintf(out, "   Email: %s\n", client.Email)
	fmt.Fprintf(out, "   Address: %s\n", truncate(client.Address.String(), 60))
	if client.Remark != nil {
		fmt.Fprintln(out, mutedStyle.Render("   Remark: "+client.Remark.String()))
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
