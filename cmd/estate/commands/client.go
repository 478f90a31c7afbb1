package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"estate/internal/domain"
)

func clientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage the client register",
	}
	cmd.AddCommand(clientAddCmd(), clientListCmd(), clientRemoveCmd())
	return cmd
}

func clientAddCmd() *cobra.Command {
	var id, name, phone, email string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := domain.NewClient(id, name, phone, email)
			if err != nil {
				return err
			}
			if err := ag.Clients().Add(c); err != nil {
				return err
			}
			fmt.Println(c)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "client id (6-8 digits)")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone (+375XXXXXXXXX)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	for _, f := range []string{"id", "name", "phone", "email"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func clientListCmd() *cobra.Command {
	var name string
	var sorted bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			var clients []*domain.Client
			switch {
			case name != "":
				clients = ag.Clients().SearchByName(name)
			case sorted:
				clients = ag.Clients().SortedByName()
			default:
				clients = ag.Clients().All()
			}
			for _, c := range clients {
				fmt.Println(c)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "filter by name substring")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order alphabetically by name")
	return cmd
}

func clientRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ag.Clients().Remove(args[0]) {
				return fmt.Errorf("client %s not found", args[0])
			}
			fmt.Println("removed")
			return nil
		},
	}
}
