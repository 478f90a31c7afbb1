package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"estate/internal/domain"
)

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Record and track deals",
	}
	cmd.AddCommand(
		transactionAddCmd(),
		transactionListCmd(),
		transactionSetStatusCmd(),
		transactionRemoveCmd(),
	)
	return cmd
}

func transactionAddCmd() *cobra.Command {
	var id, propertyID, clientID, status, notes string
	var price float64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a deal between a client and a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ag.RecordTransaction(id, propertyID, clientID, price, status, notes)
			if err != nil {
				return err
			}
			fmt.Println(t)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "transaction id (6-8 digits)")
	cmd.Flags().StringVar(&propertyID, "property", "", "property id")
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	cmd.Flags().Float64Var(&price, "price", 0, "final price in rubles")
	cmd.Flags().StringVar(&status, "status", domain.TransactionPending, "pending, completed or cancelled")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	for _, f := range []string{"id", "property", "client", "price"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func transactionListCmd() *cobra.Command {
	var status, clientID, propertyID string
	var byDate bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var transactions []*domain.Transaction
			switch {
			case status != "":
				transactions = ag.Transactions().ByStatus(status)
			case clientID != "":
				transactions = ag.Transactions().ByClient(clientID)
			case propertyID != "":
				transactions = ag.Transactions().ByProperty(propertyID)
			case byDate:
				transactions = ag.Transactions().SortedByDate()
			default:
				transactions = ag.Transactions().All()
			}
			for _, t := range transactions {
				fmt.Println(t)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&clientID, "client", "", "filter by client id")
	cmd.Flags().StringVar(&propertyID, "property", "", "filter by property id")
	cmd.Flags().BoolVar(&byDate, "by-date", false, "order by deal date")
	return cmd
}

func transactionSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Update a deal's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ag.SetTransactionStatus(args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(ag.Transactions().Find(args[0]))
			return nil
		},
	}
}

func transactionRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a deal record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ag.Transactions().Remove(args[0]) {
				return fmt.Errorf("transaction %s not found", args[0])
			}
			fmt.Println("removed")
			return nil
		},
	}
}
