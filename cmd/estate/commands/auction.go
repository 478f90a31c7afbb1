package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"estate/internal/domain"
)

func auctionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auction",
		Short: "Run auctions and place bids",
	}
	cmd.AddCommand(
		auctionCreateCmd(),
		auctionBidCmd(),
		auctionCompleteCmd(),
		auctionCancelCmd(),
		auctionListCmd(),
		auctionShowCmd(),
		auctionRemoveCmd(),
	)
	return cmd
}

func auctionCreateCmd() *cobra.Command {
	var id, propertyID string
	var startingPrice float64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open an auction over a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ag.CreateAuction(id, propertyID, startingPrice)
			if err != nil {
				return err
			}
			fmt.Println(a)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "auction id")
	cmd.Flags().StringVar(&propertyID, "property", "", "property id")
	cmd.Flags().Float64Var(&startingPrice, "starting-price", 0, "starting price in rubles")
	for _, f := range []string{"id", "property", "starting-price"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func auctionBidCmd() *cobra.Command {
	var clientID string
	var amount float64
	cmd := &cobra.Command{
		Use:   "bid <auction-id>",
		Short: "Place a bid in an auction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bid, err := ag.PlaceBid(args[0], clientID, amount)
			if err != nil {
				return err
			}
			fmt.Println(bid)
			if a := ag.Auctions().Find(args[0]); a != nil && a.WasBuyout() {
				fmt.Println("buyout! auction completed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	cmd.Flags().Float64Var(&amount, "amount", 0, "bid amount in rubles")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func auctionCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete an active auction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := ag.Auctions().Find(args[0])
			if a == nil {
				return fmt.Errorf("auction %s not found", args[0])
			}
			a.Complete()
			fmt.Println(a)
			return nil
		},
	}
}

func auctionCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an active auction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := ag.Auctions().Find(args[0])
			if a == nil {
				return fmt.Errorf("auction %s not found", args[0])
			}
			a.Cancel()
			fmt.Println(a)
			return nil
		},
	}
}

func auctionListCmd() *cobra.Command {
	var activeOnly, completedOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List auctions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var auctions []*domain.Auction
			switch {
			case activeOnly:
				auctions = ag.Auctions().Active()
			case completedOnly:
				auctions = ag.Auctions().Completed()
			default:
				auctions = ag.Auctions().All()
			}
			for _, a := range auctions {
				fmt.Println(a)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only auctions open for bids")
	cmd.Flags().BoolVar(&completedOnly, "completed", false, "only auctions that finished with a sale")
	return cmd
}

func auctionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an auction and its bids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := ag.Auctions().Find(args[0])
			if a == nil {
				return fmt.Errorf("auction %s not found", args[0])
			}
			fmt.Println(a)
			for _, b := range a.Bids() {
				fmt.Printf("  %s\n", b)
			}
			if highest := a.HighestBid(); highest != nil {
				fmt.Printf("highest: %s\n", highest)
			}
			return nil
		},
	}
}

func auctionRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an auction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ag.Auctions().Remove(args[0]) {
				return fmt.Errorf("auction %s not found", args[0])
			}
			fmt.Println("removed")
			return nil
		},
	}
}
