package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"estate/internal/domain"
)

func propertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Manage property listings",
	}
	cmd.AddCommand(
		propertyAddApartmentCmd(),
		propertyAddHouseCmd(),
		propertyAddCommercialCmd(),
		propertyListCmd(),
		propertySearchCmd(),
		propertyRemoveCmd(),
	)
	return cmd
}

// propertyBaseFlags are the fields shared by every property variant.
type propertyBaseFlags struct {
	id          string
	city        string
	street      string
	house       string
	price       float64
	area        float64
	description string
}

func (f *propertyBaseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "", "property id (6-8 digits)")
	cmd.Flags().StringVar(&f.city, "city", "", "city")
	cmd.Flags().StringVar(&f.street, "street", "", "street")
	cmd.Flags().StringVar(&f.house, "house", "", "house number")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price in rubles")
	cmd.Flags().Float64Var(&f.area, "area", 0, "area in square meters")
	cmd.Flags().StringVar(&f.description, "description", "", "free-form description")
	for _, name := range []string{"id", "city", "street", "house", "price", "area"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (f *propertyBaseFlags) params() domain.BaseParams {
	return domain.BaseParams{
		ID:          f.id,
		City:        f.city,
		Street:      f.street,
		House:       f.house,
		Price:       f.price,
		Area:        f.area,
		Description: f.description,
	}
}

func propertyAddApartmentCmd() *cobra.Command {
	var base propertyBaseFlags
	var rooms, floor int
	var balcony, elevator bool
	cmd := &cobra.Command{
		Use:   "add-apartment",
		Short: "Add an apartment listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ag.Properties().AddApartment(domain.ApartmentParams{
				Base:        base.params(),
				Rooms:       rooms,
				Floor:       floor,
				HasBalcony:  balcony,
				HasElevator: elevator,
			})
			if err != nil {
				return err
			}
			fmt.Println(a)
			return nil
		},
	}
	base.register(cmd)
	cmd.Flags().IntVar(&rooms, "rooms", 0, "number of rooms (1-10)")
	cmd.Flags().IntVar(&floor, "floor", 0, "floor (1-100)")
	cmd.Flags().BoolVar(&balcony, "balcony", false, "has a balcony")
	cmd.Flags().BoolVar(&elevator, "elevator", false, "building has an elevator")
	_ = cmd.MarkFlagRequired("rooms")
	_ = cmd.MarkFlagRequired("floor")
	return cmd
}

func propertyAddHouseCmd() *cobra.Command {
	var base propertyBaseFlags
	var floors, rooms int
	var landArea float64
	var garage, garden bool
	cmd := &cobra.Command{
		Use:   "add-house",
		Short: "Add a house listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := ag.Properties().AddHouse(domain.HouseParams{
				Base:      base.params(),
				Floors:    floors,
				Rooms:     rooms,
				LandArea:  landArea,
				HasGarage: garage,
				HasGarden: garden,
			})
			if err != nil {
				return err
			}
			fmt.Println(h)
			return nil
		},
	}
	base.register(cmd)
	cmd.Flags().IntVar(&floors, "floors", 0, "number of floors (1-10)")
	cmd.Flags().IntVar(&rooms, "rooms", 0, "number of rooms (1-50)")
	cmd.Flags().Float64Var(&landArea, "land-area", 0, "land area in square meters (0-10000)")
	cmd.Flags().BoolVar(&garage, "garage", false, "has a garage")
	cmd.Flags().BoolVar(&garden, "garden", false, "has a garden")
	_ = cmd.MarkFlagRequired("floors")
	_ = cmd.MarkFlagRequired("rooms")
	return cmd
}

func propertyAddCommercialCmd() *cobra.Command {
	var base propertyBaseFlags
	var businessType string
	var parkingSpaces int
	var parking, visible bool
	cmd := &cobra.Command{
		Use:   "add-commercial",
		Short: "Add a commercial property listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ag.Properties().AddCommercial(domain.CommercialParams{
				Base:              base.params(),
				BusinessType:      businessType,
				HasParking:        parking,
				ParkingSpaces:     parkingSpaces,
				VisibleFromStreet: visible,
			})
			if err != nil {
				return err
			}
			fmt.Println(c)
			return nil
		},
	}
	base.register(cmd)
	cmd.Flags().StringVar(&businessType, "business-type", "", "kind of business the premises suit")
	cmd.Flags().IntVar(&parkingSpaces, "parking-spaces", 0, "number of parking spaces (0-1000)")
	cmd.Flags().BoolVar(&parking, "parking", false, "has parking")
	cmd.Flags().BoolVar(&visible, "visible", false, "visible from the street")
	_ = cmd.MarkFlagRequired("business-type")
	return cmd
}

func propertyListCmd() *cobra.Command {
	var availableOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List property listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			properties := ag.Properties().All()
			if availableOnly {
				properties = ag.Properties().Available()
			}
			for _, p := range properties {
				fmt.Println(p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&availableOnly, "available", false, "only listings open for deals")
	return cmd
}

func propertySearchCmd() *cobra.Command {
	var city, street, house string
	var minPrice, maxPrice float64
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search listings by address parts or price range",
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []domain.Property
			if cmd.Flags().Changed("min-price") || cmd.Flags().Changed("max-price") {
				results = ag.Properties().SearchByPriceRange(minPrice, maxPrice)
			} else {
				results = ag.Properties().SearchByAddress(city, street, house)
			}
			for _, p := range results {
				fmt.Println(p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "city substring")
	cmd.Flags().StringVar(&street, "street", "", "street substring")
	cmd.Flags().StringVar(&house, "house", "", "house number substring")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	return cmd
}

func propertyRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a property listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ag.Properties().Remove(args[0]) {
				return fmt.Errorf("property %s not found", args[0])
			}
			fmt.Println("removed")
			return nil
		},
	}
}
