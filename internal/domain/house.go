package domain

import "fmt"

const (
	minHouseFloors = 1
	maxHouseFloors = 10
	minHouseRooms  = 1
	maxHouseRooms  = 50
	minHouseLand   = 0.0
	maxHouseLand   = 10000.0
)

// HouseParams carries everything needed to construct a House.
type HouseParams struct {
	Base      BaseParams
	Floors    int
	Rooms     int
	LandArea  float64
	HasGarage bool
	HasGarden bool
}

// House is a standalone residential building with its own plot of land.
type House struct {
	PropertyBase
	floors    int
	rooms     int
	landArea  float64
	hasGarage bool
	hasGarden bool
}

// NewHouse validates p and builds a House.
func NewHouse(p HouseParams) (*House, error) {
	base, err := newPropertyBase(p.Base)
	if err != nil {
		return nil, err
	}
	if p.Floors < minHouseFloors || p.Floors > maxHouseFloors {
		return nil, fmt.Errorf("%w: number of floors must be between %d and %d", ErrValidation, minHouseFloors, maxHouseFloors)
	}
	if p.Rooms < minHouseRooms || p.Rooms > maxHouseRooms {
		return nil, fmt.Errorf("%w: number of rooms must be between %d and %d", ErrValidation, minHouseRooms, maxHouseRooms)
	}
	if p.LandArea < minHouseLand || p.LandArea > maxHouseLand {
		return nil, fmt.Errorf("%w: land area must be between %.0f and %.0f m2", ErrValidation, minHouseLand, maxHouseLand)
	}
	return &House{
		PropertyBase: base,
		floors:       p.Floors,
		rooms:        p.Rooms,
		landArea:     p.LandArea,
		hasGarage:    p.HasGarage,
		hasGarden:    p.HasGarden,
	}, nil
}

func (h *House) Type() PropertyType { return TypeHouse }

func (h *House) Floors() int      { return h.floors }
func (h *House) Rooms() int       { return h.rooms }
func (h *House) LandArea() float64 { return h.landArea }
func (h *House) HasGarage() bool  { return h.hasGarage }
func (h *House) HasGarden() bool  { return h.hasGarden }

func (h *House) SetFloors(floors int) error {
	if floors < minHouseFloors || floors > maxHouseFloors {
		return fmt.Errorf("%w: number of floors must be between %d and %d", ErrValidation, minHouseFloors, maxHouseFloors)
	}
	h.floors = floors
	return nil
}

func (h *House) SetRooms(rooms int) error {
	if rooms < minHouseRooms || rooms > maxHouseRooms {
		return fmt.Errorf("%w: number of rooms must be between %d and %d", ErrValidation, minHouseRooms, maxHouseRooms)
	}
	h.rooms = rooms
	return nil
}

func (h *House) SetLandArea(landArea float64) error {
	if landArea < minHouseLand || landArea > maxHouseLand {
		return fmt.Errorf("%w: land area must be between %.0f and %.0f m2", ErrValidation, minHouseLand, maxHouseLand)
	}
	h.landArea = landArea
	return nil
}

// FileRecord renders the HOUSE data file line.
func (h *House) FileRecord() string {
	fields := h.baseRecord("HOUSE")
	fields = append(fields,
		fmt.Sprintf("%d", h.floors),
		fmt.Sprintf("%d", h.rooms),
		formatNumber(h.landArea),
		boolFlag(h.hasGarage),
		boolFlag(h.hasGarden),
	)
	return joinRecord(fields)
}

// Clone returns a deep, independent copy preserving availability.
func (h *House) Clone() Property {
	c := *h
	return &c
}

func (h *House) String() string {
	return fmt.Sprintf("%s, %d floors, %d rooms, %.1f m2 land", h.baseString(TypeHouse), h.floors, h.rooms, h.landArea)
}

func (h *House) isProperty() {}
