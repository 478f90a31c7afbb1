package domain

import "fmt"

const (
	minApartmentRooms = 1
	maxApartmentRooms = 10
	minApartmentFloor = 1
	maxApartmentFloor = 100
)

// ApartmentParams carries everything needed to construct an Apartment.
type ApartmentParams struct {
	Base        BaseParams
	Rooms       int
	Floor       int
	HasBalcony  bool
	HasElevator bool
}

// Apartment is a flat inside a multi-storey building.
type Apartment struct {
	PropertyBase
	rooms       int
	floor       int
	hasBalcony  bool
	hasElevator bool
}

// NewApartment validates p and builds an Apartment.
func NewApartment(p ApartmentParams) (*Apartment, error) {
	base, err := newPropertyBase(p.Base)
	if err != nil {
		return nil, err
	}
	if p.Rooms < minApartmentRooms || p.Rooms > maxApartmentRooms {
		return nil, fmt.Errorf("%w: number of rooms must be between %d and %d", ErrValidation, minApartmentRooms, maxApartmentRooms)
	}
	if p.Floor < minApartmentFloor || p.Floor > maxApartmentFloor {
		return nil, fmt.Errorf("%w: floor must be between %d and %d", ErrValidation, minApartmentFloor, maxApartmentFloor)
	}
	return &Apartment{
		PropertyBase: base,
		rooms:        p.Rooms,
		floor:        p.Floor,
		hasBalcony:   p.HasBalcony,
		hasElevator:  p.HasElevator,
	}, nil
}

func (a *Apartment) Type() PropertyType { return TypeApartment }

func (a *Apartment) Rooms() int        { return a.rooms }
func (a *Apartment) Floor() int        { return a.floor }
func (a *Apartment) HasBalcony() bool  { return a.hasBalcony }
func (a *Apartment) HasElevator() bool { return a.hasElevator }

func (a *Apartment) SetRooms(rooms int) error {
	if rooms < minApartmentRooms || rooms > maxApartmentRooms {
		return fmt.Errorf("%w: number of rooms must be between %d and %d", ErrValidation, minApartmentRooms, maxApartmentRooms)
	}
	a.rooms = rooms
	return nil
}

func (a *Apartment) SetFloor(floor int) error {
	if floor < minApartmentFloor || floor > maxApartmentFloor {
		return fmt.Errorf("%w: floor must be between %d and %d", ErrValidation, minApartmentFloor, maxApartmentFloor)
	}
	a.floor = floor
	return nil
}

// FileRecord renders the APARTMENT data file line.
func (a *Apartment) FileRecord() string {
	fields := a.baseRecord("APARTMENT")
	fields = append(fields,
		fmt.Sprintf("%d", a.rooms),
		fmt.Sprintf("%d", a.floor),
		boolFlag(a.hasBalcony),
		boolFlag(a.hasElevator),
	)
	return joinRecord(fields)
}

// Clone returns a deep, independent copy preserving availability.
func (a *Apartment) Clone() Property {
	c := *a
	return &c
}

func (a *Apartment) String() string {
	return fmt.Sprintf("%s, %d rooms, floor %d", a.baseString(TypeApartment), a.rooms, a.floor)
}

func (a *Apartment) isProperty() {}
