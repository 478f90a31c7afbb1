package domain

import (
	"fmt"
	"strings"
)

// PropertyType identifies one of the closed set of property variants.
type PropertyType string

const (
	TypeApartment  PropertyType = "Apartment"
	TypeHouse      PropertyType = "House"
	TypeCommercial PropertyType = "Commercial"
)

// Property is the closed variant set over Apartment, House and
// CommercialProperty. Each variant embeds PropertyBase, so the shared
// getters and setters are available through the interface.
type Property interface {
	ID() string
	City() string
	Street() string
	House() string
	Price() float64
	Area() float64
	Description() string
	Available() bool
	Address() string

	SetPrice(price float64) error
	SetDescription(description string)
	SetAvailable(available bool)

	Type() PropertyType
	FileRecord() string
	Clone() Property
	String() string

	isProperty()
}

// BaseParams carries the fields common to every property variant.
type BaseParams struct {
	ID          string
	City        string
	Street      string
	House       string
	Price       float64
	Area        float64
	Description string
}

// PropertyBase holds the validated common state of a property. New
// properties are available by default.
type PropertyBase struct {
	id          string
	city        string
	street      string
	house       string
	price       float64
	area        float64
	description string
	available   bool
}

func newPropertyBase(p BaseParams) (PropertyBase, error) {
	if !ValidNumericID(p.ID) {
		return PropertyBase{}, fmt.Errorf("%w: invalid id: must be 6-8 digits only", ErrValidation)
	}
	if p.Price <= 0 {
		return PropertyBase{}, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if p.Area <= 0 {
		return PropertyBase{}, fmt.Errorf("%w: area must be positive", ErrValidation)
	}
	return PropertyBase{
		id:          p.ID,
		city:        p.City,
		street:      p.Street,
		house:       p.House,
		price:       p.Price,
		area:        p.Area,
		description: p.Description,
		available:   true,
	}, nil
}

func (b *PropertyBase) ID() string          { return b.id }
func (b *PropertyBase) City() string        { return b.city }
func (b *PropertyBase) Street() string      { return b.street }
func (b *PropertyBase) House() string       { return b.house }
func (b *PropertyBase) Price() float64      { return b.price }
func (b *PropertyBase) Area() float64       { return b.area }
func (b *PropertyBase) Description() string { return b.description }
func (b *PropertyBase) Available() bool     { return b.available }

// Address renders the display form used for auction snapshots.
func (b *PropertyBase) Address() string {
	return fmt.Sprintf("%s, %s %s", b.city, b.street, b.house)
}

func (b *PropertyBase) SetPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	b.price = price
	return nil
}

func (b *PropertyBase) SetDescription(description string) { b.description = description }

func (b *PropertyBase) SetAvailable(available bool) { b.available = available }

// baseRecord renders the leading fields shared by every property record:
// tag, id, address parts, price, area, description and availability flag.
func (b *PropertyBase) baseRecord(tag string) []string {
	return []string{
		tag,
		b.id,
		b.city,
		b.street,
		b.house,
		formatNumber(b.price),
		formatNumber(b.area),
		b.description,
		boolFlag(b.available),
	}
}

func (b *PropertyBase) baseString(typ PropertyType) string {
	return fmt.Sprintf("%s %s: %s, %.2f rub., %.1f m2", typ, b.id, b.Address(), b.price, b.area)
}

func joinRecord(fields []string) string { return strings.Join(fields, FieldSep) }
