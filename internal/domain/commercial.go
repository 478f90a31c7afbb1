package domain

import "fmt"

const (
	minParkingSpaces = 0
	maxParkingSpaces = 1000
)

// CommercialParams carries everything needed to construct a
// CommercialProperty.
type CommercialParams struct {
	Base              BaseParams
	BusinessType      string
	HasParking        bool
	ParkingSpaces     int
	VisibleFromStreet bool
}

// CommercialProperty is a retail, office or other business premises.
type CommercialProperty struct {
	PropertyBase
	businessType      string
	hasParking        bool
	parkingSpaces     int
	visibleFromStreet bool
}

// NewCommercialProperty validates p and builds a CommercialProperty.
func NewCommercialProperty(p CommercialParams) (*CommercialProperty, error) {
	base, err := newPropertyBase(p.Base)
	if err != nil {
		return nil, err
	}
	if p.BusinessType == "" {
		return nil, fmt.Errorf("%w: business type cannot be empty", ErrValidation)
	}
	if p.ParkingSpaces < minParkingSpaces || p.ParkingSpaces > maxParkingSpaces {
		return nil, fmt.Errorf("%w: parking spaces must be between %d and %d", ErrValidation, minParkingSpaces, maxParkingSpaces)
	}
	return &CommercialProperty{
		PropertyBase:      base,
		businessType:      p.BusinessType,
		hasParking:        p.HasParking,
		parkingSpaces:     p.ParkingSpaces,
		visibleFromStreet: p.VisibleFromStreet,
	}, nil
}

func (c *CommercialProperty) Type() PropertyType { return TypeCommercial }

func (c *CommercialProperty) BusinessType() string    { return c.businessType }
func (c *CommercialProperty) HasParking() bool        { return c.hasParking }
func (c *CommercialProperty) ParkingSpaces() int      { return c.parkingSpaces }
func (c *CommercialProperty) VisibleFromStreet() bool { return c.visibleFromStreet }

func (c *CommercialProperty) SetBusinessType(businessType string) error {
	if businessType == "" {
		return fmt.Errorf("%w: business type cannot be empty", ErrValidation)
	}
	c.businessType = businessType
	return nil
}

func (c *CommercialProperty) SetParkingSpaces(spaces int) error {
	if spaces < minParkingSpaces || spaces > maxParkingSpaces {
		return fmt.Errorf("%w: parking spaces must be between %d and %d", ErrValidation, minParkingSpaces, maxParkingSpaces)
	}
	c.parkingSpaces = spaces
	return nil
}

// FileRecord renders the COMMERCIAL data file line.
func (c *CommercialProperty) FileRecord() string {
	fields := c.baseRecord("COMMERCIAL")
	fields = append(fields,
		c.businessType,
		boolFlag(c.hasParking),
		fmt.Sprintf("%d", c.parkingSpaces),
		boolFlag(c.visibleFromStreet),
	)
	return joinRecord(fields)
}

// Clone returns a deep, independent copy preserving availability.
func (c *CommercialProperty) Clone() Property {
	d := *c
	return &d
}

func (c *CommercialProperty) String() string {
	return fmt.Sprintf("%s, %s, %d parking spaces", c.baseString(TypeCommercial), c.businessType, c.parkingSpaces)
}

func (c *CommercialProperty) isProperty() {}
