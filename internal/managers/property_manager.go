package managers

import (
	"fmt"

	"estate/internal/domain"
)

// PropertyManager owns the agency's property listings.
type PropertyManager struct {
	properties []domain.Property
}

func NewPropertyManager() *PropertyManager { return &PropertyManager{} }

// Add stores a property, rejecting nil values and duplicate ids.
func (m *PropertyManager) Add(p domain.Property) error {
	if p == nil {
		return fmt.Errorf("%w: property", ErrNilEntity)
	}
	if _, ok := findByID(m.properties, p.ID()); ok {
		return fmt.Errorf("%w: property with id %s already exists", ErrDuplicateID, p.ID())
	}
	m.properties = append(m.properties, p)
	return nil
}

// AddApartment builds an apartment from params and stores it.
func (m *PropertyManager) AddApartment(p domain.ApartmentParams) (*domain.Apartment, error) {
	a, err := domain.NewApartment(p)
	if err != nil {
		return nil, err
	}
	if err := m.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddHouse builds a house from params and stores it.
func (m *PropertyManager) AddHouse(p domain.HouseParams) (*domain.House, error) {
	h, err := domain.NewHouse(p)
	if err != nil {
		return nil, err
	}
	if err := m.Add(h); err != nil {
		return nil, err
	}
	return h, nil
}

// AddCommercial builds a commercial property from params and stores it.
func (m *PropertyManager) AddCommercial(p domain.CommercialParams) (*domain.CommercialProperty, error) {
	c, err := domain.NewCommercialProperty(p)
	if err != nil {
		return nil, err
	}
	if err := m.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deletes the property with the given id and reports whether a
// removal happened.
func (m *PropertyManager) Remove(id string) bool {
	var removed bool
	m.properties, removed = removeByID(m.properties, id)
	return removed
}

// Find returns the property with the given id, or nil.
func (m *PropertyManager) Find(id string) domain.Property {
	if p, ok := findByID(m.properties, id); ok {
		return p
	}
	return nil
}

// All returns every property in insertion order.
func (m *PropertyManager) All() []domain.Property {
	out := make([]domain.Property, len(m.properties))
	copy(out, m.properties)
	return out
}

// Available returns the properties currently open for deals.
func (m *PropertyManager) Available() []domain.Property {
	var out []domain.Property
	for _, p := range m.properties {
		if p.Available() {
			out = append(out, p)
		}
	}
	return out
}

// SearchByPriceRange returns properties priced within [min, max].
func (m *PropertyManager) SearchByPriceRange(min, max float64) []domain.Property {
	var out []domain.Property
	for _, p := range m.properties {
		if p.Price() >= min && p.Price() <= max {
			out = append(out, p)
		}
	}
	return out
}

// SearchByAddress matches properties whose city, street and house each
// contain the corresponding non-empty filter part, case-insensitively.
// All-empty filters match nothing rather than everything.
func (m *PropertyManager) SearchByAddress(city, street, house string) []domain.Property {
	if city == "" && street == "" && house == "" {
		return nil
	}
	var out []domain.Property
	for _, p := range m.properties {
		if city != "" && !containsFold(p.City(), city) {
			continue
		}
		if street != "" && !containsFold(p.Street(), street) {
			continue
		}
		if house != "" && !containsFold(p.House(), house) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SetProperties replaces the whole collection. Only the persistence layer
// calls this, after a file has been fully parsed.
func (m *PropertyManager) SetProperties(properties []domain.Property) {
	m.properties = properties
}

// Count returns the number of stored properties.
func (m *PropertyManager) Count() int { return len(m.properties) }
