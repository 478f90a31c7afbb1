package store

import (
	"fmt"
	"strconv"
	"strings"

	"estate/internal/domain"
)

// Field counts per property record, type tag included.
const (
	apartmentFields  = 13
	houseFields      = 14
	commercialFields = 13
)

// SaveProperties writes every property as one self-describing line.
func (s *FileStore) SaveProperties(properties []domain.Property) error {
	lines := make([]string, 0, len(properties))
	for _, p := range properties {
		lines = append(lines, p.FileRecord())
	}
	return s.writeLines(propertiesFile, lines)
}

// LoadProperties parses the properties file, skipping malformed records.
func (s *FileStore) LoadProperties() ([]domain.Property, error) {
	out := []domain.Property{}
	err := s.eachLine(propertiesFile, func(line string) {
		p, err := parsePropertyRecord(line)
		if err != nil {
			return // skip invalid property data
		}
		out = append(out, p)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parsePropertyRecord(line string) (domain.Property, error) {
	parts := strings.Split(line, domain.FieldSep)
	switch parts[0] {
	case "APARTMENT":
		return parseApartment(parts)
	case "HOUSE":
		return parseHouse(parts)
	case "COMMERCIAL":
		return parseCommercial(parts)
	default:
		return nil, fmt.Errorf("unknown property type %q", parts[0])
	}
}

// parseBaseFields reads the common fields parts[1:9] shared by every
// property record and reports the stored availability flag.
func parseBaseFields(parts []string) (domain.BaseParams, bool, error) {
	price, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return domain.BaseParams{}, false, err
	}
	area, err := strconv.ParseFloat(parts[6], 64)
	if err != nil {
		return domain.BaseParams{}, false, err
	}
	base := domain.BaseParams{
		ID:          parts[1],
		City:        parts[2],
		Street:      parts[3],
		House:       parts[4],
		Price:       price,
		Area:        area,
		Description: parts[7],
	}
	return base, parts[8] == "1", nil
}

func parseApartment(parts []string) (domain.Property, error) {
	if len(parts) != apartmentFields {
		return nil, fmt.Errorf("apartment record has %d fields, want %d", len(parts), apartmentFields)
	}
	base, available, err := parseBaseFields(parts)
	if err != nil {
		return nil, err
	}
	rooms, err := strconv.Atoi(parts[9])
	if err != nil {
		return nil, err
	}
	floor, err := strconv.Atoi(parts[10])
	if err != nil {
		return nil, err
	}
	a, err := domain.NewApartment(domain.ApartmentParams{
		Base:        base,
		Rooms:       rooms,
		Floor:       floor,
		HasBalcony:  parts[11] == "1",
		HasElevator: parts[12] == "1",
	})
	if err != nil {
		return nil, err
	}
	a.SetAvailable(available)
	return a, nil
}

func parseHouse(parts []string) (domain.Property, error) {
	if len(parts) != houseFields {
		return nil, fmt.Errorf("house record has %d fields, want %d", len(parts), houseFields)
	}
	base, available, err := parseBaseFields(parts)
	if err != nil {
		return nil, err
	}
	floors, err := strconv.Atoi(parts[9])
	if err != nil {
		return nil, err
	}
	rooms, err := strconv.Atoi(parts[10])
	if err != nil {
		return nil, err
	}
	landArea, err := strconv.ParseFloat(parts[11], 64)
	if err != nil {
		return nil, err
	}
	h, err := domain.NewHouse(domain.HouseParams{
		Base:      base,
		Floors:    floors,
		Rooms:     rooms,
		LandArea:  landArea,
		HasGarage: parts[12] == "1",
		HasGarden: parts[13] == "1",
	})
	if err != nil {
		return nil, err
	}
	h.SetAvailable(available)
	return h, nil
}

func parseCommercial(parts []string) (domain.Property, error) {
	if len(parts) != commercialFields {
		return nil, fmt.Errorf("commercial record has %d fields, want %d", len(parts), commercialFields)
	}
	base, available, err := parseBaseFields(parts)
	if err != nil {
		return nil, err
	}
	spaces, err := strconv.Atoi(parts[11])
	if err != nil {
		return nil, err
	}
	c, err := domain.NewCommercialProperty(domain.CommercialParams{
		Base:              base,
		BusinessType:      parts[9],
		HasParking:        parts[10] == "1",
		ParkingSpaces:     spaces,
		VisibleFromStreet: parts[12] == "1",
	})
	if err != nil {
		return nil, err
	}
	c.SetAvailable(available)
	return c, nil
}
