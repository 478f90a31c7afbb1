package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate/internal/domain"
)

func validBase() domain.BaseParams {
	return domain.BaseParams{
		ID:          "100001",
		City:        "Минск",
		Street:      "Независимости",
		House:       "12",
		Price:       50000,
		Area:        55.5,
		Description: "two-room flat",
	}
}

func TestNewApartment_OK(t *testing.T) {
	a, err := domain.NewApartment(domain.ApartmentParams{
		Base:        validBase(),
		Rooms:       3,
		Floor:       2,
		HasBalcony:  true,
		HasElevator: false,
	})
	require.NoError(t, err)

	assert.Equal(t, "100001", a.ID())
	assert.Equal(t, domain.TypeApartment, a.Type())
	assert.Equal(t, 3, a.Rooms())
	assert.Equal(t, 2, a.Floor())
	assert.True(t, a.HasBalcony())
	assert.False(t, a.HasElevator())
	assert.True(t, a.Available(), "new properties start available")
}

func TestNewApartment_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.ApartmentParams)
	}{
		{"id too short", func(p *domain.ApartmentParams) { p.Base.ID = "12345" }},
		{"id too long", func(p *domain.ApartmentParams) { p.Base.ID = "123456789" }},
		{"id non-digit", func(p *domain.ApartmentParams) { p.Base.ID = "12a456" }},
		{"zero price", func(p *domain.ApartmentParams) { p.Base.Price = 0 }},
		{"negative area", func(p *domain.ApartmentParams) { p.Base.Area = -1 }},
		{"rooms below range", func(p *domain.ApartmentParams) { p.Rooms = 0 }},
		{"rooms above range", func(p *domain.ApartmentParams) { p.Rooms = 11 }},
		{"floor below range", func(p *domain.ApartmentParams) { p.Floor = 0 }},
		{"floor above range", func(p *domain.ApartmentParams) { p.Floor = 101 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.ApartmentParams{Base: validBase(), Rooms: 3, Floor: 2}
			tc.mutate(&p)
			_, err := domain.NewApartment(p)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewHouse_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.HouseParams)
	}{
		{"floors above range", func(p *domain.HouseParams) { p.Floors = 11 }},
		{"rooms above range", func(p *domain.HouseParams) { p.Rooms = 51 }},
		{"negative land area", func(p *domain.HouseParams) { p.LandArea = -0.5 }},
		{"land area above range", func(p *domain.HouseParams) { p.LandArea = 10001 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.HouseParams{Base: validBase(), Floors: 2, Rooms: 6, LandArea: 300}
			tc.mutate(&p)
			_, err := domain.NewHouse(p)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewCommercial_Validation(t *testing.T) {
	p := domain.CommercialParams{Base: validBase(), BusinessType: "", ParkingSpaces: 5}
	_, err := domain.NewCommercialProperty(p)
	assert.ErrorIs(t, err, domain.ErrValidation)

	p.BusinessType = "shop"
	p.ParkingSpaces = 1001
	_, err = domain.NewCommercialProperty(p)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPropertySetters(t *testing.T) {
	h, err := domain.NewHouse(domain.HouseParams{Base: validBase(), Floors: 2, Rooms: 6, LandArea: 300})
	require.NoError(t, err)

	assert.ErrorIs(t, h.SetPrice(-5), domain.ErrValidation)
	assert.Equal(t, 50000.0, h.Price(), "failed setter leaves value unchanged")

	require.NoError(t, h.SetPrice(60000))
	assert.Equal(t, 60000.0, h.Price())

	assert.ErrorIs(t, h.SetLandArea(20000), domain.ErrValidation)
	require.NoError(t, h.SetFloors(3))
	assert.Equal(t, 3, h.Floors())
}

func TestClone_IsIndependent(t *testing.T) {
	a, err := domain.NewApartment(domain.ApartmentParams{Base: validBase(), Rooms: 3, Floor: 2})
	require.NoError(t, err)
	a.SetAvailable(false)

	c := a.Clone()
	assert.Equal(t, a.FileRecord(), c.FileRecord())
	assert.False(t, c.Available(), "clone preserves availability")

	require.NoError(t, c.SetPrice(99999))
	assert.Equal(t, 50000.0, a.Price(), "mutating the clone must not touch the original")
}

func TestFileRecord_Shape(t *testing.T) {
	a, err := domain.NewApartment(domain.ApartmentParams{
		Base:       validBase(),
		Rooms:      3,
		Floor:      2,
		HasBalcony: true,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"APARTMENT|100001|Минск|Независимости|12|50000|55.5|two-room flat|1|3|2|1|0",
		a.FileRecord())

	c, err := domain.NewCommercialProperty(domain.CommercialParams{
		Base:          validBase(),
		BusinessType:  "shop",
		HasParking:    true,
		ParkingSpaces: 10,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"COMMERCIAL|100001|Минск|Независимости|12|50000|55.5|two-room flat|1|shop|1|10|0",
		c.FileRecord())
}
