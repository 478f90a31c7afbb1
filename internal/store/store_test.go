package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate/internal/domain"
	"estate/internal/store"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestProperties_RoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	a, err := domain.NewApartment(domain.ApartmentParams{
		Base: domain.BaseParams{
			ID: "100001", City: "Минск", Street: "Независимости", House: "12",
			Price: 50000, Area: 55.5, Description: "two-room flat",
		},
		Rooms: 3, Floor: 2, HasBalcony: true,
	})
	require.NoError(t, err)
	a.SetAvailable(false)

	h, err := domain.NewHouse(domain.HouseParams{
		Base: domain.BaseParams{
			ID: "100002", City: "Брест", Street: "Советская", House: "3",
			Price: 90000, Area: 120,
		},
		Floors: 2, Rooms: 5, LandArea: 400.5, HasGarage: true, HasGarden: true,
	})
	require.NoError(t, err)

	c, err := domain.NewCommercialProperty(domain.CommercialParams{
		Base: domain.BaseParams{
			ID: "100003", City: "Гомель", Street: "Ленина", House: "7",
			Price: 200000, Area: 310,
		},
		BusinessType: "shop", HasParking: true, ParkingSpaces: 10, VisibleFromStreet: true,
	})
	require.NoError(t, err)

	require.NoError(t, s.SaveProperties([]domain.Property{a, h, c}))

	loaded, err := s.LoadProperties()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, a.FileRecord(), loaded[0].FileRecord())
	assert.False(t, loaded[0].Available(), "availability survives the round trip")
	reloaded, ok := loaded[0].(*domain.Apartment)
	require.True(t, ok)
	assert.Equal(t, 3, reloaded.Rooms())
	assert.Equal(t, 50000.0, reloaded.Price())
	assert.Equal(t, h.FileRecord(), loaded[1].FileRecord())
	assert.Equal(t, c.FileRecord(), loaded[2].FileRecord())
	assert.Equal(t, domain.TypeHouse, loaded[1].Type())
}

func TestLoadProperties_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	lines := strings.Join([]string{
		"APARTMENT|100001|Минск|Независимости|12|50000|55.5|flat|1|3|2|1|0",
		"APARTMENT|100002|Минск|Независимости|12|50000", // truncated
		"SPACESHIP|100003|Минск|Независимости|12|50000|55.5|flat|1|3|2|1|0",
		"APARTMENT|100004|Минск|Независимости|12|zzz|55.5|flat|1|3|2|1|0",
		"",
		"HOUSE|100005|Брест|Советская|3|90000|120|house|1|2|5|400|1|0",
	}, "\n")
	writeDataFile(t, dir, "properties.txt", lines)

	loaded, err := s.LoadProperties()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "100001", loaded[0].ID())
	assert.Equal(t, "100005", loaded[1].ID())
}

func TestLoadProperties_MissingFile(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	_, err := s.LoadProperties()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClients_RoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	c, err := domain.NewClient("200001", "Иван Петров", "+375291234567", "ivan@example.com")
	require.NoError(t, err)
	require.NoError(t, s.SaveClients([]*domain.Client{c}))

	loaded, err := s.LoadClients()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, c.FileRecord(), loaded[0].FileRecord())
	assert.True(t, c.RegistrationDate().Equal(loaded[0].RegistrationDate()))
}

func TestLoadClients_SkipsInvalidRecords(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	lines := strings.Join([]string{
		"200001|Иван Петров|+375291234567|ivan@example.com|2024-03-01 10:00:00",
		"20x002|Самозванец|+375291234567|fake@example.com|2024-03-01 10:00:00", // id fails validation
		"200003|Пётр|+375447654321|petr@example.com",                          // too few fields
		"200004|Анна|+375251112233|anna@example.com|not-a-date",
	}, "\n")
	writeDataFile(t, dir, "clients.txt", lines)

	loaded, err := s.LoadClients()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "200001", loaded[0].ID())
}

func TestTransactions_RoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	tr, err := domain.NewTransaction("300001", "100001", "200001", 45000, domain.TransactionPending, "deposit paid")
	require.NoError(t, err)
	require.NoError(t, s.SaveTransactions([]*domain.Transaction{tr}))

	loaded, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, tr.FileRecord(), loaded[0].FileRecord())
	assert.Equal(t, domain.TransactionPending, loaded[0].Status())
	assert.True(t, tr.Date().Equal(loaded[0].Date()))
}

func TestAuctions_RoundTripWithBids(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	a, err := domain.NewAuction("400001", "100001", "Минск, Независимости 12", 10000)
	require.NoError(t, err)
	first, err := domain.NewBid("200001", "Иван", 10000)
	require.NoError(t, err)
	second, err := domain.NewBid("200002", "Пётр", 12000)
	require.NoError(t, err)
	require.NoError(t, a.PlaceBid(first))
	require.NoError(t, a.PlaceBid(second))

	empty, err := domain.NewAuction("400002", "100002", "Брест, Советская 3", 5000)
	require.NoError(t, err)
	empty.Cancel()

	require.NoError(t, s.SaveAuctions([]*domain.Auction{a, empty}))

	loaded, err := s.LoadAuctions()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	got := loaded[0]
	assert.Equal(t, a.FileRecord(), got.FileRecord())
	require.Equal(t, 2, got.BidCount())
	assert.Equal(t, "200002", got.HighestBid().ClientID())
	assert.Equal(t, 12000.0, got.CurrentHighestBid())
	assert.True(t, a.CreatedAt().Equal(got.CreatedAt()))

	assert.Equal(t, domain.AuctionCancelled, loaded[1].Status())
	assert.Equal(t, 0, loaded[1].BidCount())
}

func TestLoadAuctions_BidAdjacency(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	lines := strings.Join([]string{
		"BID|400009|200001|Сирота|500.00|2024-03-01 10:00:00", // before any auction, dropped
		"400001|100001|Минск, Независимости 12|10000.00|17000.00|active|2024-03-01 09:00:00|",
		"BID|400001|200001|Иван|10000.00|2024-03-01 10:00:00",
		"BID|999999|200002|Пётр|12000.00|2024-03-01 11:00:00", // mismatched id still attaches by position
		"BID|400001||Без клиента|13000.00|2024-03-01 12:00:00",
		"BID|400001|200003|Анна|oops|2024-03-01 13:00:00",
		"400002|100002|Брест, Советская 3|5000.00|8500.00|active|2024-03-01 09:30:00|",
		"BID|400002|200004|Ольга|5000.00|2024-03-01 14:00:00",
	}, "\n")
	writeDataFile(t, dir, "auctions.txt", lines)

	loaded, err := s.LoadAuctions()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	require.Equal(t, 2, loaded[0].BidCount())
	bids := loaded[0].Bids()
	assert.Equal(t, "200001", bids[0].ClientID())
	assert.Equal(t, "200002", bids[1].ClientID())

	require.Equal(t, 1, loaded[1].BidCount())
	assert.Equal(t, "200004", loaded[1].Bids()[0].ClientID())
}

func TestSaveReload_SameDirectoryOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	a, err := domain.NewApartment(domain.ApartmentParams{
		Base: domain.BaseParams{
			ID: "100001", City: "Минск", Street: "Независимости", House: "12",
			Price: 50000, Area: 55.5,
		},
		Rooms: 3, Floor: 2,
	})
	require.NoError(t, err)

	require.NoError(t, s.SaveProperties([]domain.Property{a}))
	require.NoError(t, a.SetPrice(60000))
	require.NoError(t, s.SaveProperties([]domain.Property{a}))

	loaded, err := s.LoadProperties()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 60000.0, loaded[0].Price(), "a second save replaces the file")
}
