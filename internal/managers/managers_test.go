package managers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate/internal/domain"
	"estate/internal/managers"
)

func apartmentParams(id string, price float64) domain.ApartmentParams {
	return domain.ApartmentParams{
		Base: domain.BaseParams{
			ID:     id,
			City:   "Минск",
			Street: "Независимости",
			House:  "12",
			Price:  price,
			Area:   55,
		},
		Rooms: 3,
		Floor: 2,
	}
}

func TestPropertyManager_AddFindRemove(t *testing.T) {
	m := managers.NewPropertyManager()

	a, err := m.AddApartment(apartmentParams("100001", 50000))
	require.NoError(t, err)
	assert.Same(t, a, m.Find("100001").(*domain.Apartment))

	_, err = m.AddApartment(apartmentParams("100001", 60000))
	assert.ErrorIs(t, err, managers.ErrDuplicateID)
	assert.Equal(t, 1, m.Count(), "failed add must leave the collection unchanged")

	assert.False(t, m.Remove("999999"))
	assert.Equal(t, 1, m.Count())

	assert.True(t, m.Remove("100001"))
	assert.Equal(t, 0, m.Count())
	assert.Nil(t, m.Find("100001"))
}

func TestPropertyManager_AddNil(t *testing.T) {
	m := managers.NewPropertyManager()
	assert.ErrorIs(t, m.Add(nil), managers.ErrNilEntity)
}

func TestPropertyManager_Available(t *testing.T) {
	m := managers.NewPropertyManager()
	a, err := m.AddApartment(apartmentParams("100001", 50000))
	require.NoError(t, err)
	_, err = m.AddApartment(apartmentParams("100002", 60000))
	require.NoError(t, err)

	a.SetAvailable(false)
	available := m.Available()
	require.Len(t, available, 1)
	assert.Equal(t, "100002", available[0].ID())
}

func TestPropertyManager_SearchByPriceRange(t *testing.T) {
	m := managers.NewPropertyManager()
	for id, price := range map[string]float64{"100001": 30000, "100002": 50000, "100003": 80000} {
		_, err := m.AddApartment(apartmentParams(id, price))
		require.NoError(t, err)
	}

	results := m.SearchByPriceRange(30000, 50000)
	assert.Len(t, results, 2, "bounds are inclusive")
	assert.Empty(t, m.SearchByPriceRange(90000, 100000))
}

func TestPropertyManager_SearchByAddress(t *testing.T) {
	m := managers.NewPropertyManager()
	_, err := m.AddApartment(apartmentParams("100001", 50000))
	require.NoError(t, err)

	h, err := domain.NewHouse(domain.HouseParams{
		Base: domain.BaseParams{
			ID: "100002", City: "Брест", Street: "Советская", House: "3",
			Price: 90000, Area: 120,
		},
		Floors: 2, Rooms: 5, LandArea: 400,
	})
	require.NoError(t, err)
	require.NoError(t, m.Add(h))

	assert.Empty(t, m.SearchByAddress("", "", ""), "all-empty filter matches nothing")

	results := m.SearchByAddress("минск", "", "")
	require.Len(t, results, 1)
	assert.Equal(t, "100001", results[0].ID())

	assert.Empty(t, m.SearchByAddress("Минск", "Советская", ""), "every non-empty part must match")
	assert.Len(t, m.SearchByAddress("", "совет", "3"), 1)
}

func TestClientManager_SearchAndSort(t *testing.T) {
	m := managers.NewClientManager()
	for _, c := range []struct{ id, name string }{
		{"200003", "Сидоров Антон"},
		{"200001", "Иванов Пётр"},
		{"200002", "Петров Иван"},
	} {
		client, err := domain.NewClient(c.id, c.name, "+375291234567", "x@example.com")
		require.NoError(t, err)
		require.NoError(t, m.Add(client))
	}

	found := m.SearchByName("иван")
	assert.Len(t, found, 2, "substring match is case-insensitive")

	assert.Len(t, m.SearchByName(""), 3, "empty query matches everyone")

	sorted := m.SortedByName()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Иванов Пётр", sorted[0].Name())
	assert.Equal(t, "Сидоров Антон", sorted[2].Name())

	all := m.All()
	assert.Equal(t, "Сидоров Антон", all[0].Name(), "All keeps insertion order")
}

func TestClientManager_SearchByPhone(t *testing.T) {
	m := managers.NewClientManager()
	c, err := domain.NewClient("200001", "Иван", "+375291234567", "a@example.com")
	require.NoError(t, err)
	require.NoError(t, m.Add(c))

	assert.Len(t, m.SearchByPhone("+375291234567"), 1)
	assert.Empty(t, m.SearchByPhone("+375291234568"), "phone match is exact")
}

func TestTransactionManager_Filters(t *testing.T) {
	m := managers.NewTransactionManager()
	add := func(id, propID, clientID, status string) {
		tr, err := domain.NewTransaction(id, propID, clientID, 1000, status, "")
		require.NoError(t, err)
		require.NoError(t, m.Add(tr))
	}
	add("300001", "100001", "200001", domain.TransactionPending)
	add("300002", "100001", "200002", domain.TransactionCompleted)
	add("300003", "100002", "200001", domain.TransactionCancelled)

	assert.Len(t, m.ByProperty("100001"), 2)
	assert.Len(t, m.ByClient("200001"), 2)
	assert.Len(t, m.ByStatus(domain.TransactionCompleted), 1)
	assert.Len(t, m.SortedByDate(), 3)

	tr, err := domain.NewTransaction("300001", "100009", "200009", 500, domain.TransactionPending, "")
	require.NoError(t, err)
	assert.ErrorIs(t, m.Add(tr), managers.ErrDuplicateID)
}

func TestAuctionManager_Filters(t *testing.T) {
	m := managers.NewAuctionManager()
	add := func(id, propID string) *domain.Auction {
		a, err := domain.NewAuction(id, propID, "addr", 10000)
		require.NoError(t, err)
		require.NoError(t, m.Add(a))
		return a
	}
	add("400001", "100001")
	completed := add("400002", "100001")
	cancelled := add("400003", "100002")
	completed.Complete()
	cancelled.Cancel()

	assert.Len(t, m.Active(), 1)
	assert.Len(t, m.Completed(), 1)
	assert.Len(t, m.ByProperty("100001"), 2)

	assert.True(t, m.Remove("400003"))
	assert.Nil(t, m.Find("400003"))
	assert.Equal(t, 2, m.Count())
}
