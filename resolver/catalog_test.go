package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bustickets/entity"
	"bustickets/gateway"
)

type staticStore struct {
	routes  []entity.Route
	buses   []entity.Bus
	clients []entity.Client
}

func (s staticStore) FindAllRoutes(ctx context.Context) ([]entity.Route, error) {
	return s.routes, nil
}

func (s staticStore) FindAllBuses(ctx context.Context) ([]entity.Bus, error) {
	return s.buses, nil
}

func (s staticStore) FindAllClients(ctx context.Context) ([]entity.Client, error) {
	return s.clients, nil
}

func loadTestCatalog(t *testing.T, store staticStore, normalizer Normalizer) *Catalog {
	t.Helper()

	catalog, err := LoadCatalog(context.Background(), store, normalizer)
	require.NoError(t, err)
	return catalog
}

func TestCatalog_ResolveCity(t *testing.T) {
	normalizer := &gateway.NormalizerMock{}
	catalog := loadTestCatalog(t, staticStore{
		routes: []entity.Route{
			{RouteID: 1, DepartureCity: "Київ", DestinationCity: "Львів", Price: "300.00"},
			{RouteID: 2, DepartureCity: "Київ", DestinationCity: "Одеса", Price: "350.00"},
		},
	}, normalizer)

	input, err := normalizer.Embed(context.Background(), "київ")
	require.NoError(t, err)

	city, score := catalog.ResolveCity(input)

	require.NotNil(t, city)
	assert.Equal(t, "Київ", *city)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestCatalog_ResolveCity_NoPositiveMatch(t *testing.T) {
	normalizer := &gateway.NormalizerMock{
		Vectors: map[string][]float64{
			"Київ":  {1, 0},
			"Львів": {0, 1},
		},
	}
	catalog := loadTestCatalog(t, staticStore{
		routes: []entity.Route{
			{RouteID: 1, DepartureCity: "Київ", DestinationCity: "Львів", Price: "300.00"},
		},
	}, normalizer)

	city, score := catalog.ResolveCity([]float64{-1, -1})

	assert.Nil(t, city)
	assert.Equal(t, 0.0, score)
}

func TestCatalog_ResolveRoute_SumsBothCities(t *testing.T) {
	normalizer := &gateway.NormalizerMock{
		Vectors: map[string][]float64{
			"Київ":  {1, 0, 0},
			"Львів": {0, 1, 0},
			"Одеса": {0, 0, 1},
		},
	}
	catalog := loadTestCatalog(t, staticStore{
		routes: []entity.Route{
			{RouteID: 1, DepartureCity: "Київ", DestinationCity: "Львів", Price: "300.00"},
			{RouteID: 2, DepartureCity: "Київ", DestinationCity: "Одеса", Price: "350.00"},
		},
	}, normalizer)

	// Aligned with Львів, equally distant from both departure cities.
	route, score := catalog.ResolveRoute([]float64{0, 1, 0})

	require.NotNil(t, route)
	assert.Equal(t, int64(1), route.RouteID)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestCatalog_ResolveBus(t *testing.T) {
	normalizer := &gateway.NormalizerMock{}
	catalog := loadTestCatalog(t, staticStore{
		buses: []entity.Bus{
			{BusID: 1, BusNumber: "A17", RouteID: 1, DepartureTime: "08:30", TotalSeats: 40, AvailableSeats: 40},
			{BusID: 2, BusNumber: "B12", RouteID: 1, DepartureTime: "12:00", TotalSeats: 40, AvailableSeats: 12},
		},
	}, normalizer)

	input, err := normalizer.Embed(context.Background(), "b12")
	require.NoError(t, err)

	bus, _ := catalog.ResolveBus(input)

	require.NotNil(t, bus)
	assert.Equal(t, "B12", bus.BusNumber)
}

func TestCatalog_ResolveClient_SumsBothNames(t *testing.T) {
	normalizer := &gateway.NormalizerMock{}
	catalog := loadTestCatalog(t, staticStore{
		clients: []entity.Client{
			{ClientID: 7, FirstName: "Іван", LastName: "Петренко"},
			{ClientID: 8, FirstName: "Олена", LastName: "Шевченко"},
		},
	}, normalizer)

	input, err := normalizer.Embed(context.Background(), "Іван Петренко")
	require.NoError(t, err)

	client, score := catalog.ResolveClient(input)

	require.NotNil(t, client)
	assert.Equal(t, int64(7), client.ClientID)
	assert.Greater(t, score, 0.0)
}

func TestCatalog_AddClient_MakesClientResolvable(t *testing.T) {
	normalizer := &gateway.NormalizerMock{}
	catalog := loadTestCatalog(t, staticStore{}, normalizer)

	input, err := normalizer.Embed(context.Background(), "Марія Коваленко")
	require.NoError(t, err)

	client, _ := catalog.ResolveClient(input)
	require.Nil(t, client)

	err = catalog.AddClient(context.Background(), normalizer, entity.Client{
		ClientID: 1, FirstName: "Марія", LastName: "Коваленко",
	})
	require.NoError(t, err)

	client, score := catalog.ResolveClient(input)

	require.NotNil(t, client)
	assert.Equal(t, int64(1), client.ClientID)
	assert.Greater(t, score, 0.0)
}
