package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bustickets/entity"
)

func TestRoutesRepository_StoreAndGet(t *testing.T) {
	db := GetDb(t)
	ctx := context.Background()
	repo := NewRoutesPostgresRepository(db)

	departure := uniqueCity("Київ")
	destination := uniqueCity("Львів")

	routeID, err := repo.Store(ctx, entity.Route{
		DepartureCity:   departure,
		DestinationCity: destination,
		Price:           "450.50",
	})
	require.NoError(t, err)

	route, err := repo.Get(ctx, routeID)
	require.NoError(t, err)
	assert.Equal(t, departure, route.DepartureCity)
	assert.Equal(t, destination, route.DestinationCity)
	assert.Equal(t, "450.50", route.Price)
}

func TestRoutesRepository_Delete(t *testing.T) {
	db := GetDb(t)
	ctx := context.Background()
	repo := NewRoutesPostgresRepository(db)

	routeID, err := repo.Store(ctx, entity.Route{
		DepartureCity:   uniqueCity("Вінниця"),
		DestinationCity: uniqueCity("Ужгород"),
		Price:           "500.00",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, routeID))

	_, err = repo.Get(ctx, routeID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	// A second delete of the same id reports not found.
	require.ErrorIs(t, repo.Delete(ctx, routeID), entity.ErrNotFound)
}

func TestRoutesRepository_FindFiltered(t *testing.T) {
	db := GetDb(t)
	ctx := context.Background()
	repo := NewRoutesPostgresRepository(db)

	departure := uniqueCity("Київ")
	lviv := uniqueCity("Львів")
	odesa := uniqueCity("Одеса")

	toLviv, err := repo.Store(ctx, entity.Route{DepartureCity: departure, DestinationCity: lviv, Price: "300.00"})
	require.NoError(t, err)
	toOdesa, err := repo.Store(ctx, entity.Route{DepartureCity: departure, DestinationCity: odesa, Price: "350.00"})
	require.NoError(t, err)

	routes, err := repo.FindFiltered(ctx, departure, "")
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, toLviv, routes[0].RouteID)
	assert.Equal(t, toOdesa, routes[1].RouteID)

	routes, err = repo.FindFiltered(ctx, departure, odesa)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, toOdesa, routes[0].RouteID)

	routes, err = repo.FindFiltered(ctx, uniqueCity("Немає"), "")
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestRoutesRepository_FindByCity_MatchesBothDirections(t *testing.T) {
	db := GetDb(t)
	ctx := context.Background()
	repo := NewRoutesPostgresRepository(db)

	hub := uniqueCity("Тернопіль")
	other := uniqueCity("Рівне")

	outbound, err := repo.Store(ctx, entity.Route{DepartureCity: hub, DestinationCity: other, Price: "200.00"})
	require.NoError(t, err)
	inbound, err := repo.Store(ctx, entity.Route{DepartureCity: other, DestinationCity: hub, Price: "200.00"})
	require.NoError(t, err)

	routes, err := repo.FindByCity(ctx, hub)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, outbound, routes[0].RouteID)
	assert.Equal(t, inbound, routes[1].RouteID)
}
