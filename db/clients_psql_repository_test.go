package db

import (
	"context"
	"testing"

	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bustickets/entity"
)

func TestClientsRepository_FindByName_OldestMatchWins(t *testing.T) {
	db := GetDb(t)
	ctx := context.Background()
	repo := NewClientsPostgresRepository(db)

	// The name pair is deliberately not unique; only the suffix keeps this
	// test isolated from the rest of the suite.
	lastName := "Петренко-" + shortuuid.New()

	firstID, err := repo.Store(ctx, entity.Client{
		FirstName: "Іван",
		LastName:  lastName,
		BirthDate: "1990-01-01",
		Email:     "ivan.first@example.com",
		Phone:     "+380501112233",
	})
	require.NoError(t, err)

	_, err = repo.Store(ctx, entity.Client{
		FirstName: "Іван",
		LastName:  lastName,
		BirthDate: "1985-07-21",
		Email:     "ivan.second@example.com",
		Phone:     "+380671234567",
	})
	require.NoError(t, err)

	client, err := repo.FindByName(ctx, "Іван", lastName)
	require.NoError(t, err)
	assert.Equal(t, firstID, client.ClientID)
	assert.Equal(t, "ivan.first@example.com", client.Email)
}

func TestClientsRepository_FindByName_NotFound(t *testing.T) {
	db := GetDb(t)

	_, err := NewClientsPostgresRepository(db).FindByName(context.Background(), "Немає", "Такого-"+shortuuid.New())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClientsRepository_StoreAndFindAll(t *testing.T) {
	db := GetDb(t)
	ctx := context.Background()
	repo := NewClientsPostgresRepository(db)

	clientID, err := repo.Store(ctx, entity.Client{
		FirstName: "Марія",
		LastName:  "Коваленко-" + shortuuid.New(),
		BirthDate: "1992-05-14",
		Email:     "maria@example.com",
		Phone:     "+380501112233",
	})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)

	var found *entity.Client
	for i := range all {
		if all[i].ClientID == clientID {
			found = &all[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Марія", found.FirstName)
	assert.Equal(t, "1992-05-14", found.BirthDate)
}
