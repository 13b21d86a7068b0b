package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bustickets/entity"
)

type ClientsPostgresRepository struct {
	db *sqlx.DB
}

func NewClientsPostgresRepository(db *sqlx.DB) *ClientsPostgresRepository {
	return &ClientsPostgresRepository{db: db}
}

func (r *ClientsPostgresRepository) Store(ctx context.Context, client entity.Client) (int64, error) {
	var clientID int64
	err := r.db.GetContext(ctx, &clientID, `
		INSERT INTO clients (first_name, last_name, birth_date, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING client_id
	`, client.FirstName, client.LastName, client.BirthDate, client.Email, client.Phone)
	if err != nil {
		return 0, fmt.Errorf("could not add client: %w", err)
	}
	return clientID, nil
}

func (r *ClientsPostgresRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.db.SelectContext(ctx, &clients, `
		SELECT client_id, first_name, last_name, birth_date, email, phone
		FROM clients
		ORDER BY client_id
	`)
	return clients, err
}

// FindByName looks a client up by the (first name, last name) pair. The pair
// is not unique; the oldest matching record wins, which is the documented
// contract.
func (r *ClientsPostgresRepository) FindByName(ctx context.Context, firstName, lastName string) (entity.Client, error) {
	var client entity.Client
	err := r.db.GetContext(ctx, &client, `
		SELECT client_id, first_name, last_name, birth_date, email, phone
		FROM clients
		WHERE first_name = $1 AND last_name = $2
		ORDER BY client_id
		LIMIT 1
	`, firstName, lastName)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Client{}, entity.ErrNotFound
	}
	return client, err
}
