package repository

import (
	"context"
	"errors"

	"JerseyStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type JerseyRepository struct {
	DB *pgxpool.Pool
}

func NewJerseyRepository(db *pgxpool.Pool) *JerseyRepository {
	return &JerseyRepository{DB: db}
}

// List returns all jerseys, featured first.
func (r *JerseyRepository) List(ctx context.Context) ([]model.Jersey, error) {
	query := `
		SELECT id, name, description, price, category_id, team, player_name, player_number,
		       image_url, stock, sizes, featured, created_at
		FROM jerseys
		ORDER BY featured DESC, created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Jersey
	for rows.Next() {
		var j model.Jersey
		if err := rows.Scan(
			&j.JerseyID, &j.Name, &j.Description, &j.Price, &j.CategoryID, &j.Team,
			&j.PlayerName, &j.PlayerNumber, &j.ImageURL, &j.Stock, &j.Sizes, &j.Featured, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JerseyRepository) GetByID(ctx context.Context, id string) (*model.Jersey, error) {
	var j model.Jersey
	query := `
		SELECT id, name, description, price, category_id, team, player_name, player_number,
		       image_url, stock, sizes, featured, created_at
		FROM jerseys WHERE id=$1
	`
	if err := r.DB.QueryRow(ctx, query, id).Scan(
		&j.JerseyID, &j.Name, &j.Description, &j.Price, &j.CategoryID, &j.Team,
		&j.PlayerName, &j.PlayerNumber, &j.ImageURL, &j.Stock, &j.Sizes, &j.Featured, &j.CreatedAt,
	); err != nil {
		return nil, errors.New("jersey not found")
	}
	return &j, nil
}
