package repository

import (
	"context"
	"errors"

	"JerseyStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name, slug, created_at FROM categories ORDER BY name`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	query := `SELECT id, name, slug, created_at FROM categories WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&c.CategoryID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
		return nil, errors.New("category not found")
	}
	return &c, nil
}
