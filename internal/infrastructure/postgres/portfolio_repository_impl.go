package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/skillsnap/skillsnap-server/internal/domain/entity"
	"github.com/skillsnap/skillsnap-server/internal/domain/repository"
)

type PortfolioRepository struct {
	db DB
}

func NewPortfolioRepository(db DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) List(ctx context.Context) ([]entity.PortfolioItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, user_id, created_at
		FROM portfolio_items
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.PortfolioItem, 0)
	for rows.Next() {
		var it entity.PortfolioItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.UserID, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id int) (*entity.PortfolioItem, error) {
	it := &entity.PortfolioItem{}
	row := r.db.QueryRow(ctx, `
		SELECT id, title, description, user_id, created_at
		FROM portfolio_items
		WHERE id = $1
	`, id)
	if err := row.Scan(&it.ID, &it.Title, &it.Description, &it.UserID, &it.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// Create persists the item and fills the db-assigned id and created_at.
func (r *PortfolioRepository) Create(ctx context.Context, item *entity.PortfolioItem) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO portfolio_items (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, item.Title, item.Description, item.UserID)
	return row.Scan(&item.ID, &item.CreatedAt)
}

func (r *PortfolioRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM portfolio_items`).Scan(&n)
	return n, err
}

var _ repository.PortfolioRepository = (*PortfolioRepository)(nil)
