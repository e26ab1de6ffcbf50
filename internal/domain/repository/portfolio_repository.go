package repository

import (
	"context"

	"github.com/skillsnap/skillsnap-server/internal/domain/entity"
)

// PortfolioRepository defines the interface for portfolio item storage.
// List is always a fresh query ordered by created_at descending.
type PortfolioRepository interface {
	List(ctx context.Context) ([]entity.PortfolioItem, error)
	GetByID(ctx context.Context, id int) (*entity.PortfolioItem, error)
	Create(ctx context.Context, item *entity.PortfolioItem) error
	Count(ctx context.Context) (int64, error)
}
