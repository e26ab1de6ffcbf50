package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/skillsnap/skillsnap-server/internal/domain/entity"
	repo "github.com/skillsnap/skillsnap-server/internal/domain/repository"
)

var ErrItemNotFound = errors.New("portfolio item not found")

// PortfolioService is thin orchestration over the repository. List is always
// a fresh query; nothing here is cached.
type PortfolioService struct {
	Repo   repo.PortfolioRepository
	Logger *logrus.Logger
}

func NewPortfolioService(r repo.PortfolioRepository, logger *logrus.Logger) *PortfolioService {
	return &PortfolioService{Repo: r, Logger: logger}
}

func (s *PortfolioService) List(ctx context.Context) ([]entity.PortfolioItem, error) {
	return s.Repo.List(ctx)
}

func (s *PortfolioService) Get(ctx context.Context, id int) (*entity.PortfolioItem, error) {
	it, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return it, nil
}

// Create persists a new item owned by ownerID, which always comes from the
// caller's validated claims rather than the request body.
func (s *PortfolioService) Create(ctx context.Context, title, description, ownerID string) (*entity.PortfolioItem, error) {
	item := &entity.PortfolioItem{Title: title, Description: description}
	if ownerID != "" {
		item.UserID = &ownerID
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create portfolio item failed")
		}
		return nil, err
	}
	return item, nil
}
