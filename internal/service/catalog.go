package service

import (
	"context"
	"fmt"

	"campus_match/internal/models"
	"campus_match/internal/repository"
)

type CatalogService struct {
	repo repository.InterestRepo
}

func NewCatalogService(repo repository.InterestRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

// Seed inserts the given interest names, skipping existing ones.
// An empty list seeds models.DefaultInterests.
func (s *CatalogService) Seed(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		names = models.DefaultInterests
	}
	n, err := s.repo.Seed(ctx, names)
	if err != nil {
		return 0, fmt.Errorf("seed interests: %w", err)
	}
	return n, nil
}

// List returns the full catalog ordered by id.
func (s *CatalogService) List(ctx context.Context) ([]models.Interest, error) {
	return s.repo.List(ctx)
}
