package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
	"github.com/zuperior/content-api/internal/pkg/metrics"
)

const resourceCategory = "category"

type CategoryService struct {
	repo     ports.CategoryRepository
	uploader ports.ImageUploader
	logger   zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, uploader ports.ImageUploader, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, uploader: uploader, logger: logger}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCategory uploads the icon, then stores the category with a lower-cased title.
func (s *CategoryService) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	iconURL, err := uploadImage(ctx, s.uploader, resourceCategory, input.Title, input.Icon)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("category icon upload failed")
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Category{
		Title: strings.ToLower(input.Title),
		Icon:  iconURL,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("icon", iconURL).Msg("failed to create category")
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceCategory, "create").Inc()
	s.logger.Info().Str("category_id", created.ID).Msg("category created")
	return created, nil
}

// UpdateCategory replaces the title and icon of an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	iconURL, err := uploadImage(ctx, s.uploader, resourceCategory, input.Title, input.Icon)
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", input.ID).Msg("category icon upload failed")
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &domain.Category{
		ID:    input.ID,
		Title: strings.ToLower(input.Title),
		Icon:  iconURL,
	})
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceCategory, "update").Inc()
	s.logger.Info().Str("category_id", updated.ID).Msg("category updated")
	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (*domain.Category, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceCategory, "delete").Inc()
	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return deleted, nil
}
