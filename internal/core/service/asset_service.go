package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
	"github.com/zuperior/content-api/internal/pkg/metrics"
)

const resourceAsset = "asset"

type AssetService struct {
	repo     ports.AssetRepository
	uploader ports.ImageUploader
	logger   zerolog.Logger
}

func NewAssetService(repo ports.AssetRepository, uploader ports.ImageUploader, logger zerolog.Logger) *AssetService {
	return &AssetService{repo: repo, uploader: uploader, logger: logger}
}

func (s *AssetService) ListAssets(ctx context.Context) ([]*domain.Asset, error) {
	return s.repo.List(ctx)
}

func (s *AssetService) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AssetService) CreateAsset(ctx context.Context, input ports.AssetInput) (*domain.Asset, error) {
	asset, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, asset)
	if err != nil {
		s.logger.Error().Err(err).Str("icon", asset.Icon).Msg("failed to create asset")
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceAsset, "create").Inc()
	s.logger.Info().Str("asset_id", created.ID).Str("category_id", created.CategoryID).Msg("asset created")
	return created, nil
}

func (s *AssetService) UpdateAsset(ctx context.Context, input ports.AssetInput) (*domain.Asset, error) {
	asset, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}
	asset.ID = input.ID

	updated, err := s.repo.Update(ctx, asset)
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceAsset, "update").Inc()
	s.logger.Info().Str("asset_id", updated.ID).Msg("asset updated")
	return updated, nil
}

func (s *AssetService) DeleteAsset(ctx context.Context, id string) (*domain.Asset, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceAsset, "delete").Inc()
	s.logger.Info().Str("asset_id", id).Msg("asset deleted")
	return deleted, nil
}

func (s *AssetService) prepare(ctx context.Context, input ports.AssetInput) (*domain.Asset, error) {
	iconURL, err := uploadImage(ctx, s.uploader, resourceAsset, input.Title, input.Icon)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("asset icon upload failed")
		return nil, err
	}

	return &domain.Asset{
		Title:      strings.ToLower(input.Title),
		Icon:       iconURL,
		AssetURL:   input.AssetURL,
		CategoryID: input.CategoryID,
	}, nil
}
