package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
	"github.com/zuperior/content-api/internal/pkg/metrics"
)

const resourceArticle = "article"

type ArticleService struct {
	repo     ports.ArticleRepository
	uploader ports.ImageUploader
	logger   zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, uploader ports.ImageUploader, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, uploader: uploader, logger: logger}
}

// ListArticles returns every article, or only those of categoryID when it is non-empty.
func (s *ArticleService) ListArticles(ctx context.Context, categoryID string) ([]*domain.Article, error) {
	return s.repo.List(ctx, categoryID)
}

func (s *ArticleService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArticleService) CreateArticle(ctx context.Context, input ports.ArticleInput) (*domain.Article, error) {
	article, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		s.logger.Error().Err(err).Str("thumbnail", article.Thumbnail).Msg("failed to create article")
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceArticle, "create").Inc()
	s.logger.Info().Str("article_id", created.ID).Str("category_id", created.CategoryID).Msg("article created")
	return created, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, input ports.ArticleInput) (*domain.Article, error) {
	article, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}
	article.ID = input.ID

	updated, err := s.repo.Update(ctx, article)
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceArticle, "update").Inc()
	s.logger.Info().Str("article_id", updated.ID).Msg("article updated")
	return updated, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) (*domain.Article, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceArticle, "delete").Inc()
	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return deleted, nil
}

// prepare decodes the body before anything is uploaded, so a malformed body
// never leaves an orphaned thumbnail behind.
func (s *ArticleService) prepare(ctx context.Context, input ports.ArticleInput) (*domain.Article, error) {
	var body any
	if err := json.Unmarshal([]byte(input.Body), &body); err != nil {
		return nil, domain.ErrInvalidBody
	}

	thumbnailURL, err := uploadImage(ctx, s.uploader, resourceArticle, input.Title, input.Thumbnail)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("article thumbnail upload failed")
		return nil, err
	}

	return &domain.Article{
		Title:      strings.ToLower(input.Title),
		Thumbnail:  thumbnailURL,
		Body:       body,
		CategoryID: input.CategoryID,
	}, nil
}
