package ports

import (
	"context"

	"github.com/zuperior/content-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) (*domain.Category, error)
}

// ArticleRepository defines persistence operations for articles.
// Create and Update return domain.ErrCategoryNotFound when the referenced
// category does not exist.
type ArticleRepository interface {
	// List returns articles, optionally scoped to one category (empty = all).
	List(ctx context.Context, categoryID string) ([]*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Update(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id string) (*domain.Article, error)
}

// AssetRepository defines persistence operations for 3D assets.
// Create and Update return domain.ErrCategoryNotFound when the referenced
// category does not exist.
type AssetRepository interface {
	List(ctx context.Context) ([]*domain.Asset, error)
	FindByID(ctx context.Context, id string) (*domain.Asset, error)
	Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	Update(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	Delete(ctx context.Context, id string) (*domain.Asset, error)
}

// QuizFilter carries the list query for quizzes.
type QuizFilter struct {
	CategoryID string // optional
	Limit      int    // max rows returned
}

// QuizSummary is a quiz joined with the title of its category.
type QuizSummary struct {
	Quiz          domain.Quiz
	CategoryTitle string
}

// QuizRepository defines persistence operations for quizzes.
// Create and Update return domain.ErrCategoryNotFound when the referenced
// category does not exist.
type QuizRepository interface {
	List(ctx context.Context, filter QuizFilter) ([]QuizSummary, error)
	FindByID(ctx context.Context, id string) (*domain.Quiz, error)
	Create(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error)
	Update(ctx context.Context, q *domain.Quiz) (*domain.Quiz, error)
	Delete(ctx context.Context, id string) (*domain.Quiz, error)
}
