package ports

import (
	"context"

	"github.com/zuperior/content-api/internal/core/domain"
)

// CategoryInput carries a category create or update. ID is ignored on create.
type CategoryInput struct {
	ID    string
	Title string
	Icon  ImageInput
}

// ArticleInput carries an article create or update. Body is the raw JSON
// text sent by the client.
type ArticleInput struct {
	ID         string
	Title      string
	Body       string
	CategoryID string
	Thumbnail  ImageInput
}

// AssetInput carries an asset create or update.
type AssetInput struct {
	ID         string
	Title      string
	AssetURL   string
	CategoryID string
	Icon       ImageInput
}

// QuizInput carries a quiz create or update.
type QuizInput struct {
	ID            string
	Question      string
	CorrectAnswer string
	Answers       []string
	CategoryID    string
}

// ListQuizzesInput carries the list query. Limit <= 0 selects the default.
type ListQuizzesInput struct {
	CategoryID string
	Limit      int
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) (*domain.Category, error)
}

type ArticleService interface {
	ListArticles(ctx context.Context, categoryID string) ([]*domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	CreateArticle(ctx context.Context, input ArticleInput) (*domain.Article, error)
	UpdateArticle(ctx context.Context, input ArticleInput) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id string) (*domain.Article, error)
}

type AssetService interface {
	ListAssets(ctx context.Context) ([]*domain.Asset, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	CreateAsset(ctx context.Context, input AssetInput) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, input AssetInput) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, id string) (*domain.Asset, error)
}

type QuizService interface {
	ListQuizzes(ctx context.Context, input ListQuizzesInput) ([]QuizSummary, error)
	GetQuiz(ctx context.Context, id string) (*domain.Quiz, error)
	CreateQuiz(ctx context.Context, input QuizInput) (*domain.Quiz, error)
	UpdateQuiz(ctx context.Context, input QuizInput) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) (*domain.Quiz, error)
}
