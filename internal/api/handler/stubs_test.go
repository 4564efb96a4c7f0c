package handler

import (
	"context"
	"io"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
)

// readImage drains an ImageInput so tests can assert on what reached the service.
func readImage(img ports.ImageInput) string {
	b, _ := io.ReadAll(img.Content)
	return string(b)
}

type stubCategoryService struct {
	listFn   func(ctx context.Context) ([]*domain.Category, error)
	getFn    func(ctx context.Context, id string) (*domain.Category, error)
	createFn func(ctx context.Context, in ports.CategoryInput) (*domain.Category, error)
	updateFn func(ctx context.Context, in ports.CategoryInput) (*domain.Category, error)
	deleteFn func(ctx context.Context, id string) (*domain.Category, error)
}

func (s *stubCategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.listFn(ctx)
}
func (s *stubCategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.getFn(ctx, id)
}
func (s *stubCategoryService) CreateCategory(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	return s.createFn(ctx, in)
}
func (s *stubCategoryService) UpdateCategory(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	return s.updateFn(ctx, in)
}
func (s *stubCategoryService) DeleteCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.deleteFn(ctx, id)
}

type stubArticleService struct {
	listFn   func(ctx context.Context, categoryID string) ([]*domain.Article, error)
	getFn    func(ctx context.Context, id string) (*domain.Article, error)
	createFn func(ctx context.Context, in ports.ArticleInput) (*domain.Article, error)
	updateFn func(ctx context.Context, in ports.ArticleInput) (*domain.Article, error)
	deleteFn func(ctx context.Context, id string) (*domain.Article, error)
}

func (s *stubArticleService) ListArticles(ctx context.Context, categoryID string) ([]*domain.Article, error) {
	return s.listFn(ctx, categoryID)
}
func (s *stubArticleService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.getFn(ctx, id)
}
func (s *stubArticleService) CreateArticle(ctx context.Context, in ports.ArticleInput) (*domain.Article, error) {
	return s.createFn(ctx, in)
}
func (s *stubArticleService) UpdateArticle(ctx context.Context, in ports.ArticleInput) (*domain.Article, error) {
	return s.updateFn(ctx, in)
}
func (s *stubArticleService) DeleteArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.deleteFn(ctx, id)
}

type stubAssetService struct {
	listFn   func(ctx context.Context) ([]*domain.Asset, error)
	getFn    func(ctx context.Context, id string) (*domain.Asset, error)
	createFn func(ctx context.Context, in ports.AssetInput) (*domain.Asset, error)
	updateFn func(ctx context.Context, in ports.AssetInput) (*domain.Asset, error)
	deleteFn func(ctx context.Context, id string) (*domain.Asset, error)
}

func (s *stubAssetService) ListAssets(ctx context.Context) ([]*domain.Asset, error) {
	return s.listFn(ctx)
}
func (s *stubAssetService) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	return s.getFn(ctx, id)
}
func (s *stubAssetService) CreateAsset(ctx context.Context, in ports.AssetInput) (*domain.Asset, error) {
	return s.createFn(ctx, in)
}
func (s *stubAssetService) UpdateAsset(ctx context.Context, in ports.AssetInput) (*domain.Asset, error) {
	return s.updateFn(ctx, in)
}
func (s *stubAssetService) DeleteAsset(ctx context.Context, id string) (*domain.Asset, error) {
	return s.deleteFn(ctx, id)
}

type stubQuizService struct {
	listFn   func(ctx context.Context, in ports.ListQuizzesInput) ([]ports.QuizSummary, error)
	getFn    func(ctx context.Context, id string) (*domain.Quiz, error)
	createFn func(ctx context.Context, in ports.QuizInput) (*domain.Quiz, error)
	updateFn func(ctx context.Context, in ports.QuizInput) (*domain.Quiz, error)
	deleteFn func(ctx context.Context, id string) (*domain.Quiz, error)
}

func (s *stubQuizService) ListQuizzes(ctx context.Context, in ports.ListQuizzesInput) ([]ports.QuizSummary, error) {
	return s.listFn(ctx, in)
}
func (s *stubQuizService) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	return s.getFn(ctx, id)
}
func (s *stubQuizService) CreateQuiz(ctx context.Context, in ports.QuizInput) (*domain.Quiz, error) {
	return s.createFn(ctx, in)
}
func (s *stubQuizService) UpdateQuiz(ctx context.Context, in ports.QuizInput) (*domain.Quiz, error) {
	return s.updateFn(ctx, in)
}
func (s *stubQuizService) DeleteQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	return s.deleteFn(ctx, id)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}
