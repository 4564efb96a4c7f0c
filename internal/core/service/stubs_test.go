package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Uploader
// ---------------------------------------------------------------------------

type uploadCall struct {
	fileName    string
	contentType string
	content     string
}

type stubUploader struct {
	calls []uploadCall
	err   error
}

func (u *stubUploader) Upload(_ context.Context, fileName, contentType string, content io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	b, _ := io.ReadAll(content)
	u.calls = append(u.calls, uploadCall{fileName: fileName, contentType: contentType, content: string(b)})
	return "https://ik.example.com/" + fileName, nil
}

func pngImage(content string) ports.ImageInput {
	return ports.ImageInput{
		Subtype:     "png",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

// ---------------------------------------------------------------------------
// In-memory repositories
// ---------------------------------------------------------------------------

type stubCategoryRepo struct {
	items  map[string]*domain.Category
	nextID int
	err    error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{items: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Category, 0, len(r.items))
	for _, c := range r.items {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("cat-%d", r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if _, ok := r.items[c.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	r.items[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.items, id)
	return c, nil
}

// categoryExists mirrors the store-side reference check of the real repositories.
type categoryExists map[string]bool

func (ce categoryExists) check(id string) error {
	if !ce[id] {
		return domain.ErrCategoryNotFound
	}
	return nil
}

type stubArticleRepo struct {
	items      map[string]*domain.Article
	categories categoryExists
	nextID     int
}

func newStubArticleRepo(categoryIDs ...string) *stubArticleRepo {
	ce := categoryExists{}
	for _, id := range categoryIDs {
		ce[id] = true
	}
	return &stubArticleRepo{items: make(map[string]*domain.Article), categories: ce}
}

func (r *stubArticleRepo) List(_ context.Context, categoryID string) ([]*domain.Article, error) {
	out := []*domain.Article{}
	for _, a := range r.items {
		if categoryID != "" && a.CategoryID != categoryID {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArticleRepo) Create(_ context.Context, a *domain.Article) (*domain.Article, error) {
	if err := r.categories.check(a.CategoryID); err != nil {
		return nil, err
	}
	r.nextID++
	clone := *a
	clone.ID = fmt.Sprintf("art-%d", r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubArticleRepo) Update(_ context.Context, a *domain.Article) (*domain.Article, error) {
	if _, ok := r.items[a.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	if err := r.categories.check(a.CategoryID); err != nil {
		return nil, err
	}
	clone := *a
	r.items[a.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.items, id)
	return a, nil
}

type stubAssetRepo struct {
	items      map[string]*domain.Asset
	categories categoryExists
	nextID     int
}

func newStubAssetRepo(categoryIDs ...string) *stubAssetRepo {
	ce := categoryExists{}
	for _, id := range categoryIDs {
		ce[id] = true
	}
	return &stubAssetRepo{items: make(map[string]*domain.Asset), categories: ce}
}

func (r *stubAssetRepo) List(_ context.Context) ([]*domain.Asset, error) {
	out := []*domain.Asset{}
	for _, a := range r.items {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id string) (*domain.Asset, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssetRepo) Create(_ context.Context, a *domain.Asset) (*domain.Asset, error) {
	if err := r.categories.check(a.CategoryID); err != nil {
		return nil, err
	}
	r.nextID++
	clone := *a
	clone.ID = fmt.Sprintf("asset-%d", r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAssetRepo) Update(_ context.Context, a *domain.Asset) (*domain.Asset, error) {
	if _, ok := r.items[a.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	if err := r.categories.check(a.CategoryID); err != nil {
		return nil, err
	}
	clone := *a
	r.items[a.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAssetRepo) Delete(_ context.Context, id string) (*domain.Asset, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.items, id)
	return a, nil
}

type stubQuizRepo struct {
	items      map[string]*domain.Quiz
	order      []string
	categories map[string]string // id -> title
	lastFilter ports.QuizFilter
	nextID     int
}

func newStubQuizRepo(categories map[string]string) *stubQuizRepo {
	return &stubQuizRepo{items: make(map[string]*domain.Quiz), categories: categories}
}

func (r *stubQuizRepo) List(_ context.Context, f ports.QuizFilter) ([]ports.QuizSummary, error) {
	r.lastFilter = f
	out := []ports.QuizSummary{}
	for _, id := range r.order {
		q, ok := r.items[id]
		if !ok {
			continue
		}
		if f.CategoryID != "" && q.CategoryID != f.CategoryID {
			continue
		}
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
		out = append(out, ports.QuizSummary{Quiz: *q, CategoryTitle: r.categories[q.CategoryID]})
	}
	return out, nil
}

func (r *stubQuizRepo) FindByID(_ context.Context, id string) (*domain.Quiz, error) {
	q, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuizRepo) Create(_ context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	if _, ok := r.categories[q.CategoryID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	r.nextID++
	clone := *q
	clone.ID = fmt.Sprintf("quiz-%d", r.nextID)
	r.items[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubQuizRepo) Update(_ context.Context, q *domain.Quiz) (*domain.Quiz, error) {
	if _, ok := r.items[q.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	if _, ok := r.categories[q.CategoryID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *q
	r.items[q.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubQuizRepo) Delete(_ context.Context, id string) (*domain.Quiz, error) {
	q, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.items, id)
	return q, nil
}
