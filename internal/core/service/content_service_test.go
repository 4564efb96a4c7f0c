package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Image naming
// ---------------------------------------------------------------------------

func TestImageFileName(t *testing.T) {
	cases := []struct {
		title, subtype, want string
	}{
		{"Solar System", "png", "solar_system.png"},
		{"  Hello--World ", "jpeg", "hello_world.jpeg"},
		{"!!!", "jpg", "image.jpg"},
	}
	for _, tc := range cases {
		if got := imageFileName(tc.title, tc.subtype); got != tc.want {
			t.Errorf("imageFileName(%q, %q) = %q, want %q", tc.title, tc.subtype, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func TestCategoryService_Create_UploadsThenStores(t *testing.T) {
	repo := newStubCategoryRepo()
	up := &stubUploader{}
	svc := NewCategoryService(repo, up, discardLogger)

	created, err := svc.CreateCategory(context.Background(), ports.CategoryInput{
		Title: "Computer Science",
		Icon:  pngImage("PNGDATA"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(up.calls) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(up.calls))
	}
	call := up.calls[0]
	if call.fileName != "computer_science.png" {
		t.Errorf("upload file name: got %q", call.fileName)
	}
	if call.contentType != "image/png" || call.content != "PNGDATA" {
		t.Errorf("upload payload not forwarded: %+v", call)
	}
	if created.Title != "computer science" {
		t.Errorf("title must be lower-cased, got %q", created.Title)
	}
	if created.Icon != "https://ik.example.com/computer_science.png" {
		t.Errorf("icon must be the uploaded URL, got %q", created.Icon)
	}
	if _, ok := repo.items[created.ID]; !ok {
		t.Errorf("category not stored")
	}
}

func TestCategoryService_Create_UploadFailureSkipsStore(t *testing.T) {
	repo := newStubCategoryRepo()
	up := &stubUploader{err: errors.New("503 from host")}
	svc := NewCategoryService(repo, up, discardLogger)

	_, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Title: "Math", Icon: pngImage("x")})
	if !errors.Is(err, domain.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("store must not be written after a failed upload")
	}
}

func TestCategoryService_Create_StoreErrorPropagates(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.err = errors.New("write concern timeout")
	up := &stubUploader{}
	svc := NewCategoryService(repo, up, discardLogger)

	_, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Title: "Math", Icon: pngImage("x")})
	if err == nil || err.Error() != "write concern timeout" {
		t.Fatalf("expected store error, got %v", err)
	}
	// The image stays on the host: there is no compensating delete.
	if len(up.calls) != 1 {
		t.Fatalf("expected the upload to have happened, got %d calls", len(up.calls))
	}
}

func TestCategoryService_Update_LowercasesTitle(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.items["cat-1"] = &domain.Category{ID: "cat-1", Title: "old", Icon: "old.png"}
	svc := NewCategoryService(repo, &stubUploader{}, discardLogger)

	updated, err := svc.UpdateCategory(context.Background(), ports.CategoryInput{
		ID:    "cat-1",
		Title: "New TITLE",
		Icon:  pngImage("x"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "new title" || updated.Icon != "https://ik.example.com/new_title.png" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), &stubUploader{}, discardLogger)

	_, err := svc.UpdateCategory(context.Background(), ports.CategoryInput{ID: "missing", Title: "x", Icon: pngImage("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryService_Delete(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.items["cat-1"] = &domain.Category{ID: "cat-1", Title: "physics"}
	svc := NewCategoryService(repo, &stubUploader{}, discardLogger)

	deleted, err := svc.DeleteCategory(context.Background(), "cat-1")
	if err != nil || deleted.Title != "physics" {
		t.Fatalf("unexpected delete result: %+v, %v", deleted, err)
	}
	if _, err := svc.DeleteCategory(context.Background(), "cat-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Articles
// ---------------------------------------------------------------------------

func TestArticleService_Create_ParsesBody(t *testing.T) {
	repo := newStubArticleRepo("cat-1")
	up := &stubUploader{}
	svc := NewArticleService(repo, up, discardLogger)

	created, err := svc.CreateArticle(context.Background(), ports.ArticleInput{
		Title:      "Intro To HTML",
		Body:       `{"blocks":[{"type":"paragraph","text":"hello"}]}`,
		CategoryID: "cat-1",
		Thumbnail:  pngImage("img"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, ok := created.Body.(map[string]any)
	if !ok {
		t.Fatalf("body must be decoded into a document, got %T", created.Body)
	}
	if _, ok := body["blocks"].([]any); !ok {
		t.Fatalf("body blocks missing: %+v", body)
	}
	if created.Title != "intro to html" {
		t.Errorf("title must be lower-cased, got %q", created.Title)
	}
	if up.calls[0].fileName != "intro_to_html.png" {
		t.Errorf("unexpected upload name %q", up.calls[0].fileName)
	}
}

func TestArticleService_InvalidBodyRejectedBeforeUpload(t *testing.T) {
	up := &stubUploader{}
	svc := NewArticleService(newStubArticleRepo("cat-1"), up, discardLogger)

	for _, op := range []string{"create", "update"} {
		input := ports.ArticleInput{ID: "art-1", Title: "t", Body: "{not json", CategoryID: "cat-1", Thumbnail: pngImage("x")}
		var err error
		if op == "create" {
			_, err = svc.CreateArticle(context.Background(), input)
		} else {
			_, err = svc.UpdateArticle(context.Background(), input)
		}
		if !errors.Is(err, domain.ErrInvalidBody) {
			t.Fatalf("%s: expected ErrInvalidBody, got %v", op, err)
		}
	}
	if len(up.calls) != 0 {
		t.Fatalf("no upload expected for an invalid body, got %d", len(up.calls))
	}
}

func TestArticleService_Create_DanglingCategory(t *testing.T) {
	svc := NewArticleService(newStubArticleRepo(), &stubUploader{}, discardLogger)

	_, err := svc.CreateArticle(context.Background(), ports.ArticleInput{
		Title: "t", Body: `"plain"`, CategoryID: "nope", Thumbnail: pngImage("x"),
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestArticleService_Update_ParsesBodyToo(t *testing.T) {
	repo := newStubArticleRepo("cat-1")
	repo.items["art-1"] = &domain.Article{ID: "art-1", Title: "old", CategoryID: "cat-1"}
	svc := NewArticleService(repo, &stubUploader{}, discardLogger)

	updated, err := svc.UpdateArticle(context.Background(), ports.ArticleInput{
		ID: "art-1", Title: "New", Body: `[1,2,3]`, CategoryID: "cat-1", Thumbnail: pngImage("x"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := updated.Body.([]any); !ok {
		t.Fatalf("update must store the decoded body, got %T", updated.Body)
	}
	if updated.ID != "art-1" {
		t.Fatalf("expected id art-1, got %q", updated.ID)
	}
}

func TestArticleService_List_FiltersByCategory(t *testing.T) {
	repo := newStubArticleRepo("cat-1", "cat-2")
	repo.items["a"] = &domain.Article{ID: "a", CategoryID: "cat-1"}
	repo.items["b"] = &domain.Article{ID: "b", CategoryID: "cat-2"}
	svc := NewArticleService(repo, &stubUploader{}, discardLogger)

	all, _ := svc.ListArticles(context.Background(), "")
	if len(all) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(all))
	}
	scoped, _ := svc.ListArticles(context.Background(), "cat-2")
	if len(scoped) != 1 || scoped[0].ID != "b" {
		t.Fatalf("unexpected scoped list: %+v", scoped)
	}
	none, err := svc.ListArticles(context.Background(), "cat-9")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %v, %v", none, err)
	}
}

// ---------------------------------------------------------------------------
// Assets
// ---------------------------------------------------------------------------

func TestAssetService_CreateUpdateDelete(t *testing.T) {
	repo := newStubAssetRepo("cat-1")
	up := &stubUploader{}
	svc := NewAssetService(repo, up, discardLogger)

	created, err := svc.CreateAsset(context.Background(), ports.AssetInput{
		Title: "Human Heart", AssetURL: "https://models.example.com/heart.glb", CategoryID: "cat-1", Icon: pngImage("x"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "human heart" || created.AssetURL != "https://models.example.com/heart.glb" {
		t.Fatalf("unexpected asset: %+v", created)
	}

	updated, err := svc.UpdateAsset(context.Background(), ports.AssetInput{
		ID: created.ID, Title: "Heart V2", AssetURL: "https://models.example.com/heart2.glb", CategoryID: "cat-1", Icon: pngImage("y"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Icon != "https://ik.example.com/heart_v2.png" {
		t.Fatalf("unexpected icon after update: %q", updated.Icon)
	}

	if _, err := svc.DeleteAsset(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetAsset(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestAssetService_Update_DanglingCategory(t *testing.T) {
	repo := newStubAssetRepo("cat-1")
	repo.items["asset-1"] = &domain.Asset{ID: "asset-1", CategoryID: "cat-1"}
	svc := NewAssetService(repo, &stubUploader{}, discardLogger)

	_, err := svc.UpdateAsset(context.Background(), ports.AssetInput{
		ID: "asset-1", Title: "x", AssetURL: "https://a.example.com/x", CategoryID: "cat-9", Icon: pngImage("x"),
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Quizzes
// ---------------------------------------------------------------------------

func seedQuizzes(t *testing.T, svc *QuizService, categoryID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.CreateQuiz(context.Background(), ports.QuizInput{
			Question:      fmt.Sprintf("question %d", i),
			CorrectAnswer: "yes",
			Answers:       []string{"yes", "no"},
			CategoryID:    categoryID,
		})
		if err != nil {
			t.Fatalf("seed quiz %d: %v", i, err)
		}
	}
}

func TestQuizService_List_DefaultLimit(t *testing.T) {
	repo := newStubQuizRepo(map[string]string{"cat-1": "programming"})
	svc := NewQuizService(repo, discardLogger)
	seedQuizzes(t, svc, "cat-1", 15)

	items, err := svc.ListQuizzes(context.Background(), ports.ListQuizzesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != defaultQuizLimit {
		t.Fatalf("expected limit %d, got %d", defaultQuizLimit, repo.lastFilter.Limit)
	}
	if len(items) != 10 {
		t.Fatalf("expected 10 quizzes, got %d", len(items))
	}
	if items[0].CategoryTitle != "programming" {
		t.Fatalf("expected category title, got %q", items[0].CategoryTitle)
	}
}

func TestQuizService_List_LimitBounds(t *testing.T) {
	repo := newStubQuizRepo(map[string]string{"cat-1": "math"})
	svc := NewQuizService(repo, discardLogger)

	cases := map[int]int{-3: defaultQuizLimit, 0: defaultQuizLimit, 5: 5, 100: 100, 5000: maxQuizLimit}
	for in, want := range cases {
		_, _ = svc.ListQuizzes(context.Background(), ports.ListQuizzesInput{Limit: in, CategoryID: "cat-1"})
		if repo.lastFilter.Limit != want {
			t.Errorf("limit %d: expected %d, got %d", in, want, repo.lastFilter.Limit)
		}
		if repo.lastFilter.CategoryID != "cat-1" {
			t.Errorf("category filter not forwarded")
		}
	}
}

func TestQuizService_Create_CopiesAnswers(t *testing.T) {
	repo := newStubQuizRepo(map[string]string{"cat-1": "math"})
	svc := NewQuizService(repo, discardLogger)

	answers := []string{"2", "3", "4"}
	created, err := svc.CreateQuiz(context.Background(), ports.QuizInput{
		Question: "1+1?", CorrectAnswer: "2", Answers: answers, CategoryID: "cat-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	answers[0] = "mutated"
	if repo.items[created.ID].Answers[0] != "2" {
		t.Fatalf("stored answers must not alias the input slice")
	}
}

func TestQuizService_Create_InvalidCategory(t *testing.T) {
	svc := NewQuizService(newStubQuizRepo(map[string]string{}), discardLogger)

	_, err := svc.CreateQuiz(context.Background(), ports.QuizInput{Question: "q", CorrectAnswer: "a", Answers: []string{"a"}, CategoryID: "x"})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestQuizService_UpdateAndDelete(t *testing.T) {
	repo := newStubQuizRepo(map[string]string{"cat-1": "math"})
	svc := NewQuizService(repo, discardLogger)
	seedQuizzes(t, svc, "cat-1", 1)

	updated, err := svc.UpdateQuiz(context.Background(), ports.QuizInput{
		ID: "quiz-1", Question: "changed?", CorrectAnswer: "no", Answers: []string{"yes", "no"}, CategoryID: "cat-1",
	})
	if err != nil || updated.Question != "changed?" {
		t.Fatalf("unexpected update: %+v, %v", updated, err)
	}

	if _, err := svc.UpdateQuiz(context.Background(), ports.QuizInput{ID: "quiz-9", CategoryID: "cat-1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	deleted, err := svc.DeleteQuiz(context.Background(), "quiz-1")
	if err != nil || deleted.ID != "quiz-1" {
		t.Fatalf("unexpected delete: %+v, %v", deleted, err)
	}
}
