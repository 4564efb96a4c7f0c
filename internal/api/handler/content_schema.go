package handler

import (
	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
)

// --- Requests ---
// Multipart resources carry both form and json tags so either encoding binds.

type categoryRequest struct {
	Title string `json:"title" form:"title" validate:"required"`
}

type articleRequest struct {
	Title      string `json:"title"       form:"title"       validate:"required"`
	Body       string `json:"body"        form:"body"        validate:"required,json"`
	CategoryID string `json:"category_id" form:"category_id" validate:"required,mongodb"`
}

type assetRequest struct {
	Title      string `json:"title"       form:"title"       validate:"required"`
	AssetURL   string `json:"asset_url"   form:"asset_url"   validate:"required,url"`
	CategoryID string `json:"category_id" form:"category_id" validate:"required,mongodb"`
}

type quizRequest struct {
	Question      string   `json:"question"       validate:"required"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Answers       []string `json:"answers"        validate:"required,min=1,dive,required"`
	CategoryID    string   `json:"category_id"    validate:"required,mongodb"`
}

// --- Responses ---

type categoryItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type categoryCreated struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type articleSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type articleDetail struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Body      any    `json:"body"`
}

type articleWritten struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

type articleDeleted struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

type assetItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type assetDetail struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	AssetURL string `json:"asset_url"`
}

type assetCreated struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type quizSummary struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Answers       []string `json:"answers"`
	Mapel         string   `json:"mapel"`
}

type quizDetail struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Answers       []string `json:"answers"`
}

type quizWritten struct {
	Question string `json:"question"`
}

type quizDeleted struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// --- Mappers ---

func toCategoryItem(c *domain.Category) categoryItem {
	return categoryItem{ID: c.ID, Title: c.Title, Icon: c.Icon}
}

func toCategoryItems(cs []*domain.Category) []categoryItem {
	out := make([]categoryItem, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategoryItem(c))
	}
	return out
}

func toArticleSummaries(as []*domain.Article) []articleSummary {
	out := make([]articleSummary, 0, len(as))
	for _, a := range as {
		out = append(out, articleSummary{ID: a.ID, Title: a.Title})
	}
	return out
}

func toAssetItem(a *domain.Asset) assetItem {
	return assetItem{ID: a.ID, Title: a.Title, Icon: a.Icon}
}

func toAssetItems(as []*domain.Asset) []assetItem {
	out := make([]assetItem, 0, len(as))
	for _, a := range as {
		out = append(out, toAssetItem(a))
	}
	return out
}

func toAssetDetail(a *domain.Asset) assetDetail {
	return assetDetail{ID: a.ID, Title: a.Title, Icon: a.Icon, AssetURL: a.AssetURL}
}

func toQuizSummaries(qs []ports.QuizSummary) []quizSummary {
	out := make([]quizSummary, 0, len(qs))
	for _, q := range qs {
		out = append(out, quizSummary{
			ID:            q.Quiz.ID,
			Question:      q.Quiz.Question,
			CorrectAnswer: q.Quiz.CorrectAnswer,
			Answers:       nonNilAnswers(q.Quiz.Answers),
			Mapel:         q.CategoryTitle,
		})
	}
	return out
}

func toQuizDetail(q *domain.Quiz) quizDetail {
	return quizDetail{ID: q.ID, Question: q.Question, CorrectAnswer: q.CorrectAnswer, Answers: nonNilAnswers(q.Answers)}
}

func nonNilAnswers(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}
