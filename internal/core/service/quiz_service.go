package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
	"github.com/zuperior/content-api/internal/pkg/metrics"
)

const (
	resourceQuiz = "quiz"

	defaultQuizLimit = 10
	maxQuizLimit     = 100
)

type QuizService struct {
	repo   ports.QuizRepository
	logger zerolog.Logger
}

func NewQuizService(repo ports.QuizRepository, logger zerolog.Logger) *QuizService {
	return &QuizService{repo: repo, logger: logger}
}

// ListQuizzes returns at most input.Limit quizzes (default 10, capped at 100),
// each joined with its category title.
func (s *QuizService) ListQuizzes(ctx context.Context, input ports.ListQuizzesInput) ([]ports.QuizSummary, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultQuizLimit
	}
	if limit > maxQuizLimit {
		limit = maxQuizLimit
	}

	return s.repo.List(ctx, ports.QuizFilter{
		CategoryID: input.CategoryID,
		Limit:      limit,
	})
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *QuizService) CreateQuiz(ctx context.Context, input ports.QuizInput) (*domain.Quiz, error) {
	created, err := s.repo.Create(ctx, toQuiz(input))
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", input.CategoryID).Msg("failed to create quiz")
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceQuiz, "create").Inc()
	s.logger.Info().Str("quiz_id", created.ID).Str("category_id", created.CategoryID).Msg("quiz created")
	return created, nil
}

func (s *QuizService) UpdateQuiz(ctx context.Context, input ports.QuizInput) (*domain.Quiz, error) {
	q := toQuiz(input)
	q.ID = input.ID

	updated, err := s.repo.Update(ctx, q)
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceQuiz, "update").Inc()
	s.logger.Info().Str("quiz_id", updated.ID).Msg("quiz updated")
	return updated, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ResourceWritesTotal.WithLabelValues(resourceQuiz, "delete").Inc()
	s.logger.Info().Str("quiz_id", id).Msg("quiz deleted")
	return deleted, nil
}

func toQuiz(input ports.QuizInput) *domain.Quiz {
	answers := make([]string, len(input.Answers))
	copy(answers, input.Answers)
	return &domain.Quiz{
		Question:      input.Question,
		CorrectAnswer: input.CorrectAnswer,
		Answers:       answers,
		CategoryID:    input.CategoryID,
	}
}
