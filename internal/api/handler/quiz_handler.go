package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/ports"
)

// QuizHandler handles HTTP requests for quizzes.
type QuizHandler struct {
	service ports.QuizService
	log     zerolog.Logger
}

func NewQuizHandler(service ports.QuizService, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{service: service, log: log}
}

// List handles GET /quiz.
//
// @Summary      List quizzes
// @Description  Returns at most limit quizzes (default 10, max 100), each with its category title as mapel.
// @Tags         quiz
// @Produce      json
// @Param        limit       query     int     false  "Maximum number of quizzes"
// @Param        categoryId  query     string  false  "Only quizzes of this category"
// @Success      200         {object}  Envelope{data=[]quizSummary}
// @Failure      404         {object}  Envelope
// @Router       /quiz [get]
func (h *QuizHandler) List(c echo.Context) error {
	// A missing or non-numeric limit selects the default.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.service.ListQuizzes(c.Request().Context(), ports.ListQuizzesInput{
		CategoryID: c.QueryParam("categoryId"),
		Limit:      limit,
	})
	if err != nil {
		return respondListError(c, h.log, resQuiz, err)
	}
	return success(c, http.StatusOK, toQuizSummaries(items))
}

// Get handles GET /quiz/:id.
//
// @Summary      Get a quiz
// @Tags         quiz
// @Produce      json
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  Envelope{data=quizDetail}
// @Failure      404  {object}  Envelope
// @Router       /quiz/{id} [get]
func (h *QuizHandler) Get(c echo.Context) error {
	q, err := h.service.GetQuiz(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, "get", resQuiz, err)
	}
	return success(c, http.StatusOK, toQuizDetail(q))
}

// Create handles POST /quiz.
//
// @Summary      Create a quiz
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "Replays the first response for a repeated key"
// @Param        body             body      quizRequest  true   "Quiz"
// @Success      201              {object}  Envelope{data=quizWritten}
// @Failure      400              {object}  Envelope
// @Router       /quiz [post]
func (h *QuizHandler) Create(c echo.Context) error {
	var req quizRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	created, err := h.service.CreateQuiz(c.Request().Context(), toQuizInput("", req))
	if err != nil {
		return respondError(c, h.log, "create", resQuiz, err)
	}
	return success(c, http.StatusCreated, quizWritten{Question: created.Question})
}

// Update handles PUT /quiz/:id.
//
// @Summary      Update a quiz
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Quiz id"
// @Param        body  body      quizRequest  true  "Quiz"
// @Success      200   {object}  Envelope{data=quizWritten}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /quiz/{id} [put]
func (h *QuizHandler) Update(c echo.Context) error {
	var req quizRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.service.UpdateQuiz(c.Request().Context(), toQuizInput(c.Param("id"), req))
	if err != nil {
		return respondError(c, h.log, "update", resQuiz, err)
	}
	return success(c, http.StatusOK, quizWritten{Question: updated.Question})
}

// Delete handles DELETE /quiz/:id.
//
// @Summary      Delete a quiz
// @Tags         quiz
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Quiz id"
// @Success      200  {object}  Envelope{data=quizDeleted}
// @Failure      404  {object}  Envelope
// @Router       /quiz/{id} [delete]
func (h *QuizHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteQuiz(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDeleteError(c, h.log, resQuiz, err)
	}
	return success(c, http.StatusOK, quizDeleted{ID: deleted.ID, Question: deleted.Question})
}

func toQuizInput(id string, req quizRequest) ports.QuizInput {
	return ports.QuizInput{
		ID:            id,
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		Answers:       req.Answers,
		CategoryID:    req.CategoryID,
	}
}
