package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/services"
)

type QuizHandler struct {
	log     *logger.Logger
	quizSvc services.QuizService
}

func NewQuizHandler(log *logger.Logger, quizSvc services.QuizService) *QuizHandler {
	return &QuizHandler{
		log:     log.With("handler", "QuizHandler"),
		quizSvc: quizSvc,
	}
}

// POST /api/quizzes/submit
// Form fields: slug, answers (a JSON object of question id -> chosen answer).
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	slug := c.PostForm("slug")
	answersRaw := c.PostForm("answers")
	if slug == "" {
		RespondError(c, http.StatusBadRequest, "slug is required")
		return
	}

	answers := map[string]string{}
	if answersRaw != "" {
		if err := json.Unmarshal([]byte(answersRaw), &answers); err != nil {
			RespondError(c, http.StatusBadRequest, "answers must be a JSON object")
			return
		}
	}

	result, err := h.quizSvc.ScoreSubmission(c.Request.Context(), nil, slug, answers)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			RespondError(c, http.StatusNotFound, "Quiz not found")
		case errors.Is(err, services.ErrInvalidInput):
			RespondError(c, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("SubmitQuiz failed", "error", err, "quiz_slug", slug)
			RespondError(c, http.StatusInternalServerError, "Failed to submit quiz")
		}
		return
	}

	RespondOK(c, result)
}

// GET /api/quizzes/:slug/attempts
func (h *QuizHandler) ListAttempts(c *gin.Context) {
	slug := c.Param("slug")

	attempts, err := h.quizSvc.GetAttemptsForQuiz(c.Request.Context(), nil, slug)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			RespondError(c, http.StatusNotFound, "Quiz not found")
		case errors.Is(err, services.ErrInvalidInput):
			RespondError(c, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("ListAttempts failed", "error", err, "quiz_slug", slug)
			RespondError(c, http.StatusInternalServerError, "Failed to load attempts")
		}
		return
	}

	RespondOK(c, gin.H{"attempts": attempts})
}
