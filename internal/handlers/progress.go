package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduboard/backend/internal/cache"
	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/services"
)

type ProgressHandler struct {
	log         *logger.Logger
	progressSvc services.ProgressService
	invalidator cache.ViewInvalidator
}

func NewProgressHandler(log *logger.Logger, progressSvc services.ProgressService, invalidator cache.ViewInvalidator) *ProgressHandler {
	return &ProgressHandler{
		log:         log.With("handler", "ProgressHandler"),
		progressSvc: progressSvc,
		invalidator: invalidator,
	}
}

// POST /api/lessons/complete
// Form fields: slug, lessonIndex (zero-based). On success the cached
// dashboard views are invalidated and the client is redirected to the course
// page. An unknown course yields an empty 204, matching the dashboard's
// fire-and-forget lesson acknowledgement.
func (h *ProgressHandler) CompleteLesson(c *gin.Context) {
	slug := c.PostForm("slug")
	indexStr := c.PostForm("lessonIndex")
	if slug == "" || indexStr == "" {
		RespondError(c, http.StatusBadRequest, "slug and lessonIndex are required")
		return
	}
	lessonIndex, err := strconv.Atoi(indexStr)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "lessonIndex must be an integer")
		return
	}

	effects, err := h.progressSvc.AdvanceProgress(c.Request.Context(), nil, slug, lessonIndex)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			RespondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotFound):
			c.Status(http.StatusNoContent)
		default:
			h.log.Error("CompleteLesson failed", "error", err, "course_slug", slug)
			RespondError(c, http.StatusInternalServerError, "Failed to update progress")
		}
		return
	}

	// Effects are executed in order; the terminal redirect follows the view
	// invalidations.
	stale := make([]string, 0, len(effects))
	redirectPath := ""
	for _, effect := range effects {
		switch effect.Kind {
		case services.EffectInvalidate:
			stale = append(stale, effect.Path)
		case services.EffectRedirect:
			redirectPath = effect.Path
		}
	}
	h.invalidator.Invalidate(c.Request.Context(), stale...)

	if redirectPath == "" {
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, redirectPath)
}
