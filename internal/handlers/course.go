package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/services"
)

type CourseHandler struct {
	log       *logger.Logger
	courseSvc services.CourseService
}

func NewCourseHandler(log *logger.Logger, courseSvc services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:       log.With("handler", "CourseHandler"),
		courseSvc: courseSvc,
	}
}

// GET /api/courses/lookup?slug=
func (h *CourseHandler) LookupBySlug(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		RespondError(c, http.StatusBadRequest, "slug is required")
		return
	}

	course, err := h.courseSvc.LookupBySlug(c.Request.Context(), nil, slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "Course not found")
			return
		}
		h.log.Error("LookupBySlug failed", "error", err, "course_slug", slug)
		RespondError(c, http.StatusInternalServerError, "Failed to look up course")
		return
	}

	RespondOK(c, gin.H{"courseId": course.ID})
}

// GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.ListCourses(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("ListCourses failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to list courses")
		return
	}
	RespondOK(c, gin.H{"courses": courses})
}

// GET /api/courses/:slug
func (h *CourseHandler) GetCourse(c *gin.Context) {
	slug := c.Param("slug")

	course, modules, err := h.courseSvc.GetCourseDetail(c.Request.Context(), nil, slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "Course not found")
			return
		}
		h.log.Error("GetCourse failed", "error", err, "course_slug", slug)
		RespondError(c, http.StatusInternalServerError, "Failed to load course")
		return
	}

	RespondOK(c, gin.H{"course": course, "modules": modules})
}
