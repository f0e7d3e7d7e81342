package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/repos"
	"github.com/eduboard/backend/internal/scoring"
)

type EffectKind string

const (
	EffectInvalidate EffectKind = "invalidate"
	EffectRedirect   EffectKind = "redirect"
)

// Effect is a post-commit instruction for the calling layer: invalidate a
// cached view, or redirect the client. Effects are ordered; a redirect is
// always last.
type Effect struct {
	Kind EffectKind
	Path string
}

type ProgressService interface {
	// AdvanceProgress recomputes and persists the completion percentage of a
	// course after the lesson at lessonIndex (zero-based) was finished. The
	// stored progress never decreases: the write is conditional on the new
	// value being greater, so a stale or concurrent call cannot move a course
	// backwards.
	AdvanceProgress(ctx context.Context, tx *gorm.DB, courseSlug string, lessonIndex int) ([]Effect, error)
}

type progressService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
	moduleRepo repos.CourseModuleRepo
}

func NewProgressService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	moduleRepo repos.CourseModuleRepo,
) ProgressService {
	serviceLog := baseLog.With("service", "ProgressService")
	return &progressService{
		db:         db,
		log:        serviceLog,
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
	}
}

func (ps *progressService) AdvanceProgress(ctx context.Context, tx *gorm.DB, courseSlug string, lessonIndex int) ([]Effect, error) {
	if courseSlug == "" {
		return nil, fmt.Errorf("course slug is required: %w", ErrInvalidInput)
	}
	if lessonIndex < 0 {
		return nil, fmt.Errorf("lesson index %d is negative: %w", lessonIndex, ErrInvalidInput)
	}

	transaction := tx
	if transaction == nil {
		transaction = ps.db
	}

	courses, err := ps.courseRepo.GetBySlugs(ctx, transaction, []string{courseSlug})
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("course %q: %w", courseSlug, ErrNotFound)
	}
	course := courses[0]

	moduleCount, err := ps.moduleRepo.CountByCourseID(ctx, transaction, course.ID)
	if err != nil {
		return nil, fmt.Errorf("count course modules: %w", err)
	}

	// Module rows are authoritative when they exist; the denormalized lessons
	// column is the fallback, floored to 1 to keep the percentage defined.
	totalLessons := int(moduleCount)
	if totalLessons == 0 {
		totalLessons = course.Lessons
	}
	if totalLessons <= 0 {
		totalLessons = 1
	}

	completedLessons := scoring.Clamp(lessonIndex+1, 1, totalLessons)
	progress := scoring.Percent(completedLessons, totalLessons)

	updated, err := ps.courseRepo.UpdateProgressIfGreater(ctx, transaction, course.ID, progress)
	if err != nil {
		return nil, fmt.Errorf("persist course progress: %w", err)
	}
	if !updated {
		ps.log.Debug("Stored progress already at or above computed value, write skipped",
			"course_slug", courseSlug, "computed", progress, "stored", course.Progress)
	}

	coursePath := fmt.Sprintf("/dashboard/courses/%s", courseSlug)
	effects := []Effect{
		{Kind: EffectInvalidate, Path: "/dashboard"},
		{Kind: EffectInvalidate, Path: "/dashboard/courses"},
		{Kind: EffectInvalidate, Path: coursePath},
		{Kind: EffectInvalidate, Path: fmt.Sprintf("%s/lessons/%d", coursePath, lessonIndex+1)},
		{Kind: EffectRedirect, Path: coursePath},
	}
	return effects, nil
}
