package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/repos"
	"github.com/eduboard/backend/internal/types"
)

type CourseService interface {
	LookupBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Course, error)
	ListCourses(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	GetCourseDetail(ctx context.Context, tx *gorm.DB, slug string) (*types.Course, []*types.CourseModule, error)
}

type courseService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
	moduleRepo repos.CourseModuleRepo
}

func NewCourseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	moduleRepo repos.CourseModuleRepo,
) CourseService {
	serviceLog := baseLog.With("service", "CourseService")
	return &courseService{
		db:         db,
		log:        serviceLog,
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
	}
}

func (cs *courseService) LookupBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Course, error) {
	if slug == "" {
		return nil, fmt.Errorf("course slug is required: %w", ErrInvalidInput)
	}

	transaction := tx
	if transaction == nil {
		transaction = cs.db
	}

	courses, err := cs.courseRepo.GetBySlugs(ctx, transaction, []string{slug})
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("course %q: %w", slug, ErrNotFound)
	}
	return courses[0], nil
}

func (cs *courseService) ListCourses(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cs.db
	}

	courses, err := cs.courseRepo.GetAll(ctx, transaction)
	if err != nil {
		cs.log.Error("ListCourses failed", "error", err)
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (cs *courseService) GetCourseDetail(ctx context.Context, tx *gorm.DB, slug string) (*types.Course, []*types.CourseModule, error) {
	course, err := cs.LookupBySlug(ctx, tx, slug)
	if err != nil {
		return nil, nil, err
	}

	transaction := tx
	if transaction == nil {
		transaction = cs.db
	}

	modules, err := cs.moduleRepo.GetByCourseIDs(ctx, transaction, []uuid.UUID{course.ID})
	if err != nil {
		return nil, nil, fmt.Errorf("load course modules: %w", err)
	}
	return course, modules, nil
}
