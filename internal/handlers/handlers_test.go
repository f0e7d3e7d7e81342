package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/repos"
	"github.com/eduboard/backend/internal/services"
	"github.com/eduboard/backend/internal/types"
)

// recordingInvalidator captures invalidated paths so tests can assert on the
// cache signals without a Redis instance.
type recordingInvalidator struct {
	paths []string
}

func (ri *recordingInvalidator) Invalidate(ctx context.Context, paths ...string) {
	ri.paths = append(ri.paths, paths...)
}

func (ri *recordingInvalidator) Close() error { return nil }

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	invalidator *recordingInvalidator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Course{},
		&types.CourseModule{},
		&types.Quiz{},
		&types.QuizQuestion{},
		&types.QuizAttempt{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	courseRepo := repos.NewCourseRepo(db, log)
	moduleRepo := repos.NewCourseModuleRepo(db, log)
	quizRepo := repos.NewQuizRepo(db, log)
	questionRepo := repos.NewQuizQuestionRepo(db, log)
	attemptRepo := repos.NewQuizAttemptRepo(db, log)

	courseSvc := services.NewCourseService(db, log, courseRepo, moduleRepo)
	progressSvc := services.NewProgressService(db, log, courseRepo, moduleRepo)
	quizSvc := services.NewQuizService(db, log, quizRepo, questionRepo, attemptRepo)

	invalidator := &recordingInvalidator{}

	router := gin.New()
	courseHandler := NewCourseHandler(log, courseSvc)
	progressHandler := NewProgressHandler(log, progressSvc, invalidator)
	quizHandler := NewQuizHandler(log, quizSvc)

	api := router.Group("/api")
	api.POST("/lessons/complete", progressHandler.CompleteLesson)
	api.POST("/quizzes/submit", quizHandler.SubmitQuiz)
	api.GET("/quizzes/:slug/attempts", quizHandler.ListAttempts)
	api.GET("/courses", courseHandler.ListCourses)
	api.GET("/courses/lookup", courseHandler.LookupBySlug)
	api.GET("/courses/:slug", courseHandler.GetCourse)

	return &testEnv{db: db, router: router, invalidator: invalidator}
}

func (e *testEnv) seedCourse(t *testing.T, slug string, moduleCount int) *types.Course {
	t.Helper()
	course := &types.Course{ID: uuid.New(), Slug: slug, Title: "Course " + slug}
	if err := e.db.Create(course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	for i := 0; i < moduleCount; i++ {
		module := &types.CourseModule{
			ID:       uuid.New(),
			CourseID: course.ID,
			Index:    i,
			Title:    fmt.Sprintf("Module %d", i+1),
		}
		if err := e.db.Create(module).Error; err != nil {
			t.Fatalf("seed module: %v", err)
		}
	}
	return course
}

func (e *testEnv) seedQuiz(t *testing.T, slug string, correctAnswers []string) []*types.QuizQuestion {
	t.Helper()
	quiz := &types.Quiz{ID: uuid.New(), Slug: slug, Title: "Quiz " + slug}
	if err := e.db.Create(quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	questions := make([]*types.QuizQuestion, 0, len(correctAnswers))
	for i, answer := range correctAnswers {
		q := &types.QuizQuestion{
			ID:            uuid.New(),
			QuizID:        quiz.ID,
			Index:         i,
			Prompt:        fmt.Sprintf("Question %d", i+1),
			CorrectAnswer: answer,
		}
		if err := e.db.Create(q).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		questions = append(questions, q)
	}
	return questions
}
