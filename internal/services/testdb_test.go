package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/repos"
	"github.com/eduboard/backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Course{},
		&types.CourseModule{},
		&types.Quiz{},
		&types.QuizQuestion{},
		&types.QuizAttempt{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func seedCourse(t *testing.T, db *gorm.DB, slug string, lessons, progress, moduleCount int) *types.Course {
	t.Helper()
	course := &types.Course{
		ID:       uuid.New(),
		Slug:     slug,
		Title:    "Course " + slug,
		Lessons:  lessons,
		Progress: progress,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	for i := 0; i < moduleCount; i++ {
		module := &types.CourseModule{
			ID:       uuid.New(),
			CourseID: course.ID,
			Index:    i,
			Title:    fmt.Sprintf("Module %d", i+1),
		}
		if err := db.Create(module).Error; err != nil {
			t.Fatalf("seed module: %v", err)
		}
	}
	return course
}

func seedQuiz(t *testing.T, db *gorm.DB, slug string, correctAnswers []string) (*types.Quiz, []*types.QuizQuestion) {
	t.Helper()
	quiz := &types.Quiz{
		ID:    uuid.New(),
		Slug:  slug,
		Title: "Quiz " + slug,
	}
	if err := db.Create(quiz).Error; err != nil {
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
		if err := db.Create(q).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		questions = append(questions, q)
	}
	return quiz, questions
}

type testFixture struct {
	db           *gorm.DB
	courseRepo   repos.CourseRepo
	moduleRepo   repos.CourseModuleRepo
	quizRepo     repos.QuizRepo
	questionRepo repos.QuizQuestionRepo
	attemptRepo  repos.QuizAttemptRepo
}
