package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/eduboard/backend/internal/logger"
	"github.com/eduboard/backend/internal/repos"
	"github.com/eduboard/backend/internal/scoring"
	"github.com/eduboard/backend/internal/types"
)

type SubmissionResult struct {
	AttemptID      uuid.UUID `json:"attemptId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     int       `json:"percentage"`
}

type QuizService interface {
	// ScoreSubmission grades the submitted answers against the quiz's stored
	// answer keys and appends a new attempt row. Answers are keyed by question
	// id; comparison is strict string equality and unanswered questions count
	// as incorrect. Resubmissions always create a fresh attempt.
	ScoreSubmission(ctx context.Context, tx *gorm.DB, quizSlug string, answers map[string]string) (*SubmissionResult, error)
	GetAttemptsForQuiz(ctx context.Context, tx *gorm.DB, quizSlug string) ([]*types.QuizAttempt, error)
}

type quizService struct {
	db           *gorm.DB
	log          *logger.Logger
	quizRepo     repos.QuizRepo
	questionRepo repos.QuizQuestionRepo
	attemptRepo  repos.QuizAttemptRepo
}

func NewQuizService(
	db *gorm.DB,
	baseLog *logger.Logger,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuizQuestionRepo,
	attemptRepo repos.QuizAttemptRepo,
) QuizService {
	serviceLog := baseLog.With("service", "QuizService")
	return &quizService{
		db:           db,
		log:          serviceLog,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
	}
}

func (qs *quizService) ScoreSubmission(ctx context.Context, tx *gorm.DB, quizSlug string, answers map[string]string) (*SubmissionResult, error) {
	if quizSlug == "" {
		return nil, fmt.Errorf("quiz slug is required: %w", ErrInvalidInput)
	}

	transaction := tx
	if transaction == nil {
		transaction = qs.db
	}

	quizzes, err := qs.quizRepo.GetBySlugs(ctx, transaction, []string{quizSlug})
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if len(quizzes) == 0 {
		return nil, fmt.Errorf("quiz %q: %w", quizSlug, ErrNotFound)
	}
	quiz := quizzes[0]

	questions, err := qs.questionRepo.GetByQuizIDs(ctx, transaction, []uuid.UUID{quiz.ID})
	if err != nil {
		return nil, fmt.Errorf("load quiz questions: %w", err)
	}

	score := 0
	for _, q := range questions {
		if submitted, ok := answers[q.ID.String()]; ok && submitted == q.CorrectAnswer {
			score++
		}
	}

	totalQuestions := len(questions)
	percentage := scoring.Percent(score, totalQuestions)
	if totalQuestions == 0 {
		qs.log.Warn("Quiz has no questions, recording empty attempt", "quiz_slug", quizSlug)
	}

	snapshot, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answer snapshot: %w", err)
	}

	attempt := &types.QuizAttempt{
		ID:             uuid.New(),
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: totalQuestions,
		Percentage:     percentage,
		Answers:        datatypes.JSON(snapshot),
	}
	if _, err := qs.attemptRepo.Create(ctx, transaction, []*types.QuizAttempt{attempt}); err != nil {
		qs.log.Error("ScoreSubmission failed to persist attempt", "error", err, "quiz_slug", quizSlug)
		return nil, fmt.Errorf("create quiz attempt: %w", err)
	}

	return &SubmissionResult{
		AttemptID:      attempt.ID,
		Score:          score,
		TotalQuestions: totalQuestions,
		Percentage:     percentage,
	}, nil
}

func (qs *quizService) GetAttemptsForQuiz(ctx context.Context, tx *gorm.DB, quizSlug string) ([]*types.QuizAttempt, error) {
	if quizSlug == "" {
		return nil, fmt.Errorf("quiz slug is required: %w", ErrInvalidInput)
	}

	transaction := tx
	if transaction == nil {
		transaction = qs.db
	}

	quizzes, err := qs.quizRepo.GetBySlugs(ctx, transaction, []string{quizSlug})
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if len(quizzes) == 0 {
		return nil, fmt.Errorf("quiz %q: %w", quizSlug, ErrNotFound)
	}

	attempts, err := qs.attemptRepo.GetByQuizIDs(ctx, transaction, []uuid.UUID{quizzes[0].ID})
	if err != nil {
		return nil, fmt.Errorf("load quiz attempts: %w", err)
	}
	return attempts, nil
}
