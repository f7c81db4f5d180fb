package repository

import (
	"context"
	"strings"

	"guesswho/internal/cache"
	"guesswho/internal/models"
	"guesswho/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// SelfAnswerRepository defines the interface for the self-answer ledger
type SelfAnswerRepository interface {
	Create(ctx context.Context, selfAnswer *models.SelfAnswer) error
	CreateCustom(ctx context.Context, userID, questionID uint, text string) (*models.SelfAnswer, error)
	GetByUserAndQuestion(ctx context.Context, userID, questionID uint) (*models.SelfAnswer, error)
	HasAnswered(ctx context.Context, userID, answerID uint) (bool, error)
}

// selfAnswerRepository implements SelfAnswerRepository
type selfAnswerRepository struct {
	db *gorm.DB
}

// NewSelfAnswerRepository creates a new self-answer repository
func NewSelfAnswerRepository(db *gorm.DB) SelfAnswerRepository {
	return &selfAnswerRepository{db: db}
}

// Create inserts a self-answer link for an existing answer. The composite
// unique index on (user_id, question_id) rejects a second answer for the
// same question no matter how the attempts interleave; the conflict maps to
// AlreadyAnswered.
func (r *selfAnswerRepository) Create(ctx context.Context, selfAnswer *models.SelfAnswer) error {
	if err := r.db.WithContext(ctx).Create(selfAnswer).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewAlreadyAnsweredError(selfAnswer.UserID, selfAnswer.QuestionID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// CreateCustom writes a new answer under the question and links it to the
// user as their self-answer, inside one transaction. If the link fails the
// transaction rolls back so the new answer row never becomes an observable
// orphan; non-conflict link failures are reported as a partial write so the
// caller knows the sequence was aborted mid-way.
func (r *selfAnswerRepository) CreateCustom(ctx context.Context, userID, questionID uint, text string) (sa *models.SelfAnswer, err error) {
	ctx, span := observability.StartSpan(ctx, "repository.selfanswer.create_custom",
		attribute.Int("question.id", int(questionID)))
	defer func() { observability.EndSpan(span, err) }()

	selfAnswer := &models.SelfAnswer{
		UserID:     userID,
		QuestionID: questionID,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answer := models.Answer{
			QuestionID: questionID,
			Text:       strings.TrimSpace(text),
		}
		if err := tx.Create(&answer).Error; err != nil {
			return models.NewInternalError(err)
		}

		selfAnswer.AnswerID = answer.ID
		if err := tx.Create(selfAnswer).Error; err != nil {
			if isUniqueViolation(err) {
				return models.NewAlreadyAnsweredError(userID, questionID)
			}
			return models.NewPartialWriteError("custom self-answer", err)
		}

		selfAnswer.Answer = answer
		return nil
	})
	if err != nil {
		return nil, err
	}

	// A custom answer extends the question's option pool.
	cache.InvalidateQuestion(ctx, questionID)

	return selfAnswer, nil
}

// GetByUserAndQuestion returns the user's self-answer for the question, or
// nil when they have not answered. Exactly one row means answered; more than
// one is corrupt state the unique index should have made impossible, and is
// reported as an invariant violation rather than truncated to "answered".
func (r *selfAnswerRepository) GetByUserAndQuestion(ctx context.Context, userID, questionID uint) (*models.SelfAnswer, error) {
	var selfAnswers []models.SelfAnswer
	if err := r.db.WithContext(ctx).
		Preload("Answer").
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Find(&selfAnswers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	switch len(selfAnswers) {
	case 0:
		return nil, nil
	case 1:
		return &selfAnswers[0], nil
	default:
		return nil, models.NewInvariantViolationError(
			"multiple self-answers recorded for one user and question")
	}
}

// HasAnswered reports whether the user's recorded self-answer is exactly
// this answer. Used by the guess engine to derive correctness.
func (r *selfAnswerRepository) HasAnswered(ctx context.Context, userID, answerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SelfAnswer{}).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	if count > 1 {
		return false, models.NewInvariantViolationError(
			"multiple self-answer links for one user and answer")
	}
	return count == 1, nil
}
