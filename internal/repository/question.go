package repository

import (
	"context"
	"errors"
	"strings"

	"guesswho/internal/cache"
	"guesswho/internal/models"
	"guesswho/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// QuestionRepository defines the interface for question catalog data operations
type QuestionRepository interface {
	Create(ctx context.Context, text string, options []string) (*models.Question, error)
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	GetRandom(ctx context.Context, n int) ([]models.Question, error)
	GetAnswer(ctx context.Context, answerID uint) (*models.Answer, error)
	GetAnswers(ctx context.Context, questionID uint) ([]models.Answer, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsTitle(ctx context.Context, text string) (bool, error)
	AnswerBelongsTo(ctx context.Context, questionID, answerID uint) (bool, error)
}

// questionRepository implements QuestionRepository
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create persists a question together with its predefined options in one
// transaction, so a failure on either write leaves no split state behind.
// A title collision surfaces as DuplicateQuestion via the unique index on
// questions.text.
func (r *questionRepository) Create(ctx context.Context, text string, options []string) (q *models.Question, err error) {
	ctx, span := observability.StartSpan(ctx, "repository.question.create",
		attribute.Int("question.option_count", len(options)))
	defer func() { observability.EndSpan(span, err) }()

	question := &models.Question{
		Text:                strings.TrimSpace(text),
		DefaultAnswersCount: len(options),
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			if isUniqueViolation(err) {
				return models.NewDuplicateQuestionError(question.Text)
			}
			return models.NewInternalError(err)
		}

		answers := make([]models.Answer, 0, len(options))
		for _, opt := range options {
			answers = append(answers, models.Answer{
				QuestionID: question.ID,
				Text:       strings.TrimSpace(opt),
			})
		}
		if err := tx.Create(&answers).Error; err != nil {
			// The rollback removes the question row written above; report
			// the aborted multi-step write distinctly so the caller knows
			// creation did not complete.
			return models.NewPartialWriteError("question creation", err)
		}

		question.Answers = answers
		return nil
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

// GetByID loads a question with all its answers. A question id without any
// answers is an error, not an empty result: every valid question is created
// with at least one option.
func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	key := cache.QuestionKey(id)

	err := cache.Aside(ctx, key, &question, cache.QuestionTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Answers").First(&question, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Question", id)
			}
			return models.NewInternalError(err)
		}
		if len(question.Answers) == 0 {
			return models.NewNotFoundError("Question", id)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetRandom returns up to n questions in random order.
func (r *questionRepository) GetRandom(ctx context.Context, n int) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).
		Order("RANDOM()").
		Limit(n).
		Find(&questions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

func (r *questionRepository) GetAnswer(ctx context.Context, answerID uint) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Answer", answerID)
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

// GetAnswers returns every answer of the question, predefined and custom.
func (r *questionRepository) GetAnswers(ctx context.Context, questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	if err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id").
		Find(&answers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return answers, nil
}

func (r *questionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ExistsTitle matches trimmed text case-insensitively, so "Coffee or tea?"
// and "coffee or tea?" count as the same question. The unique index still
// settles exact-text races at insert time.
func (r *questionRepository) ExistsTitle(ctx context.Context, text string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("LOWER(text) = LOWER(?)", strings.TrimSpace(text)).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// AnswerBelongsTo reports whether the answer is one of the question's options.
// The guess engine runs this before trusting any client-supplied answer id.
func (r *questionRepository) AnswerBelongsTo(ctx context.Context, questionID, answerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ? AND question_id = ?", answerID, questionID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
