package service

import (
	"context"

	"guesswho/internal/models"
	"guesswho/internal/repository"
	"guesswho/internal/validation"
)

// QuestionService provides question catalog and authoring business logic.
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService returns a new QuestionService.
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// CreateQuestion authors a new question together with its predefined options.
// The title pre-check keeps the common duplicate case cheap; the unique index
// on question text catches the concurrent one.
func (s *QuestionService) CreateQuestion(ctx context.Context, text string, options []string) (*models.Question, error) {
	if err := validation.ValidateQuestionText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateQuestionOptions(options); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	exists, err := s.questionRepo.ExistsTitle(ctx, text)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewDuplicateQuestionError(text)
	}

	return s.questionRepo.Create(ctx, text, options)
}

// ExistsDuplicateTitle reports whether a question with this exact text
// already exists.
func (s *QuestionService) ExistsDuplicateTitle(ctx context.Context, text string) (bool, error) {
	return s.questionRepo.ExistsTitle(ctx, text)
}

// GetQuestion returns the question with every option, predefined and custom.
func (s *QuestionService) GetQuestion(ctx context.Context, questionID uint) (*models.QuestionView, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	options := make([]models.AnswerOption, 0, len(question.Answers))
	for _, a := range question.Answers {
		options = append(options, models.AnswerOption{ID: a.ID, Text: a.Text})
	}

	return &models.QuestionView{
		ID:      question.ID,
		Text:    question.Text,
		Options: options,
	}, nil
}

// RandomQuestions returns up to n questions in random order for the feed.
func (s *QuestionService) RandomQuestions(ctx context.Context, n int) ([]models.Question, error) {
	if n <= 0 {
		n = 1
	}
	if n > 50 {
		n = 50
	}
	return s.questionRepo.GetRandom(ctx, n)
}
