package service

import (
	"context"

	"guesswho/internal/middleware"
	"guesswho/internal/models"
	"guesswho/internal/repository"
	"guesswho/internal/validation"
)

// AnswerService provides the self-answer ledger business logic.
type AnswerService struct {
	selfAnswerRepo repository.SelfAnswerRepository
	questionRepo   repository.QuestionRepository
}

// NewAnswerService returns a new AnswerService.
func NewAnswerService(selfAnswerRepo repository.SelfAnswerRepository, questionRepo repository.QuestionRepository) *AnswerService {
	return &AnswerService{
		selfAnswerRepo: selfAnswerRepo,
		questionRepo:   questionRepo,
	}
}

// RecordPredefinedSelfAnswer records that the user picked an existing option
// as their own answer. The answer must belong to the question the caller is
// answering.
func (s *AnswerService) RecordPredefinedSelfAnswer(ctx context.Context, userID, questionID, answerID uint) error {
	belongs, err := s.questionRepo.AnswerBelongsTo(ctx, questionID, answerID)
	if err != nil {
		return err
	}
	if !belongs {
		return models.NewInvalidAnswerError(questionID, answerID)
	}

	selfAnswer := &models.SelfAnswer{
		UserID:     userID,
		QuestionID: questionID,
		AnswerID:   answerID,
	}
	if err := s.selfAnswerRepo.Create(ctx, selfAnswer); err != nil {
		return err
	}

	middleware.SelfAnswers.WithLabelValues("predefined").Inc()
	return nil
}

// RecordCustomSelfAnswer creates a new answer option from the user's free
// text and records it as their own answer in the same unit of work.
func (s *AnswerService) RecordCustomSelfAnswer(ctx context.Context, userID, questionID uint, text string) error {
	if err := validation.ValidateAnswerText(text); err != nil {
		return models.NewValidationError(err.Error())
	}

	exists, err := s.questionRepo.Exists(ctx, questionID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("Question", questionID)
	}

	if _, err := s.selfAnswerRepo.CreateCustom(ctx, userID, questionID, text); err != nil {
		return err
	}

	middleware.SelfAnswers.WithLabelValues("custom").Inc()
	return nil
}

// GetSelfAnswer reports whether the user answered the question and, if so,
// with which text.
func (s *AnswerService) GetSelfAnswer(ctx context.Context, userID, questionID uint) (*models.SelfAnswerView, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	selfAnswer, err := s.selfAnswerRepo.GetByUserAndQuestion(ctx, userID, questionID)
	if err != nil {
		return nil, err
	}

	view := &models.SelfAnswerView{
		QuestionID:   questionID,
		QuestionText: question.Text,
	}
	if selfAnswer != nil {
		view.WasAnswered = true
		view.UserAnswer = selfAnswer.Answer.Text
	}
	return view, nil
}

// HasAnswered reports whether the user's recorded self-answer is exactly
// this answer.
func (s *AnswerService) HasAnswered(ctx context.Context, userID, answerID uint) (bool, error) {
	return s.selfAnswerRepo.HasAnswered(ctx, userID, answerID)
}
