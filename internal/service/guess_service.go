package service

import (
	"context"
	"math/rand"

	"guesswho/internal/middleware"
	"guesswho/internal/models"
	"guesswho/internal/repository"
)

// GuessService provides friend visibility and guess matching business logic.
type GuessService struct {
	guessRepo      repository.GuessRepository
	selfAnswerRepo repository.SelfAnswerRepository
	questionRepo   repository.QuestionRepository
}

// NewGuessService returns a new GuessService.
func NewGuessService(
	guessRepo repository.GuessRepository,
	selfAnswerRepo repository.SelfAnswerRepository,
	questionRepo repository.QuestionRepository,
) *GuessService {
	return &GuessService{
		guessRepo:      guessRepo,
		selfAnswerRepo: selfAnswerRepo,
		questionRepo:   questionRepo,
	}
}

// GuessableFriends returns the user's accepted friends who answered the
// question, each with the prior guess outcome when one exists.
func (s *GuessService) GuessableFriends(ctx context.Context, userID, questionID uint) ([]models.GuessableFriend, error) {
	exists, err := s.questionRepo.Exists(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Question", questionID)
	}

	return s.guessRepo.GuessableFriends(ctx, userID, questionID)
}

// PresentableOptions returns the subset of a question's options shown to a
// guesser: defaultAnswersCount options drawn at random from the full pool,
// with forUserID's own self-answer always among them when one exists. The
// guaranteed option is inserted at a uniformly random position so its slot
// reveals nothing.
func (s *GuessService) PresentableOptions(ctx context.Context, questionID, forUserID uint) (*models.QuestionView, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	selfAnswer, err := s.selfAnswerRepo.GetByUserAndQuestion(ctx, forUserID, questionID)
	if err != nil {
		return nil, err
	}

	count := question.DefaultAnswersCount
	if count > len(question.Answers) {
		count = len(question.Answers)
	}

	var guaranteed *models.AnswerOption
	pool := make([]models.AnswerOption, 0, len(question.Answers))
	for _, a := range question.Answers {
		if selfAnswer != nil && a.ID == selfAnswer.AnswerID {
			guaranteed = &models.AnswerOption{ID: a.ID, Text: a.Text}
			continue
		}
		pool = append(pool, models.AnswerOption{ID: a.ID, Text: a.Text})
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	var options []models.AnswerOption
	if guaranteed == nil {
		options = pool[:count]
	} else {
		options = pool[:count-1]
		at := rand.Intn(count)
		options = append(options, models.AnswerOption{})
		copy(options[at+1:], options[at:])
		options[at] = *guaranteed
	}

	return &models.QuestionView{
		ID:      question.ID,
		Text:    question.Text,
		Options: options,
	}, nil
}

// SubmitGuess validates and records a guess about a friend's self-answer,
// returning whether it was correct. A recorded guess is terminal for the
// (guesser, friend, question) triple.
func (s *GuessService) SubmitGuess(ctx context.Context, guesserID, ofUserID, questionID, answerID uint) (bool, error) {
	if guesserID == ofUserID {
		return false, models.NewValidationError("Cannot guess your own answer")
	}

	belongs, err := s.questionRepo.AnswerBelongsTo(ctx, questionID, answerID)
	if err != nil {
		return false, err
	}
	if !belongs {
		return false, models.NewInvalidAnswerError(questionID, answerID)
	}

	guessed, err := s.guessRepo.HasGuessed(ctx, guesserID, ofUserID, questionID)
	if err != nil {
		return false, err
	}
	if guessed {
		return false, models.NewAlreadyGuessedError(guesserID, ofUserID, questionID)
	}

	correct, err := s.selfAnswerRepo.HasAnswered(ctx, ofUserID, answerID)
	if err != nil {
		return false, err
	}

	status := models.GuessStatusWrong
	if correct {
		status = models.GuessStatusCorrect
	}

	guess := &models.GuessAnswer{
		GuessUserID: guesserID,
		OfUserID:    ofUserID,
		QuestionID:  questionID,
		AnswerID:    answerID,
		Status:      status,
	}
	if err := s.guessRepo.Create(ctx, guess); err != nil {
		return false, err
	}

	middleware.GuessOutcomes.WithLabelValues(string(status)).Inc()
	return correct, nil
}
