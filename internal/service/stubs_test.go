package service

import (
	"context"
	"errors"
	"testing"

	"guesswho/internal/models"
)

type questionRepoStub struct {
	createFn          func(context.Context, string, []string) (*models.Question, error)
	getByIDFn         func(context.Context, uint) (*models.Question, error)
	getRandomFn       func(context.Context, int) ([]models.Question, error)
	getAnswerFn       func(context.Context, uint) (*models.Answer, error)
	getAnswersFn      func(context.Context, uint) ([]models.Answer, error)
	existsFn          func(context.Context, uint) (bool, error)
	existsTitleFn     func(context.Context, string) (bool, error)
	answerBelongsToFn func(context.Context, uint, uint) (bool, error)
}

func (s *questionRepoStub) Create(ctx context.Context, text string, options []string) (*models.Question, error) {
	return s.createFn(ctx, text, options)
}
func (s *questionRepoStub) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}
func (s *questionRepoStub) GetRandom(ctx context.Context, n int) ([]models.Question, error) {
	return s.getRandomFn(ctx, n)
}
func (s *questionRepoStub) GetAnswer(ctx context.Context, answerID uint) (*models.Answer, error) {
	return s.getAnswerFn(ctx, answerID)
}
func (s *questionRepoStub) GetAnswers(ctx context.Context, questionID uint) ([]models.Answer, error) {
	return s.getAnswersFn(ctx, questionID)
}
func (s *questionRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *questionRepoStub) ExistsTitle(ctx context.Context, text string) (bool, error) {
	return s.existsTitleFn(ctx, text)
}
func (s *questionRepoStub) AnswerBelongsTo(ctx context.Context, questionID, answerID uint) (bool, error) {
	return s.answerBelongsToFn(ctx, questionID, answerID)
}

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		createFn: func(_ context.Context, text string, options []string) (*models.Question, error) {
			return &models.Question{ID: 1, Text: text, DefaultAnswersCount: len(options)}, nil
		},
		getByIDFn:         func(context.Context, uint) (*models.Question, error) { return &models.Question{ID: 1}, nil },
		getRandomFn:       func(context.Context, int) ([]models.Question, error) { return nil, nil },
		getAnswerFn:       func(context.Context, uint) (*models.Answer, error) { return &models.Answer{}, nil },
		getAnswersFn:      func(context.Context, uint) ([]models.Answer, error) { return nil, nil },
		existsFn:          func(context.Context, uint) (bool, error) { return true, nil },
		existsTitleFn:     func(context.Context, string) (bool, error) { return false, nil },
		answerBelongsToFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
	}
}

type selfAnswerRepoStub struct {
	createFn               func(context.Context, *models.SelfAnswer) error
	createCustomFn         func(context.Context, uint, uint, string) (*models.SelfAnswer, error)
	getByUserAndQuestionFn func(context.Context, uint, uint) (*models.SelfAnswer, error)
	hasAnsweredFn          func(context.Context, uint, uint) (bool, error)
}

func (s *selfAnswerRepoStub) Create(ctx context.Context, selfAnswer *models.SelfAnswer) error {
	return s.createFn(ctx, selfAnswer)
}
func (s *selfAnswerRepoStub) CreateCustom(ctx context.Context, userID, questionID uint, text string) (*models.SelfAnswer, error) {
	return s.createCustomFn(ctx, userID, questionID, text)
}
func (s *selfAnswerRepoStub) GetByUserAndQuestion(ctx context.Context, userID, questionID uint) (*models.SelfAnswer, error) {
	return s.getByUserAndQuestionFn(ctx, userID, questionID)
}
func (s *selfAnswerRepoStub) HasAnswered(ctx context.Context, userID, answerID uint) (bool, error) {
	return s.hasAnsweredFn(ctx, userID, answerID)
}

func noopSelfAnswerRepo() *selfAnswerRepoStub {
	return &selfAnswerRepoStub{
		createFn: func(context.Context, *models.SelfAnswer) error { return nil },
		createCustomFn: func(context.Context, uint, uint, string) (*models.SelfAnswer, error) {
			return &models.SelfAnswer{}, nil
		},
		getByUserAndQuestionFn: func(context.Context, uint, uint) (*models.SelfAnswer, error) { return nil, nil },
		hasAnsweredFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
	}
}

type guessRepoStub struct {
	createFn           func(context.Context, *models.GuessAnswer) error
	getFn              func(context.Context, uint, uint, uint) (*models.GuessAnswer, error)
	hasGuessedFn       func(context.Context, uint, uint, uint) (bool, error)
	guessableFriendsFn func(context.Context, uint, uint) ([]models.GuessableFriend, error)
}

func (s *guessRepoStub) Create(ctx context.Context, guess *models.GuessAnswer) error {
	return s.createFn(ctx, guess)
}
func (s *guessRepoStub) Get(ctx context.Context, guessUserID, ofUserID, questionID uint) (*models.GuessAnswer, error) {
	return s.getFn(ctx, guessUserID, ofUserID, questionID)
}
func (s *guessRepoStub) HasGuessed(ctx context.Context, guessUserID, ofUserID, questionID uint) (bool, error) {
	return s.hasGuessedFn(ctx, guessUserID, ofUserID, questionID)
}
func (s *guessRepoStub) GuessableFriends(ctx context.Context, userID, questionID uint) ([]models.GuessableFriend, error) {
	return s.guessableFriendsFn(ctx, userID, questionID)
}

func noopGuessRepo() *guessRepoStub {
	return &guessRepoStub{
		createFn:           func(context.Context, *models.GuessAnswer) error { return nil },
		getFn:              func(context.Context, uint, uint, uint) (*models.GuessAnswer, error) { return nil, nil },
		hasGuessedFn:       func(context.Context, uint, uint, uint) (bool, error) { return false, nil },
		guessableFriendsFn: func(context.Context, uint, uint) ([]models.GuessableFriend, error) { return nil, nil },
	}
}

type friendRepoStub struct {
	createFn                    func(context.Context, *models.Friendship) error
	getByIDFn                   func(context.Context, uint) (*models.Friendship, error)
	getFriendshipBetweenUsersFn func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn                func(context.Context, uint) ([]models.User, error)
	getPendingRequestsFn        func(context.Context, uint) ([]models.Friendship, error)
	getSentRequestsFn           func(context.Context, uint) ([]models.Friendship, error)
	updateStatusFn              func(context.Context, uint, models.FriendshipStatus) error
	deleteFn                    func(context.Context, uint) error
	removeFriendshipFn          func(context.Context, uint, uint) error
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getFriendshipBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getSentRequestsFn(ctx, userID)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, friendshipID, status)
}
func (s *friendRepoStub) Delete(ctx context.Context, friendshipID uint) error {
	return s.deleteFn(ctx, friendshipID)
}
func (s *friendRepoStub) RemoveFriendship(ctx context.Context, userID1, userID2 uint) error {
	return s.removeFriendshipFn(ctx, userID1, userID2)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:                    func(context.Context, *models.Friendship) error { return nil },
		getByIDFn:                   func(context.Context, uint) (*models.Friendship, error) { return &models.Friendship{}, nil },
		getFriendshipBetweenUsersFn: func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getFriendsFn:                func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getPendingRequestsFn:        func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		getSentRequestsFn:           func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		updateStatusFn:              func(context.Context, uint, models.FriendshipStatus) error { return nil },
		deleteFn:                    func(context.Context, uint) error { return nil },
		removeFriendshipFn:          func(context.Context, uint, uint) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
	}
}

func requireAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}
