package repository

import (
	"context"
	"errors"

	"guesswho/internal/models"

	"gorm.io/gorm"
)

// GuessRepository defines the interface for guess data operations
type GuessRepository interface {
	Create(ctx context.Context, guess *models.GuessAnswer) error
	Get(ctx context.Context, guessUserID, ofUserID, questionID uint) (*models.GuessAnswer, error)
	HasGuessed(ctx context.Context, guessUserID, ofUserID, questionID uint) (bool, error)
	GuessableFriends(ctx context.Context, userID, questionID uint) ([]models.GuessableFriend, error)
}

// guessRepository implements GuessRepository
type guessRepository struct {
	db *gorm.DB
}

// NewGuessRepository creates a new guess repository
func NewGuessRepository(db *gorm.DB) GuessRepository {
	return &guessRepository{db: db}
}

// Create records a guess outcome. The unique index on
// (guess_user_id, of_user_id, question_id) makes the first recorded guess
// terminal; a concurrent or repeated attempt maps to AlreadyGuessed.
func (r *guessRepository) Create(ctx context.Context, guess *models.GuessAnswer) error {
	if err := r.db.WithContext(ctx).Create(guess).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewAlreadyGuessedError(guess.GuessUserID, guess.OfUserID, guess.QuestionID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Get returns the recorded guess for the triple, or nil when none exists.
func (r *guessRepository) Get(ctx context.Context, guessUserID, ofUserID, questionID uint) (*models.GuessAnswer, error) {
	var guess models.GuessAnswer
	if err := r.db.WithContext(ctx).
		Where("guess_user_id = ? AND of_user_id = ? AND question_id = ?",
			guessUserID, ofUserID, questionID).
		First(&guess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &guess, nil
}

func (r *guessRepository) HasGuessed(ctx context.Context, guessUserID, ofUserID, questionID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.GuessAnswer{}).
		Where("guess_user_id = ? AND of_user_id = ? AND question_id = ?",
			guessUserID, ofUserID, questionID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// GuessableFriends returns every accepted-friendship counterpart of userID
// who has self-answered the question, each at most once, with the prior
// guess outcome attached when userID already attempted that friend.
// Friendships are usable in either direction, so the join matches the user
// on either side.
func (r *guessRepository) GuessableFriends(ctx context.Context, userID, questionID uint) ([]models.GuessableFriend, error) {
	var friends []models.GuessableFriend
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("DISTINCT users.id AS friend_id, users.username AS friend_name, users.avatar AS friend_image, guess_answers.status AS guess_status").
		Joins(`JOIN friendships ON friendships.status = ?
			AND ((friendships.requester_id = ? AND friendships.addressee_id = users.id)
			OR (friendships.addressee_id = ? AND friendships.requester_id = users.id))`,
			models.FriendshipStatusAccepted, userID, userID).
		Joins("JOIN self_answers ON self_answers.user_id = users.id AND self_answers.question_id = ?", questionID).
		Joins("LEFT JOIN guess_answers ON guess_answers.of_user_id = users.id AND guess_answers.question_id = ? AND guess_answers.guess_user_id = ?",
			questionID, userID).
		Where("users.id <> ?", userID).
		Order("friend_id").
		Scan(&friends).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friends, nil
}
