package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"guesswho/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessRepository_Integration(t *testing.T) {
	repo := NewGuessRepository(testDB)
	questions := NewQuestionRepository(testDB)
	selfAnswers := NewSelfAnswerRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	guesser := &models.User{Username: fmt.Sprintf("g1_%d", ts), Email: fmt.Sprintf("g1_%d@e.com", ts)}
	friend := &models.User{Username: fmt.Sprintf("g2_%d", ts), Email: fmt.Sprintf("g2_%d@e.com", ts)}
	silent := &models.User{Username: fmt.Sprintf("g3_%d", ts), Email: fmt.Sprintf("g3_%d@e.com", ts)}
	stranger := &models.User{Username: fmt.Sprintf("g4_%d", ts), Email: fmt.Sprintf("g4_%d@e.com", ts)}
	for _, u := range []*models.User{guesser, friend, silent, stranger} {
		require.NoError(t, testDB.Create(u).Error)
	}

	// friend and silent are accepted friends of guesser; friend answered the
	// question, silent did not. stranger answered but is no friend.
	require.NoError(t, testDB.Create(&models.Friendship{
		RequesterID: guesser.ID, AddresseeID: friend.ID, Status: models.FriendshipStatusAccepted,
	}).Error)
	require.NoError(t, testDB.Create(&models.Friendship{
		RequesterID: silent.ID, AddresseeID: guesser.ID, Status: models.FriendshipStatusAccepted,
	}).Error)

	question, err := questions.Create(ctx, fmt.Sprintf("Morning or night? %d", ts), []string{"Morning", "Night"})
	require.NoError(t, err)

	require.NoError(t, selfAnswers.Create(ctx, &models.SelfAnswer{
		UserID: friend.ID, QuestionID: question.ID, AnswerID: question.Answers[0].ID,
	}))
	require.NoError(t, selfAnswers.Create(ctx, &models.SelfAnswer{
		UserID: stranger.ID, QuestionID: question.ID, AnswerID: question.Answers[1].ID,
	}))

	t.Run("GuessableFriends lists only answered friends", func(t *testing.T) {
		friends, err := repo.GuessableFriends(ctx, guesser.ID, question.ID)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, friend.ID, friends[0].FriendID)
		assert.Equal(t, friend.Username, friends[0].FriendName)
		assert.Nil(t, friends[0].GuessStatus)
	})

	t.Run("Create guess", func(t *testing.T) {
		guess := &models.GuessAnswer{
			GuessUserID: guesser.ID,
			OfUserID:    friend.ID,
			QuestionID:  question.ID,
			AnswerID:    question.Answers[0].ID,
			Status:      models.GuessStatusCorrect,
		}
		require.NoError(t, repo.Create(ctx, guess))
		assert.NotZero(t, guess.ID)
	})

	t.Run("Second guess for same friend and question conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &models.GuessAnswer{
			GuessUserID: guesser.ID,
			OfUserID:    friend.ID,
			QuestionID:  question.ID,
			AnswerID:    question.Answers[1].ID,
			Status:      models.GuessStatusWrong,
		})
		assertAppErrorCode(t, err, models.CodeAlreadyGuessed)
	})

	t.Run("Get returns the recorded outcome", func(t *testing.T) {
		guess, err := repo.Get(ctx, guesser.ID, friend.ID, question.ID)
		require.NoError(t, err)
		require.NotNil(t, guess)
		assert.Equal(t, models.GuessStatusCorrect, guess.Status)

		none, err := repo.Get(ctx, friend.ID, guesser.ID, question.ID)
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("HasGuessed", func(t *testing.T) {
		ok, err := repo.HasGuessed(ctx, guesser.ID, friend.ID, question.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.HasGuessed(ctx, friend.ID, guesser.ID, question.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("GuessableFriends carries the prior outcome", func(t *testing.T) {
		friends, err := repo.GuessableFriends(ctx, guesser.ID, question.ID)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		require.NotNil(t, friends[0].GuessStatus)
		assert.Equal(t, models.GuessStatusCorrect, *friends[0].GuessStatus)
	})
}
