package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"guesswho/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessEndpoints(t *testing.T) {
	app, s := newTestAPI(t)

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	carol := seedUser(t, s, "carol")
	aliceToken := tokenFor(t, s, alice)

	// alice and bob are friends; carol never accepted.
	require.NoError(t, s.db.Create(&models.Friendship{
		RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusAccepted,
	}).Error)
	require.NoError(t, s.db.Create(&models.Friendship{
		RequesterID: carol.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusPending,
	}).Error)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/questions/", aliceToken, fiber.Map{
		"text":    "Which pet would you pick?",
		"options": []string{"Dog", "Cat", "Parrot"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var question models.Question
	require.NoError(t, json.Unmarshal(raw, &question))

	// bob answered, carol answered too but is not an accepted friend.
	require.NoError(t, s.db.Create(&models.SelfAnswer{
		UserID: bob.ID, QuestionID: question.ID, AnswerID: question.Answers[1].ID,
	}).Error)
	require.NoError(t, s.db.Create(&models.SelfAnswer{
		UserID: carol.ID, QuestionID: question.ID, AnswerID: question.Answers[0].ID,
	}).Error)

	friendsPath := fmt.Sprintf("/api/questions/%d/friends", question.ID)
	optionsPath := fmt.Sprintf("/api/questions/%d/options", question.ID)
	guessesPath := fmt.Sprintf("/api/questions/%d/guesses", question.ID)

	t.Run("guessable friends lists answered accepted friends only", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, friendsPath, aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var friends []models.GuessableFriend
		require.NoError(t, json.Unmarshal(raw, &friends))
		require.Len(t, friends, 1)
		assert.Equal(t, bob.ID, friends[0].FriendID)
		assert.Nil(t, friends[0].GuessStatus)
	})

	t.Run("options include own answer when answered", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/questions/%d/self-answer", question.ID), aliceToken, fiber.Map{
				"answer_id": question.Answers[0].ID,
			})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, raw := doJSON(t, app, http.MethodGet, optionsPath, aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view models.QuestionView
		require.NoError(t, json.Unmarshal(raw, &view))
		require.Len(t, view.Options, 3)
		ids := make([]uint, 0, len(view.Options))
		for _, opt := range view.Options {
			ids = append(ids, opt.ID)
		}
		assert.Contains(t, ids, question.Answers[0].ID)
	})

	t.Run("missing target or answer rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, guessesPath, aliceToken, fiber.Map{
			"of_user_id": bob.ID,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("guessing yourself rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, guessesPath, aliceToken, fiber.Map{
			"of_user_id": alice.ID,
			"answer_id":  question.Answers[0].ID,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("correct guess", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, guessesPath, aliceToken, fiber.Map{
			"of_user_id": bob.ID,
			"answer_id":  question.Answers[1].ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

		var result map[string]bool
		require.NoError(t, json.Unmarshal(raw, &result))
		assert.True(t, result["correct"])
	})

	t.Run("second guess for same friend conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, guessesPath, aliceToken, fiber.Map{
			"of_user_id": bob.ID,
			"answer_id":  question.Answers[0].ID,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("friend list carries the recorded outcome", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, friendsPath, aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var friends []models.GuessableFriend
		require.NoError(t, json.Unmarshal(raw, &friends))
		require.Len(t, friends, 1)
		require.NotNil(t, friends[0].GuessStatus)
		assert.Equal(t, models.GuessStatusCorrect, *friends[0].GuessStatus)
	})

	t.Run("wrong guess reports false", func(t *testing.T) {
		bobToken := tokenFor(t, s, bob)
		resp, raw := doJSON(t, app, http.MethodPost, guessesPath, bobToken, fiber.Map{
			"of_user_id": alice.ID,
			"answer_id":  question.Answers[2].ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

		var result map[string]bool
		require.NoError(t, json.Unmarshal(raw, &result))
		assert.False(t, result["correct"])
	})
}
