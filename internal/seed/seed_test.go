package seed

import (
	"os"
	"testing"

	"guesswho/internal/config"
	"guesswho/internal/database"
	"guesswho/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	_ = os.Setenv("APP_ENV", "test")
	cfg := &config.Config{
		Env:         "test",
		DatabaseURL: "sqlite://file:seedtest?mode=memory&cache=shared",
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)

	require.NoError(t, Seed(db, Options{NumUsers: 10}))

	var questionCount, userCount, answerCount int64
	require.NoError(t, db.Model(&models.Question{}).Count(&questionCount).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Answer{}).Count(&answerCount).Error)

	assert.Equal(t, int64(len(starterQuestions)), questionCount)
	assert.Equal(t, int64(10), userCount)
	assert.Greater(t, answerCount, questionCount)

	t.Run("catalog is idempotent", func(t *testing.T) {
		require.NoError(t, Seed(db, Options{NumUsers: 0}))

		var again int64
		require.NoError(t, db.Model(&models.Question{}).Count(&again).Error)
		assert.Equal(t, questionCount, again)
	})

	t.Run("clean wipes everything", func(t *testing.T) {
		require.NoError(t, Seed(db, Options{NumUsers: 0, ShouldClean: true}))

		var users int64
		require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
		assert.Zero(t, users)
	})
}
