// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"guesswho/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
}

var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Lisa", "Matthew", "Nancy",
		"Anthony", "Margaret", "Mark", "Sandra", "Steven", "Ashley", "Andrew", "Emily",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson",
		"Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Clark", "Lewis",
	}

	// starterQuestions is the built-in catalog loaded on first seed.
	starterQuestions = []struct {
		Text    string
		Options []string
	}{
		{"What is your favorite season?", []string{"Spring", "Summer", "Autumn", "Winter"}},
		{"Coffee or tea?", []string{"Coffee", "Tea", "Neither"}},
		{"Which pet would you pick?", []string{"Dog", "Cat", "Parrot", "Fish"}},
		{"Where would you rather live?", []string{"City", "Countryside", "By the sea", "Mountains"}},
		{"What do you do first in the morning?", []string{"Check my phone", "Coffee", "Exercise", "Snooze"}},
		{"Pick a superpower", []string{"Flight", "Invisibility", "Time travel", "Mind reading"}},
		{"Favorite way to spend a Friday night?", []string{"Going out", "Movie at home", "Gaming", "Reading"}},
		{"How do you take your eggs?", []string{"Scrambled", "Fried", "Boiled", "I don't eat eggs"}},
		{"Beach or mountain holiday?", []string{"Beach", "Mountains", "Road trip", "Staycation"}},
		{"What wakes you up?", []string{"One alarm", "Five alarms", "Sunlight", "Nothing, I'm always late"}},
	}
)

// Seed populates the database with the starter question catalog and,
// optionally, a mesh of test users with friendships and self-answers.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users...", opts.NumUsers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	questions, err := createStarterQuestions(db)
	if err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	log.Printf("%d starter questions available", len(questions))

	if opts.NumUsers == 0 {
		return nil
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	friendships, err := createFriendships(db, users)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("%d friendships created", friendships)

	answers, err := createSelfAnswers(db, users, questions)
	if err != nil {
		return fmt.Errorf("failed to create self-answers: %w", err)
	}
	log.Printf("%d self-answers recorded", answers)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	// Reverse dependency order.
	for _, model := range []any{
		&models.GuessAnswer{},
		&models.SelfAnswer{},
		&models.Answer{},
		&models.Question{},
		&models.Friendship{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// createStarterQuestions inserts the built-in catalog, skipping questions
// whose text already exists.
func createStarterQuestions(db *gorm.DB) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(starterQuestions))
	for _, sq := range starterQuestions {
		var existing models.Question
		err := db.Preload("Answers").Where("text = ?", sq.Text).First(&existing).Error
		if err == nil {
			questions = append(questions, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		question := models.Question{
			Text:                sq.Text,
			DefaultAnswersCount: len(sq.Options),
		}
		for _, text := range sq.Options {
			question.Answers = append(question.Answers, models.Answer{Text: text})
		}
		if err := db.Create(&question).Error; err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	// One hash for everyone keeps seeding fast; these are throwaway accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte("Seeded-Passw0rd!"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		username := fmt.Sprintf("%s_%s_%d", first, last, i)

		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// createFriendships links each user with a handful of random others,
// most of them accepted.
func createFriendships(db *gorm.DB, users []models.User) (int, error) {
	created := 0
	for i := range users {
		wanted := 2 + rand.Intn(4)
		for j := 0; j < wanted; j++ {
			other := rand.Intn(len(users))
			if other == i {
				continue
			}

			status := models.FriendshipStatusAccepted
			if rand.Intn(5) == 0 {
				status = models.FriendshipStatusPending
			}
			friendship := models.Friendship{
				RequesterID: users[i].ID,
				AddresseeID: users[other].ID,
				Status:      status,
			}
			// The unique pair index rejects duplicates; skip those quietly.
			if err := db.Create(&friendship).Error; err != nil {
				continue
			}
			created++
		}
	}
	return created, nil
}

// createSelfAnswers gives each user answers to a random subset of questions.
func createSelfAnswers(db *gorm.DB, users []models.User, questions []models.Question) (int, error) {
	created := 0
	for _, user := range users {
		for _, question := range questions {
			if rand.Intn(2) == 0 || len(question.Answers) == 0 {
				continue
			}
			answer := question.Answers[rand.Intn(len(question.Answers))]
			selfAnswer := models.SelfAnswer{
				UserID:     user.ID,
				QuestionID: question.ID,
				AnswerID:   answer.ID,
			}
			if err := db.Create(&selfAnswer).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
