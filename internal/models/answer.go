package models

import (
	"time"
)

// SelfAnswer links a user to the answer they chose for a question.
// QuestionID is denormalized from the answer so the at-most-one-per
// (user, question) invariant can be enforced by a database constraint
// instead of an application-level check.
type SelfAnswer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_self_answers_user_question" json:"user_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_self_answers_user_question" json:"question_id"`
	AnswerID   uint      `gorm:"not null;index" json:"answer_id"`
	CreatedAt  time.Time `json:"created_at"`

	Answer Answer `gorm:"foreignKey:AnswerID" json:"answer,omitempty"`
}

// GuessStatus records the outcome of a guess attempt.
type GuessStatus string

const (
	// GuessStatusCorrect indicates the guess matched the target's self-answer.
	GuessStatusCorrect GuessStatus = "correct"
	// GuessStatusWrong indicates the guess did not match.
	GuessStatusWrong GuessStatus = "wrong"
)

// GuessAnswer records one user's attempt to guess a friend's self-answer.
// The unique index makes a guess terminal per (guesser, target, question):
// once a row exists, no second attempt for the triple can be recorded.
type GuessAnswer struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	GuessUserID uint        `gorm:"not null;uniqueIndex:idx_guess_answers_triple" json:"guess_user_id"`
	OfUserID    uint        `gorm:"not null;uniqueIndex:idx_guess_answers_triple" json:"of_user_id"`
	QuestionID  uint        `gorm:"not null;uniqueIndex:idx_guess_answers_triple" json:"question_id"`
	AnswerID    uint        `gorm:"not null" json:"answer_id"`
	Status      GuessStatus `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// SelfAnswerView is what the ledger reports about a user's own answer.
type SelfAnswerView struct {
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
	WasAnswered  bool   `json:"was_answered"`
	UserAnswer   string `json:"user_answer,omitempty"`
}

// GuessableFriend is an accepted friend who has self-answered a question.
// GuessStatus is set only when the requesting user already attempted a
// guess for this friend and question; nil means still guessable.
type GuessableFriend struct {
	FriendID    uint         `json:"friend_id"`
	FriendName  string       `json:"friend_name"`
	FriendImage string       `json:"friend_image"`
	GuessStatus *GuessStatus `json:"guess_status,omitempty"`
}
