package models

import (
	"time"
)

// Question is a personality-style question users answer about themselves.
// Questions are immutable once created.
type Question struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"uniqueIndex;not null" json:"text"`
	// DefaultAnswersCount is how many options are presented to a guesser,
	// fixed at authoring time to the number of predefined options.
	DefaultAnswersCount int       `gorm:"not null" json:"default_answers_count"`
	CreatedAt           time.Time `json:"created_at"`

	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

// Answer is one selectable option of a question. It is created either when
// the question is authored (predefined) or when a user submits a custom
// self-answer. An answer belongs to exactly one question.
type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"index;not null" json:"question_id"`
	Text       string    `gorm:"not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnswerOption is the id/text pair shown to clients when presenting a
// question's options.
type AnswerOption struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionView bundles a question with the options to display.
type QuestionView struct {
	ID      uint           `json:"id"`
	Text    string         `json:"text"`
	Options []AnswerOption `json:"options"`
}
