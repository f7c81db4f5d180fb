package validation

import (
	"fmt"
	"strings"
)

const (
	maxQuestionTextLength = 255
	maxAnswerTextLength   = 140
	maxPredefinedOptions  = 10
)

// ValidateQuestionText checks question text supplied at authoring time.
func ValidateQuestionText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("question text is required")
	}
	if len(trimmed) > maxQuestionTextLength {
		return fmt.Errorf("question text must not exceed %d characters", maxQuestionTextLength)
	}
	return nil
}

// ValidateAnswerText checks a predefined option or a custom answer.
func ValidateAnswerText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("answer text is required")
	}
	if len(trimmed) > maxAnswerTextLength {
		return fmt.Errorf("answer text must not exceed %d characters", maxAnswerTextLength)
	}
	return nil
}

// ValidateQuestionOptions checks the predefined option list of a new question.
// Every valid question needs at least one option; the option count also fixes
// how many choices a guesser is later shown.
func ValidateQuestionOptions(options []string) error {
	if len(options) == 0 {
		return fmt.Errorf("at least one answer option is required")
	}
	if len(options) > maxPredefinedOptions {
		return fmt.Errorf("at most %d answer options are allowed", maxPredefinedOptions)
	}

	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if err := ValidateAnswerText(opt); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(opt))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("answer options must be distinct")
		}
		seen[key] = struct{}{}
	}
	return nil
}
