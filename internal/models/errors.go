// Package models contains data structures for the application's domain models.
package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes used across the answer/guess engine.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateQuestion  = "DUPLICATE_QUESTION"
	CodeInvalidAnswer      = "INVALID_ANSWER"
	CodeAlreadyAnswered    = "ALREADY_ANSWERED"
	CodeAlreadyGuessed     = "ALREADY_GUESSED"
	CodePartialWrite       = "PARTIAL_WRITE"
	CodeInvariantViolation = "INVARIANT_VIOLATION"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInternal           = "INTERNAL_ERROR"
)

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewDuplicateQuestionError(text string) *AppError {
	return &AppError{
		Code:    CodeDuplicateQuestion,
		Message: fmt.Sprintf("A question titled %q already exists", text),
	}
}

func NewInvalidAnswerError(questionID, answerID uint) *AppError {
	return &AppError{
		Code:    CodeInvalidAnswer,
		Message: fmt.Sprintf("Answer %d does not belong to question %d", answerID, questionID),
	}
}

func NewAlreadyAnsweredError(userID, questionID uint) *AppError {
	return &AppError{
		Code:    CodeAlreadyAnswered,
		Message: fmt.Sprintf("User %d has already answered question %d", userID, questionID),
	}
}

func NewAlreadyGuessedError(guesserID, ofUserID, questionID uint) *AppError {
	return &AppError{
		Code:    CodeAlreadyGuessed,
		Message: fmt.Sprintf("User %d already guessed user %d's answer to question %d", guesserID, ofUserID, questionID),
	}
}

// NewPartialWriteError marks a multi-step write that failed after its first
// step. The caller decides whether to compensate or leave the partial state
// for reconciliation; the engine never swallows it.
func NewPartialWriteError(operation string, err error) *AppError {
	return &AppError{
		Code:    CodePartialWrite,
		Message: fmt.Sprintf("Partial write during %s", operation),
		Err:     err,
	}
}

// NewInvariantViolationError reports stored state that the engine's
// invariants forbid, e.g. two self-answers for one (user, question) pair.
func NewInvariantViolationError(detail string) *AppError {
	return &AppError{
		Code:    CodeInvariantViolation,
		Message: detail,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusForError maps an application error to the HTTP status the API layer
// should respond with. Unknown errors map to 500.
func StatusForError(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeDuplicateQuestion, CodeAlreadyAnswered, CodeAlreadyGuessed:
		return fiber.StatusConflict
	case CodeInvalidAnswer, CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
