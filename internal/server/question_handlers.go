package server

import (
	"guesswho/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion handles POST /api/questions
func (s *Server) CreateQuestion(c *fiber.Ctx) error {
	var req struct {
		Text    string   `json:"text"`
		Options []string `json:"options"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.CreateQuestion(c.Context(), req.Text, req.Options)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// GetQuestion handles GET /api/questions/:id
func (s *Server) GetQuestion(c *fiber.Ctx) error {
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.questionService.GetQuestion(c.Context(), questionID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(view)
}

// GetRandomQuestions handles GET /api/questions/random
func (s *Server) GetRandomQuestions(c *fiber.Ctx) error {
	count := c.QueryInt("count", 1)

	questions, err := s.questionService.RandomQuestions(c.Context(), count)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(questions)
}

// RecordSelfAnswer handles POST /api/questions/:id/self-answer.
// The body carries either answer_id (pick a known option) or text (submit a
// custom answer), never both.
func (s *Server) RecordSelfAnswer(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		AnswerID uint   `json:"answer_id"`
		Text     string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	switch {
	case req.AnswerID != 0 && req.Text != "":
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Provide either answer_id or text, not both"))
	case req.AnswerID != 0:
		if err := s.answerService.RecordPredefinedSelfAnswer(c.Context(), userID, questionID, req.AnswerID); err != nil {
			return respondServiceError(c, err)
		}
	case req.Text != "":
		if err := s.answerService.RecordCustomSelfAnswer(c.Context(), userID, questionID, req.Text); err != nil {
			return respondServiceError(c, err)
		}
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Either answer_id or text is required"))
	}

	return c.SendStatus(fiber.StatusCreated)
}

// GetSelfAnswer handles GET /api/questions/:id/self-answer
func (s *Server) GetSelfAnswer(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.answerService.GetSelfAnswer(c.Context(), userID, questionID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(view)
}
