package server

import (
	"guesswho/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGuessableFriends handles GET /api/questions/:id/friends
func (s *Server) GetGuessableFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friends, err := s.guessService.GuessableFriends(c.Context(), userID, questionID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(friends)
}

// GetPresentableOptions handles GET /api/questions/:id/options
func (s *Server) GetPresentableOptions(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.guessService.PresentableOptions(c.Context(), questionID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(view)
}

// SubmitGuess handles POST /api/questions/:id/guesses
func (s *Server) SubmitGuess(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		OfUserID uint `json:"of_user_id"`
		AnswerID uint `json:"answer_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.OfUserID == 0 || req.AnswerID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("of_user_id and answer_id are required"))
	}

	correct, err := s.guessService.SubmitGuess(c.Context(), userID, req.OfUserID, questionID, req.AnswerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"correct": correct})
}
