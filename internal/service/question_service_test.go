package service

import (
	"context"
	"testing"

	"guesswho/internal/models"
)

func TestQuestionServiceCreateQuestion(t *testing.T) {
	repo := noopQuestionRepo()
	svc := NewQuestionService(repo)

	question, err := svc.CreateQuestion(context.Background(), "Mountains or sea?", []string{"Mountains", "Sea"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question.DefaultAnswersCount != 2 {
		t.Fatalf("expected default answers count 2, got %d", question.DefaultAnswersCount)
	}
}

func TestQuestionServiceCreateQuestionDuplicateTitle(t *testing.T) {
	repo := noopQuestionRepo()
	repo.existsTitleFn = func(context.Context, string) (bool, error) { return true, nil }
	svc := NewQuestionService(repo)

	_, err := svc.CreateQuestion(context.Background(), "Mountains or sea?", []string{"Mountains", "Sea"})
	requireAppErrorCode(t, err, models.CodeDuplicateQuestion)
}

func TestQuestionServiceCreateQuestionValidation(t *testing.T) {
	svc := NewQuestionService(noopQuestionRepo())

	if _, err := svc.CreateQuestion(context.Background(), "", []string{"A"}); err == nil {
		t.Fatal("expected error for empty text")
	}
	if _, err := svc.CreateQuestion(context.Background(), "Valid?", nil); err == nil {
		t.Fatal("expected error for missing options")
	}
	_, err := svc.CreateQuestion(context.Background(), "Valid?", []string{"Same", "same"})
	requireAppErrorCode(t, err, models.CodeValidation)
}

func TestQuestionServiceGetQuestion(t *testing.T) {
	repo := noopQuestionRepo()
	repo.getByIDFn = func(context.Context, uint) (*models.Question, error) {
		return &models.Question{
			ID:   7,
			Text: "Cats or dogs?",
			Answers: []models.Answer{
				{ID: 1, QuestionID: 7, Text: "Cats"},
				{ID: 2, QuestionID: 7, Text: "Dogs"},
			},
		}, nil
	}
	svc := NewQuestionService(repo)

	view, err := svc.GetQuestion(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Text != "Cats or dogs?" || len(view.Options) != 2 {
		t.Fatalf("unexpected view: %#v", view)
	}
	if view.Options[0].ID != 1 || view.Options[0].Text != "Cats" {
		t.Fatalf("unexpected first option: %#v", view.Options[0])
	}
}

func TestQuestionServiceRandomQuestionsClampsCount(t *testing.T) {
	var requested int
	repo := noopQuestionRepo()
	repo.getRandomFn = func(_ context.Context, n int) ([]models.Question, error) {
		requested = n
		return nil, nil
	}
	svc := NewQuestionService(repo)

	if _, err := svc.RandomQuestions(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requested != 1 {
		t.Fatalf("expected clamp to 1, got %d", requested)
	}

	if _, err := svc.RandomQuestions(context.Background(), 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requested != 50 {
		t.Fatalf("expected clamp to 50, got %d", requested)
	}
}
