package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
)

func validQuestionRequest() QuestionRequest {
	return QuestionRequest{
		QuestionName: "Two Sum",
		QuestionLink: "https://leetcode.com/problems/two-sum/",
		Type:         model.TypeHomework,
		Difficulty:   model.DifficultyEasy,
	}
}

func TestCreateQuestionStoresEnumeratedValues(t *testing.T) {
	repo := &fakeQuestionRepo{}
	svc := NewQuestionService(repo)

	question, err := svc.Create(context.Background(), validQuestionRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if question.ID == "" {
		t.Error("expected generated id")
	}
	if question.Type != model.TypeHomework || question.Difficulty != model.DifficultyEasy {
		t.Errorf("stored enums %q/%q", question.Type, question.Difficulty)
	}
	if len(repo.questions) != 1 {
		t.Errorf("stored %d questions, want 1", len(repo.questions))
	}
}

func TestCreateQuestionRejectsInvalidEnums(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{})

	req := validQuestionRequest()
	req.Type = "optional"
	req.Difficulty = "impossible"

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	// Both offending fields are listed.
	msg := err.Error()
	if !strings.Contains(msg, "type") || !strings.Contains(msg, "difficulty") {
		t.Errorf("error should name both invalid fields, got %q", msg)
	}
}

func TestCreateQuestionListsAllMissingFields(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{})

	_, err := svc.Create(context.Background(), QuestionRequest{})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	msg := err.Error()
	for _, field := range []string{"questionName", "questionLink", "type", "difficulty"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error should mention %s, got %q", field, msg)
		}
	}
}

func TestCreateQuestionInvalidValueNeverPersisted(t *testing.T) {
	repo := &fakeQuestionRepo{}
	svc := NewQuestionService(repo)

	req := validQuestionRequest()
	req.Difficulty = "extreme"
	if _, err := svc.Create(context.Background(), req); err == nil {
		t.Fatal("expected validation failure")
	}
	if len(repo.questions) != 0 {
		t.Errorf("invalid question was persisted: %v", repo.questions)
	}
}

func TestUpdateQuestionNotFound(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{})

	_, err := svc.Update(context.Background(), "missing", validQuestionRequest())
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuestionNotFound(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{})

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilteredValidatesEnums(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{})

	if _, err := svc.ListFiltered(context.Background(), "exam", ""); !errors.Is(err, common.ErrValidation) {
		t.Errorf("expected ErrValidation for bad type, got %v", err)
	}
	if _, err := svc.ListFiltered(context.Background(), "", "brutal"); !errors.Is(err, common.ErrValidation) {
		t.Errorf("expected ErrValidation for bad difficulty, got %v", err)
	}
	// Empty filters are fine.
	if _, err := svc.ListFiltered(context.Background(), "", ""); err != nil {
		t.Errorf("unexpected error for empty filters: %v", err)
	}
}

func TestListFilteredAppliesFilters(t *testing.T) {
	repo := &fakeQuestionRepo{questions: []model.Question{
		{ID: "1", Type: model.TypeHomework, Difficulty: model.DifficultyEasy},
		{ID: "2", Type: model.TypeClasswork, Difficulty: model.DifficultyEasy},
		{ID: "3", Type: model.TypeHomework, Difficulty: model.DifficultyHard},
	}}
	svc := NewQuestionService(repo)

	got, err := svc.ListFiltered(context.Background(), model.TypeHomework, model.DifficultyEasy)
	if err != nil {
		t.Fatalf("ListFiltered returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("ListFiltered = %v, want only question 1", got)
	}
}
