package challenge

import (
	"errors"
	"testing"
)

func TestParsePayload_Valid(t *testing.T) {
	gc, err := ParsePayload(`{"title":"Sum","description":"Add 1 and 2.","solution":3,"difficulty":2}`, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gc.Title != "Sum" || gc.Description != "Add 1 and 2." || gc.Solution != 3 || gc.Difficulty != 2 {
		t.Fatalf("unexpected payload: %+v", gc)
	}
}

func TestParsePayload_DifficultyDefaultsToRequested(t *testing.T) {
	gc, err := ParsePayload(`{"title":"t","description":"d","solution":1}`, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gc.Difficulty != 4 {
		t.Fatalf("difficulty = %d, want requested 4", gc.Difficulty)
	}
}

func TestParsePayload_DifficultyClamped(t *testing.T) {
	gc, err := ParsePayload(`{"title":"t","description":"d","solution":1,"difficulty":9}`, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gc.Difficulty != 5 {
		t.Fatalf("difficulty = %d, want clamped 5", gc.Difficulty)
	}
}

func TestParsePayload_NegativeSolutionAllowed(t *testing.T) {
	gc, err := ParsePayload(`{"title":"t","description":"d","solution":-17}`, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gc.Solution != -17 {
		t.Fatalf("solution = %d", gc.Solution)
	}
}

func TestParsePayload_Failures(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantField string
	}{
		{"not json", "garbage", ""},
		{"json array", `[1,2,3]`, ""},
		{"missing title", `{"description":"d","solution":1}`, "title"},
		{"numeric title", `{"title":7,"description":"d","solution":1}`, "title"},
		{"missing description", `{"title":"t","solution":1}`, "description"},
		{"missing solution", `{"title":"t","description":"d"}`, "solution"},
		{"string solution", `{"title":"t","description":"d","solution":"42"}`, "solution"},
		{"fractional solution", `{"title":"t","description":"d","solution":1.5}`, "solution"},
		{"string difficulty", `{"title":"t","description":"d","solution":1,"difficulty":"hard"}`, "difficulty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePayload(tt.candidate, 3)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if pe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", pe.Field, tt.wantField)
			}
			if pe.Raw != tt.candidate {
				t.Errorf("Raw = %q, want the candidate text", pe.Raw)
			}
		})
	}
}
