package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":    map[string]any{"type": "string"},
			"solution": map[string]any{"type": "integer"},
		},
		"required": []any{"title", "solution"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object type, got %v", schema.Type)
	}
	if len(schema.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["solution"].Type != genai.TypeInteger {
		t.Fatalf("expected integer solution, got %v", schema.Properties["solution"].Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiType(t *testing.T) {
	tests := []struct {
		in   string
		want genai.Type
	}{
		{"string", genai.TypeString},
		{"integer", genai.TypeInteger},
		{"number", genai.TypeNumber},
		{"boolean", genai.TypeBoolean},
		{"array", genai.TypeArray},
		{"object", genai.TypeObject},
		{"mystery", genai.TypeString},
	}
	for _, tt := range tests {
		if got := mapGeminiType(tt.in); got != tt.want {
			t.Errorf("mapGeminiType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
