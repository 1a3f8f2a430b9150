package challenge

import (
	"encoding/json"
	"testing"
)

func TestExtractText_ConvenienceField(t *testing.T) {
	raw := json.RawMessage(`{"output_text":"hello world"}`)
	if got := ExtractText(raw); got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractText_NestedTraversal(t *testing.T) {
	raw := json.RawMessage(`{"output":[{"content":[{"text":"nested text"}]}]}`)
	if got := ExtractText(raw); got != "nested text" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractText_ConvenienceFieldWins(t *testing.T) {
	raw := json.RawMessage(`{"output_text":"flat","output":[{"content":[{"text":"nested"}]}]}`)
	if got := ExtractText(raw); got != "flat" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractText_PlainTextFallback(t *testing.T) {
	raw := json.RawMessage(`{"title":"t","description":"d","solution":42}`)
	if got := ExtractText(raw); got != string(raw) {
		t.Fatalf("got %q, want the payload itself", got)
	}
}

func TestExtractText_NonJSONFallback(t *testing.T) {
	raw := json.RawMessage("just some prose")
	if got := ExtractText(raw); got != "just some prose" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanCandidate(t *testing.T) {
	const doc = `{"title":"t","solution":7}`

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", doc, doc},
		{"bare with whitespace", "  \n" + doc + "\n ", doc},
		{"fenced json", "```json\n" + doc + "\n```", doc},
		{"fenced plain", "```\n" + doc + "\n```", doc},
		{"fenced with prose around", "Here you go:\n```json\n" + doc + "\n```\nEnjoy!", doc},
		{"prose wrapped braces", "Sure! " + doc + " Hope that helps.", doc},
		{"no json at all", "  nothing here  ", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCandidate(tt.in); got != tt.want {
				t.Errorf("CleanCandidate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// The three delivery styles the cleanup guards against must all recover
// the identical document.
func TestCleanCandidate_EquivalentForms(t *testing.T) {
	const doc = `{"title":"Sum","description":"add","solution":3,"difficulty":2}`
	forms := []string{
		doc,
		"```json\n" + doc + "\n```",
		"Here is your challenge: " + doc,
	}
	for _, f := range forms {
		if got := CleanCandidate(f); got != doc {
			t.Errorf("CleanCandidate(%q) = %q, want %q", f, got, doc)
		}
	}
}
