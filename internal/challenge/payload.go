package challenge

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError is the structured failure for model output that cannot be
// turned into a GeneratedChallenge. Raw carries the cleaned candidate
// text for diagnostics; it must not be echoed verbatim to end users.
type ParseError struct {
	// Field names the missing or invalid field. Empty when the document
	// itself is not a JSON object.
	Field string
	Raw   string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unparseable challenge payload: missing or invalid field %q", e.Field)
	}
	return "unparseable challenge payload: not a JSON object"
}

// ParsePayload validates a cleaned candidate document and builds a
// GeneratedChallenge. requestedDifficulty is substituted when the model
// omitted the difficulty field; either way the result is clamped.
func ParsePayload(candidate string, requestedDifficulty int) (*GeneratedChallenge, error) {
	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, &ParseError{Raw: candidate}
	}

	title, ok := obj["title"].(string)
	if !ok {
		return nil, &ParseError{Field: "title", Raw: candidate}
	}

	description, ok := obj["description"].(string)
	if !ok {
		return nil, &ParseError{Field: "description", Raw: candidate}
	}

	solution, err := intField(obj, "solution")
	if err != nil {
		return nil, &ParseError{Field: "solution", Raw: candidate}
	}

	difficulty := requestedDifficulty
	if _, present := obj["difficulty"]; present {
		difficulty, err = intField(obj, "difficulty")
		if err != nil {
			return nil, &ParseError{Field: "difficulty", Raw: candidate}
		}
	}

	return &GeneratedChallenge{
		Title:       title,
		Description: description,
		Solution:    solution,
		Difficulty:  ClampDifficulty(difficulty),
	}, nil
}

// intField extracts an integer-convertible JSON number. Strings and
// fractional numbers do not convert.
func intField(obj map[string]any, key string) (int, error) {
	num, ok := obj[key].(json.Number)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", key)
	}
	v, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("field %q is not an integer: %w", key, err)
	}
	return int(v), nil
}
