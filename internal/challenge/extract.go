package challenge

import (
	"encoding/json"
	"regexp"
	"strings"
)

// responseEnvelope covers the known provider response shapes: a flat
// convenience field with the full text, or the nested output/content
// structure of responses-style APIs.
type responseEnvelope struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// ExtractText pulls the model's text answer out of an opaque response
// payload. It tries the convenience field first, then the nested
// traversal, and degrades to the payload itself when neither shape
// matches. It never fails; the result is a candidate for CleanCandidate,
// not guaranteed to be valid JSON.
func ExtractText(raw json.RawMessage) string {
	var env responseEnvelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.OutputText != "" {
			return env.OutputText
		}
		if len(env.Output) > 0 && len(env.Output[0].Content) > 0 && env.Output[0].Content[0].Text != "" {
			return env.Output[0].Content[0].Text
		}
	}
	return string(raw)
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// CleanCandidate recovers a JSON document from raw model output. Models
// asked for bare JSON still wrap it in markdown fences or prose often
// enough that this defensive pass pays for itself. If a fenced block is
// present its interior wins; otherwise the span between the first '{' and
// the last '}' is taken; otherwise the trimmed input is returned as-is.
func CleanCandidate(raw string) string {
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return strings.TrimSpace(raw)
}
