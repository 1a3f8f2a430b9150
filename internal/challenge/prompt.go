package challenge

import "fmt"

const systemPrompt = `You are a generator of programming challenges.

Rules:
- Generate a single coding challenge at the requested difficulty.
- The challenge must be solvable in any programming language.
- The answer must be a single integer that a program would compute.
- The description must be self-contained: all inputs stated inline, no external data.
- Respond with a JSON object only. No prose, no markdown fences, no commentary.

Respond in this exact JSON format:
{
  "title": "...",
  "description": "...",
  "solution": 123,
  "difficulty": 1
}`

// buildUserMessage constructs the per-request instruction for the given
// (already clamped) difficulty.
func buildUserMessage(difficulty int) string {
	return fmt.Sprintf(
		"Generate a programming challenge of difficulty %d on a 1-5 scale, "+
			"where 1 is a warm-up exercise and 5 requires a clever algorithm. "+
			"Remember: JSON only, and the solution must be a single integer.",
		difficulty,
	)
}
