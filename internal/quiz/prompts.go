package quiz

import (
	"fmt"

	"github.com/exam-ace/backend/internal/models"
)

// SystemPrompt pins the model to JSON-only output. Some models still wrap
// the array in code fences; the validator strips those.
const SystemPrompt = "You are an exam question generator. " +
	"You produce high-quality, exam-level multiple choice questions. " +
	"You ALWAYS respond with valid JSON only — no prose, no markdown, no code fences."

// temperatureMap is total over the difficulty enum: harder questions get a
// lower temperature so the model stays precise.
var temperatureMap = map[models.Difficulty]float64{
	models.DifficultyBeginner:     0.7,
	models.DifficultyIntermediate: 0.5,
	models.DifficultyAdvanced:     0.3,
}

// TemperatureFor returns the generation temperature for a difficulty level.
func TemperatureFor(difficulty models.Difficulty) float64 {
	if t, ok := temperatureMap[difficulty]; ok {
		return t
	}
	return 0.5
}

// BuildUserPrompt asks for exactly count questions in the canonical shape.
func BuildUserPrompt(subject string, difficulty models.Difficulty, count int) string {
	return fmt.Sprintf(
		"Generate EXACTLY %d multiple choice questions.\n\n"+
			"Subject: %s\n"+
			"Difficulty: %s\n\n"+
			"Rules:\n"+
			"- Each question must be exam-level\n"+
			"- 4 options only\n"+
			"- 1 correct answer\n"+
			"- Include a concise explanation for the correct answer\n"+
			"- Return VALID JSON ONLY\n\n"+
			"Return a JSON array where each element has this shape:\n"+
			`{"question": "...", "options": ["A","B","C","D"], "correct_index": 0, "explanation": "..."}`+
			"\n\nNo prose. No markdown. JSON array only.",
		count, subject, difficulty,
	)
}
