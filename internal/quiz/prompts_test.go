package quiz

import (
	"strings"
	"testing"

	"github.com/exam-ace/backend/internal/models"
)

func TestTemperatureMapping(t *testing.T) {
	cases := map[models.Difficulty]float64{
		models.DifficultyBeginner:     0.7,
		models.DifficultyIntermediate: 0.5,
		models.DifficultyAdvanced:     0.3,
	}

	for difficulty, want := range cases {
		if got := TemperatureFor(difficulty); got != want {
			t.Errorf("%s: expected temperature %.1f, got %.1f", difficulty, want, got)
		}
	}

	// Every valid difficulty must be mapped explicitly.
	for difficulty := range models.ValidDifficulties {
		if _, ok := temperatureMap[difficulty]; !ok {
			t.Errorf("difficulty %s has no temperature mapping", difficulty)
		}
	}
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt("World History", models.DifficultyAdvanced, 12)

	for _, want := range []string{"EXACTLY 12", "World History", "advanced", "correct_index", "JSON array"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
