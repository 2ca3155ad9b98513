package quiz

import (
	"context"
	"log"

	"github.com/exam-ace/backend/internal/llm"
	"github.com/exam-ace/backend/internal/models"
)

// maxAttempts is the generation retry budget: one initial call plus two retries.
const maxAttempts = 3

// GenerateQuiz produces count validated questions for (subject, difficulty).
//
//  1. Health-gate the provider; unreachable goes straight to the bank.
//  2. Up to maxAttempts sequential generate+validate attempts. Any failure —
//     network error, bad status, unusable output — counts as one attempt.
//  3. Exhausted attempts fall back to the bank.
//
// The returned source is "ai" or "practice_bank". The only error it can
// return is the bank itself having no content, which has no safe degradation.
func GenerateQuiz(ctx context.Context, provider llm.Provider, subject string, difficulty models.Difficulty, count int) ([]models.QuizQuestion, string, error) {
	if !provider.CheckHealth(ctx) {
		log.Printf("WARN: LLM provider is unreachable, using fallback question bank")
		return fromBank(subject, difficulty, count)
	}

	temperature := TemperatureFor(difficulty)
	userPrompt := BuildUserPrompt(subject, difficulty, count)
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Printf("LLM attempt %d/%d for %s/%s/%d", attempt, maxAttempts, subject, difficulty, count)

		raw, err := provider.Generate(ctx, SystemPrompt, userPrompt, temperature)
		if err != nil {
			lastErr = err
			log.Printf("WARN: LLM attempt %d failed: %v", attempt, err)
			continue
		}

		questions, err := ValidateOutput(raw, count)
		if err != nil {
			lastErr = err
			log.Printf("WARN: LLM attempt %d produced unusable output: %v", attempt, err)
			continue
		}

		log.Printf("LLM attempt %d succeeded with %d valid questions", attempt, len(questions))
		return questions, models.SourceAI, nil
	}

	log.Printf("ERROR: quiz generation failed after %d attempts (last error: %v), falling back to question bank", maxAttempts, lastErr)
	return fromBank(subject, difficulty, count)
}

func fromBank(subject string, difficulty models.Difficulty, count int) ([]models.QuizQuestion, string, error) {
	questions, err := SampleFallback(subject, difficulty, count)
	if err != nil {
		return nil, "", err
	}
	return questions, models.SourcePracticeBank, nil
}
