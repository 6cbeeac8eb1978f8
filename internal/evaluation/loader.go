package evaluation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
)

// LoadGoldenCases reads and parses a golden case set from a JSON file.
func LoadGoldenCases(path string) ([]GoldenCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden cases file: %w", err)
	}

	var cases []GoldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse golden cases: %w", err)
	}

	return cases, nil
}

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// ValidateGoldenCases checks required fields, urgency and difficulty values,
// and that every expected symptom exists in v.
func ValidateGoldenCases(cases []GoldenCase, v *vocabulary.Vocabulary) error {
	known := make(map[string]struct{}, v.SymptomCount())
	for _, s := range v.Symptoms() {
		known[s] = struct{}{}
	}
	seen := make(map[string]struct{}, len(cases))

	for i, c := range cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d: missing id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("case at index %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}

		if !c.ExpectedUrgency.IsValid() {
			return fmt.Errorf("case %q: invalid expected urgency %q", c.ID, c.ExpectedUrgency)
		}
		if !validDifficulties[c.Difficulty] {
			return fmt.Errorf("case %q: invalid difficulty %q (must be easy/medium/hard)", c.ID, c.Difficulty)
		}
		for _, s := range c.ExpectedSymptoms {
			if _, ok := known[s]; !ok {
				return fmt.Errorf("case %q: unknown symptom %q", c.ID, s)
			}
		}
	}

	return nil
}
