package service

import (
	"strings"

	"github.com/Karan28272827/testurself-backend/internal/domain"
)

const (
	verdictMarker       = "VERDICT:"
	justificationMarker = "JUSTIFICATION:"
)

// parseEvaluation extracts a verdict and justification from the LLM's
// free-text reply. The first VERDICT: line sets the verdict; the first
// JUSTIFICATION: line starts the justification, and every line after it is
// space-joined onto it regardless of content. If no JUSTIFICATION: marker
// appears, the full raw reply is returned so the caller never gets an empty
// explanation.
//
// Correctness is substring containment on the verdict line: it must contain
// "CORRECT" and must NOT contain "INCORRECT". The negative check is
// load-bearing because "INCORRECT" itself contains "CORRECT".
func parseEvaluation(reply string) domain.EvaluationResult {
	var verdict, justification string
	inJustification := false

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		switch {
		case inJustification:
			justification += " " + strings.TrimSpace(line)
		case strings.HasPrefix(line, verdictMarker) && verdict == "":
			verdict = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, verdictMarker)))
		case strings.HasPrefix(line, justificationMarker):
			justification = strings.TrimSpace(strings.TrimPrefix(line, justificationMarker))
			inJustification = true
		}
	}

	isCorrect := strings.Contains(verdict, "CORRECT") && !strings.Contains(verdict, "INCORRECT")

	if justification == "" {
		justification = reply
	}

	return domain.EvaluationResult{
		IsCorrect:     isCorrect,
		Justification: justification,
	}
}
