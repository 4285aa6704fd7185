package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		name              string
		reply             string
		wantCorrect       bool
		wantJustification string
	}{
		{
			name:              "correct verdict with justification",
			reply:             "VERDICT: CORRECT\nJUSTIFICATION: Matches reference within tolerance.",
			wantCorrect:       true,
			wantJustification: "Matches reference within tolerance.",
		},
		{
			name:              "incorrect verdict",
			reply:             "VERDICT: INCORRECT\nJUSTIFICATION: The boiling point is wrong.",
			wantCorrect:       false,
			wantJustification: "The boiling point is wrong.",
		},
		{
			name:        "incorrect verdict with surrounding text",
			reply:       "Some preamble\nVERDICT: INCORRECT\nJUSTIFICATION: Wrong.",
			wantCorrect: false,
		},
		{
			name:        "verdict with extra words still correct",
			reply:       "VERDICT: CORRECT, well done\nJUSTIFICATION: Good answer.",
			wantCorrect: true,
		},
		{
			name:              "multi-line justification is space-joined",
			reply:             "VERDICT: CORRECT\nJUSTIFICATION: First part.\nSecond part.\nThird part.",
			wantCorrect:       true,
			wantJustification: "First part. Second part. Third part.",
		},
		{
			name:              "no justification marker falls back to raw reply",
			reply:             "VERDICT: CORRECT\nThe answer looks right to me.",
			wantCorrect:       true,
			wantJustification: "VERDICT: CORRECT\nThe answer looks right to me.",
		},
		{
			name:              "no verdict at all",
			reply:             "I cannot evaluate this.",
			wantCorrect:       false,
			wantJustification: "I cannot evaluate this.",
		},
		{
			name:        "lowercase verdict is case-normalized",
			reply:       "VERDICT: correct\nJUSTIFICATION: fine",
			wantCorrect: true,
		},
		{
			name:        "first verdict line wins",
			reply:       "VERDICT: CORRECT\nVERDICT: INCORRECT\nJUSTIFICATION: conflicting",
			wantCorrect: true,
		},
		{
			name:              "lines after justification are consumed even if marker-shaped",
			reply:             "VERDICT: CORRECT\nJUSTIFICATION: Good.\nVERDICT: INCORRECT",
			wantCorrect:       true,
			wantJustification: "Good. VERDICT: INCORRECT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseEvaluation(tt.reply)
			assert.Equal(t, tt.wantCorrect, result.IsCorrect)
			if tt.wantJustification != "" {
				assert.Equal(t, tt.wantJustification, result.Justification)
			}
		})
	}
}
