package domain

import (
	"context"
	"time"
)

// CacheEntry is the single process-wide cache slot: the most recently
// requested document and the question set generated from it. QuestionSet is
// only ever populated from the DocumentText of the same entry.
type CacheEntry struct {
	SourceURL    string
	DocumentText string
	QuestionSet  string
	FetchedAt    time.Time
}

// EvaluationResult is the parsed verdict for a student's free-text answer.
// It is derived purely from one LLM reply; there is no independent check.
type EvaluationResult struct {
	IsCorrect     bool
	Justification string
}

// CompletionClient is the port for the external text-completion provider.
// Complete returns the first completion's text verbatim.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// DocumentFetcher retrieves the raw text of a published document.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
