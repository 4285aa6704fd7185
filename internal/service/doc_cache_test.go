package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentCache_LookupMissWhenEmpty(t *testing.T) {
	cache := NewDocumentCache(120 * time.Second)

	_, ok := cache.Lookup("https://example.com/doc")
	assert.False(t, ok)
}

func TestDocumentCache_HitWithinFreshnessWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewDocumentCache(120 * time.Second)
	cache.now = func() time.Time { return now }

	cache.Store("https://example.com/doc", "document text", "question set")

	// Just inside the window.
	now = now.Add(119 * time.Second)
	got, ok := cache.Lookup("https://example.com/doc")
	assert.True(t, ok)
	assert.Equal(t, "question set", got)
}

func TestDocumentCache_MissAfterWindowElapses(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewDocumentCache(120 * time.Second)
	cache.now = func() time.Time { return now }

	cache.Store("https://example.com/doc", "document text", "question set")

	now = now.Add(120 * time.Second)
	_, ok := cache.Lookup("https://example.com/doc")
	assert.False(t, ok)
}

func TestDocumentCache_MissForDifferentURL(t *testing.T) {
	cache := NewDocumentCache(120 * time.Second)
	cache.Store("https://example.com/a", "text a", "questions a")

	_, ok := cache.Lookup("https://example.com/b")
	assert.False(t, ok)
}

func TestDocumentCache_NewURLEvictsPreviousEntry(t *testing.T) {
	cache := NewDocumentCache(120 * time.Second)
	cache.Store("https://example.com/a", "text a", "questions a")
	cache.Store("https://example.com/b", "text b", "questions b")

	_, ok := cache.Lookup("https://example.com/a")
	assert.False(t, ok, "single slot: storing a new URL evicts the old entry")

	got, ok := cache.Lookup("https://example.com/b")
	assert.True(t, ok)
	assert.Equal(t, "questions b", got)
}

func TestDocumentCache_MissWhenQuestionSetEmpty(t *testing.T) {
	cache := NewDocumentCache(120 * time.Second)
	cache.Store("https://example.com/doc", "document text", "")

	_, ok := cache.Lookup("https://example.com/doc")
	assert.False(t, ok)
}
