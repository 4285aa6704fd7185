package service

import (
	"sync"
	"time"

	"github.com/Karan28272827/testurself-backend/internal/domain"
)

// DocumentCache is the process-wide single-slot cache for the most recently
// requested document and its generated question set. A new source URL evicts
// the previous entry outright; there is no multi-entry map.
//
// The mutex guards the slot itself. Miss handling (fetch + generation) runs
// outside the lock, so two concurrent misses for the same URL may both call
// the provider, with the later Store winning.
type DocumentCache struct {
	mu    sync.Mutex
	entry domain.CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewDocumentCache creates an empty cache with the given freshness window.
func NewDocumentCache(ttl time.Duration) *DocumentCache {
	return &DocumentCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Lookup returns the cached question set for url if the slot holds a fully
// populated entry for that URL that is still within the freshness window.
func (c *DocumentCache) Lookup(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry
	if e.SourceURL != url || e.DocumentText == "" || e.QuestionSet == "" {
		return "", false
	}
	if c.now().Sub(e.FetchedAt) >= c.ttl {
		return "", false
	}
	return e.QuestionSet, true
}

// Store replaces the entire slot with a new entry stamped at the current time.
func (c *DocumentCache) Store(url, documentText, questionSet string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = domain.CacheEntry{
		SourceURL:    url,
		DocumentText: documentText,
		QuestionSet:  questionSet,
		FetchedAt:    c.now(),
	}
}
