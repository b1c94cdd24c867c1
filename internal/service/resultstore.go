package service

import (
	"sync"
	"time"

	"github.com/guenbae-park01/youtube-best-tool/internal/model"
)

// ResultStore keeps the records from recent searches addressable by video ID
// so the transcript, prompt and analysis endpoints can act on a clicked card.
// It is a per-process session map, not persistence: entries expire and the
// store starts empty on every boot.
type ResultStore struct {
	mu      sync.Mutex
	entries map[string]storedRecord
	ttl     time.Duration
}

type storedRecord struct {
	record    model.VideoRecord
	expiresAt time.Time
}

// NewResultStore creates a store whose entries live for ttl after their
// search completes.
func NewResultStore(ttl time.Duration) *ResultStore {
	rs := &ResultStore{
		entries: make(map[string]storedRecord),
		ttl:     ttl,
	}
	go rs.cleanup()
	return rs
}

// Put registers all records from one search response.
func (rs *ResultStore) Put(records []model.VideoRecord) {
	expires := time.Now().Add(rs.ttl)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for _, r := range records {
		rs.entries[r.VideoID] = storedRecord{record: r, expiresAt: expires}
	}
}

// Get returns the record for a video ID from a recent search.
func (rs *ResultStore) Get(videoID string) (model.VideoRecord, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	e, ok := rs.entries[videoID]
	if !ok || time.Now().After(e.expiresAt) {
		return model.VideoRecord{}, false
	}
	return e.record, true
}

func (rs *ResultStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		rs.mu.Lock()
		now := time.Now()
		for id, e := range rs.entries {
			if now.After(e.expiresAt) {
				delete(rs.entries, id)
			}
		}
		rs.mu.Unlock()
	}
}
