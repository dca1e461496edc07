package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/kabirajrana/phishing-website-detection/internal/models"
)

const defaultMaxEntries = 200

// SubmissionStore keeps completed submissions in memory for the dashboard
// history. The store is bounded; once full, the oldest submission is evicted
// to make room. Everything in and out is copied, so callers can hold on to
// results without racing the store.
type SubmissionStore struct {
	mu          sync.RWMutex
	submissions map[string]*models.Submission
	maxEntries  int
}

func NewSubmissionStore(maxEntries int) *SubmissionStore {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &SubmissionStore{
		submissions: make(map[string]*models.Submission),
		maxEntries:  maxEntries,
	}
}

func (s *SubmissionStore) Store(sub *models.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.submissions[sub.ID]; !exists && len(s.submissions) >= s.maxEntries {
		s.evictOldest()
	}
	s.submissions[sub.ID] = clone(sub)
}

func (s *SubmissionStore) Get(id string) (*models.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, false
	}
	return clone(sub), true
}

// All returns every stored submission, newest first.
func (s *SubmissionStore) All() []*models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		out = append(out, clone(sub))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *SubmissionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.submissions[id]; !ok {
		return false
	}
	delete(s.submissions, id)
	return true
}

func (s *SubmissionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.submissions)
}

// evictOldest drops the submission with the earliest timestamp. Caller holds
// the write lock.
func (s *SubmissionStore) evictOldest() {
	var oldestID string
	var oldestAt time.Time

	for id, sub := range s.submissions {
		if oldestID == "" || sub.CreatedAt.Before(oldestAt) {
			oldestID = id
			oldestAt = sub.CreatedAt
		}
	}
	if oldestID != "" {
		delete(s.submissions, oldestID)
	}
}

func clone(sub *models.Submission) *models.Submission {
	out := *sub
	out.Contributions = append([]models.SeriesEntry(nil), sub.Contributions...)
	return &out
}
