package core

import (
	"sync"
)

// Stats holds the running statistics for one batch.
type Stats struct {
	TotalEmails int
	ByCategory  map[string]int
	ByType      map[string]int
	BySender    map[string]int
	ByDate      map[string]int
}

// monthKey is the calendar-month bucket format for ByDate.
const monthKey = "2006-01"

// Aggregator folds classified records into batch statistics. Adds may come
// from concurrent workers; all buckets are commutative counters so merge
// order does not matter. State lives for one run and is discarded after the
// report is produced.
type Aggregator struct {
	mu         sync.Mutex
	stats      Stats
	categories map[Category][]*EmailRecord
}

// NewAggregator creates an empty aggregator. The category buckets are
// pre-seeded so a report always carries all three keys.
func NewAggregator() *Aggregator {
	a := &Aggregator{
		stats: Stats{
			ByCategory: make(map[string]int),
			ByType:     make(map[string]int),
			BySender:   make(map[string]int),
			ByDate:     make(map[string]int),
		},
		categories: make(map[Category][]*EmailRecord),
	}
	for _, c := range Categories {
		a.stats.ByCategory[c.Label()] = 0
	}
	return a
}

// Add folds one classified record into the statistics.
func (a *Aggregator) Add(rec *EmailRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.TotalEmails++
	a.stats.ByCategory[rec.Category.Label()]++
	a.stats.ByType[rec.Type.Label()]++
	a.stats.BySender[rec.Sender]++

	if rec.Date != nil {
		a.stats.ByDate[rec.Date.Format(monthKey)]++
	}

	a.categories[rec.Category] = append(a.categories[rec.Category], rec)
}

// Stats returns the accumulated statistics.
func (a *Aggregator) Stats() *Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return &a.stats
}

// Categories returns the per-category record lists.
func (a *Aggregator) Categories() map[Category][]*EmailRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.categories
}
