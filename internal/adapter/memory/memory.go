// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"nutrisec/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu   sync.Mutex
	days []domain.Day
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.DayRepository = (*DB)(nil)

func (db *DB) index(id string) int {
	for i := range db.days {
		if db.days[i].ID == id {
			return i
		}
	}
	return -1
}

// sorted returns deep copies of the days, oldest first. Days created at the
// same instant keep their insertion order.
func (db *DB) sorted() []domain.Day {
	result := make([]domain.Day, len(db.days))
	for i, d := range db.days {
		result[i] = d.Clone()
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// CreateDay stores a new day.
func (db *DB) CreateDay(ctx context.Context, day domain.Day) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.index(day.ID) >= 0 {
		return fmt.Errorf("day %s already exists", day.ID)
	}
	day = day.Clone()
	day.CreatedAt = day.CreatedAt.UTC()
	db.days = append(db.days, day)
	return nil
}

// GetDay returns a copy of the day, or nil if it does not exist.
func (db *DB) GetDay(ctx context.Context, id string) (*domain.Day, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := db.index(id)
	if i < 0 {
		return nil, nil
	}
	d := db.days[i].Clone()
	return &d, nil
}

// ListDays lists every day, oldest first.
func (db *DB) ListDays(ctx context.Context) ([]domain.Day, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.sorted(), nil
}

// ListLastDays lists the n most recent days, oldest first.
func (db *DB) ListLastDays(ctx context.Context, n int) ([]domain.Day, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := db.sorted()
	if n < 0 {
		n = 0
	}
	if len(result) > n {
		result = result[len(result)-n:]
	}
	return result, nil
}

// UpdateDay applies mutate to a copy of the day under the lock and stores
// the copy only if mutate succeeds.
func (db *DB) UpdateDay(ctx context.Context, id string, mutate func(*domain.Day) error) (*domain.Day, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := db.index(id)
	if i < 0 {
		return nil, domain.ErrDayNotFound
	}
	d := db.days[i].Clone()
	if err := mutate(&d); err != nil {
		return nil, err
	}
	d.ID = id
	db.days[i] = d.Clone()
	return &d, nil
}

// DeleteDay deletes a day by ID.
func (db *DB) DeleteDay(ctx context.Context, id string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := db.index(id)
	if i < 0 {
		return false, nil
	}
	db.days = append(db.days[:i], db.days[i+1:]...)
	return true, nil
}

// DeleteCompletedDays deletes every completed day.
func (db *DB) DeleteCompletedDays(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	kept := db.days[:0]
	removed := 0
	for _, d := range db.days {
		if d.Completed {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	db.days = kept
	return removed, nil
}
