package app_test

import (
	"context"
	"sort"

	"nutrisec/internal/domain"
)

type mockDayRepo struct {
	createFn         func(ctx context.Context, day domain.Day) error
	getFn            func(ctx context.Context, id string) (*domain.Day, error)
	listFn           func(ctx context.Context) ([]domain.Day, error)
	listLastFn       func(ctx context.Context, n int) ([]domain.Day, error)
	updateFn         func(ctx context.Context, id string, mutate func(*domain.Day) error) (*domain.Day, error)
	deleteFn         func(ctx context.Context, id string) (bool, error)
	deleteCompleteFn func(ctx context.Context) (int, error)
}

func (m *mockDayRepo) CreateDay(ctx context.Context, day domain.Day) error {
	if m.createFn != nil {
		return m.createFn(ctx, day)
	}
	return nil
}

func (m *mockDayRepo) GetDay(ctx context.Context, id string) (*domain.Day, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDayRepo) ListDays(ctx context.Context) ([]domain.Day, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockDayRepo) ListLastDays(ctx context.Context, n int) ([]domain.Day, error) {
	if m.listLastFn != nil {
		return m.listLastFn(ctx, n)
	}
	return nil, nil
}

func (m *mockDayRepo) UpdateDay(ctx context.Context, id string, mutate func(*domain.Day) error) (*domain.Day, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, mutate)
	}
	return nil, domain.ErrDayNotFound
}

func (m *mockDayRepo) DeleteDay(ctx context.Context, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

func (m *mockDayRepo) DeleteCompletedDays(ctx context.Context) (int, error) {
	if m.deleteCompleteFn != nil {
		return m.deleteCompleteFn(ctx)
	}
	return 0, nil
}

// storeRepo returns a mock backed by a map of days keyed by ID. UpdateDay
// applies mutate to a copy and only stores it on success.
func storeRepo(days ...domain.Day) (*mockDayRepo, map[string]domain.Day) {
	store := make(map[string]domain.Day, len(days))
	for _, d := range days {
		store[d.ID] = d
	}
	sorted := func() []domain.Day {
		out := make([]domain.Day, 0, len(store))
		for _, d := range store {
			out = append(out, d.Clone())
		}
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
		return out
	}
	m := &mockDayRepo{
		createFn: func(_ context.Context, day domain.Day) error {
			store[day.ID] = day
			return nil
		},
		getFn: func(_ context.Context, id string) (*domain.Day, error) {
			d, ok := store[id]
			if !ok {
				return nil, nil
			}
			c := d.Clone()
			return &c, nil
		},
		listFn: func(_ context.Context) ([]domain.Day, error) {
			return sorted(), nil
		},
		listLastFn: func(_ context.Context, n int) ([]domain.Day, error) {
			all := sorted()
			return all[max(0, len(all)-n):], nil
		},
		updateFn: func(_ context.Context, id string, mutate func(*domain.Day) error) (*domain.Day, error) {
			d, ok := store[id]
			if !ok {
				return nil, domain.ErrDayNotFound
			}
			c := d.Clone()
			if err := mutate(&c); err != nil {
				return nil, err
			}
			store[id] = c
			out := c.Clone()
			return &out, nil
		},
		deleteFn: func(_ context.Context, id string) (bool, error) {
			_, ok := store[id]
			delete(store, id)
			return ok, nil
		},
		deleteCompleteFn: func(_ context.Context) (int, error) {
			n := 0
			for id, d := range store {
				if d.Completed {
					delete(store, id)
					n++
				}
			}
			return n, nil
		},
	}
	return m, store
}
