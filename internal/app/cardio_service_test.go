package app_test

import (
	"context"
	"errors"
	"testing"

	"nutrisec/internal/app"
)

func TestRecordCardio_Validation(t *testing.T) {
	svc := app.NewCardioService(&mockDayRepo{})

	tests := []struct {
		name  string
		delta int
	}{
		{"zero delta", 0},
		{"too large positive", 3000},
		{"too large negative", -3000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), "d1", tc.delta)
			if !errors.Is(err, app.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestRecordCardio_Accumulates(t *testing.T) {
	repo, store := storeRepo(testDay("d1", base))
	svc := app.NewCardioService(repo)
	ctx := context.Background()

	for _, delta := range []int{250, 400, -150} {
		if _, err := svc.Record(ctx, "d1", delta); err != nil {
			t.Fatalf("Record(%d): %v", delta, err)
		}
	}
	if got := store["d1"].CalCardio; got != 500 {
		t.Fatalf("cardio = %d, want 500", got)
	}
}

func TestRecordCardio_FloorsAtZero(t *testing.T) {
	repo, _ := storeRepo(testDay("d1", base))
	svc := app.NewCardioService(repo)

	d, err := svc.Record(context.Background(), "d1", -200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.CalCardio != 0 {
		t.Fatalf("cardio = %d, want 0", d.CalCardio)
	}
}
