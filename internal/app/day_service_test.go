package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutrisec/internal/app"
	"nutrisec/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func testDay(id string, created time.Time, foods ...domain.Food) domain.Day {
	d := domain.NewDay(id, created)
	d.Eat(foods...)
	return d
}

var base = time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)

func TestStartDay(t *testing.T) {
	repo, store := storeRepo()
	svc := app.NewDayService(repo, app.DefaultRules())

	sum, err := svc.StartDay(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Day.ID == "" {
		t.Fatal("expected an id")
	}
	if sum.Day.Title == "" {
		t.Fatal("expected the default date title")
	}
	if _, ok := store[sum.Day.ID]; !ok {
		t.Fatal("day was not stored")
	}

	named, err := svc.StartDay(context.Background(), "cheat day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if named.Day.Title != "cheat day" {
		t.Fatalf("title = %q", named.Day.Title)
	}
	if named.Day.ID == sum.Day.ID {
		t.Fatal("ids must be unique")
	}
}

func TestStartDay_RepoError(t *testing.T) {
	repo := &mockDayRepo{
		createFn: func(_ context.Context, _ domain.Day) error {
			return errors.New("db down")
		},
	}
	svc := app.NewDayService(repo, app.DefaultRules())
	if _, err := svc.StartDay(context.Background(), ""); err == nil {
		t.Fatal("expected error from repo")
	}
}

func TestGetDay(t *testing.T) {
	d := testDay("d1", base, domain.NewFood("rice", 100, 130, 3, 0, 28))
	repo, _ := storeRepo(d)
	svc := app.NewDayService(repo, app.DefaultRules())

	sum, err := svc.GetDay(context.Background(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.NetCalories != 130 || len(sum.Foods) != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	if _, err := svc.GetDay(context.Background(), "missing"); !errors.Is(err, domain.ErrDayNotFound) {
		t.Fatalf("expected ErrDayNotFound, got %v", err)
	}
}

func TestCurrentDay(t *testing.T) {
	svc := app.NewDayService(&mockDayRepo{}, app.DefaultRules())
	if _, err := svc.CurrentDay(context.Background()); !errors.Is(err, domain.ErrDayNotFound) {
		t.Fatalf("expected ErrDayNotFound on empty history, got %v", err)
	}

	repo, _ := storeRepo(testDay("old", base), testDay("new", base.Add(24*time.Hour)))
	svc = app.NewDayService(repo, app.DefaultRules())
	sum, err := svc.CurrentDay(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Day.ID != "new" {
		t.Fatalf("current day = %s, want new", sum.Day.ID)
	}
}

func TestListDays_Filter(t *testing.T) {
	done := testDay("done", base)
	done.Completed = true
	repo, _ := storeRepo(done, testDay("open", base.Add(time.Hour)))
	svc := app.NewDayService(repo, app.DefaultRules())

	tests := []struct {
		filter domain.DayFilter
		want   []string
	}{
		{domain.FilterAll, []string{"done", "open"}},
		{domain.FilterActive, []string{"open"}},
		{domain.FilterCompleted, []string{"done"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.filter), func(t *testing.T) {
			got, err := svc.ListDays(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d days, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].Day.ID != id {
					t.Errorf("day %d = %s, want %s", i, got[i].Day.ID, id)
				}
			}
		})
	}
}

func TestEat_Validation(t *testing.T) {
	repo, store := storeRepo(testDay("d1", base))
	svc := app.NewDayService(repo, app.DefaultRules())

	tests := []struct {
		name  string
		foods []domain.Food
	}{
		{"empty", nil},
		{"negative quantity", []domain.Food{domain.NewFood("x", -1, 0, 0, 0, 0)}},
		{"quantity too large", []domain.Food{domain.NewFood("x", 3000, 0, 0, 0, 0)}},
		{"calories too large", []domain.Food{domain.NewFood("x", 10, 3000, 0, 0, 0)}},
		{"protein too large", []domain.Food{domain.NewFood("x", 200, 100, 100, 0, 0)}},
		{"negative fat", []domain.Food{domain.NewFood("x", 10, 10, 0, -1, 0)}},
		{"bad hour", []domain.Food{domain.NewFood("x", 10, 10, 0, 0, 0).WithTime(24, 0)}},
		{"bad minute", []domain.Food{domain.NewFood("x", 10, 10, 0, 0, 0).WithTime(12, 60)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Eat(context.Background(), "d1", tc.foods)
			if !errors.Is(err, app.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
	if n := len(store["d1"].Foods); n != 0 {
		t.Fatalf("invalid input must not be stored, got %d foods", n)
	}
}

func TestEat_Appends(t *testing.T) {
	repo, store := storeRepo(testDay("d1", base, domain.NewFood("egg", 50, 70, 6, 5, 0)))
	svc := app.NewDayService(repo, app.DefaultRules())

	sum, err := svc.Eat(context.Background(), "d1", []domain.Food{
		domain.NewFood("bread", 60, 160, 5, 2, 30).WithTime(9, 30),
		domain.NewFood("jam", 20, 50, 0, 0, 12).WithTime(9, 30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.NetCalories != 280 {
		t.Fatalf("net calories = %d, want 280", sum.NetCalories)
	}
	foods := store["d1"].Foods
	if len(foods) != 3 || foods[1].Name != "bread" || foods[2].Name != "jam" {
		t.Fatalf("unexpected foods: %+v", foods)
	}
}

func TestEat_UnknownDay(t *testing.T) {
	repo, _ := storeRepo()
	svc := app.NewDayService(repo, app.DefaultRules())
	_, err := svc.Eat(context.Background(), "nope", []domain.Food{domain.NewFood("x", 1, 1, 0, 0, 0)})
	if !errors.Is(err, domain.ErrDayNotFound) {
		t.Fatalf("expected ErrDayNotFound, got %v", err)
	}
}

func TestEditDay(t *testing.T) {
	repo, store := storeRepo(testDay("d1", base, domain.NewFood("egg", 50, 70, 6, 5, 0)))
	svc := app.NewDayService(repo, app.DefaultRules())

	sum, err := svc.EditDay(context.Background(), "d1", app.DayEdit{
		Description: ptr("rest day"),
		Weight:      ptr(81.5),
		CalCardio:   ptr(300),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := store["d1"]
	if d.Description != "rest day" || d.Weight != 81.5 || d.CalCardio != 300 {
		t.Fatalf("unexpected day: %+v", d)
	}
	if d.Title != "03/02/25" || len(d.Foods) != 1 {
		t.Fatal("nil fields must be left unchanged")
	}
	if sum.NetCalories != 70-300 {
		t.Fatalf("net calories = %d", sum.NetCalories)
	}

	if _, err := svc.EditDay(context.Background(), "d1", app.DayEdit{Foods: []domain.Food{}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store["d1"].Foods) != 0 {
		t.Fatal("an empty food list must replace the log")
	}
}

func TestEditDay_Validation(t *testing.T) {
	repo, _ := storeRepo(testDay("d1", base))
	svc := app.NewDayService(repo, app.DefaultRules())

	tests := []struct {
		name string
		edit app.DayEdit
	}{
		{"negative weight", app.DayEdit{Weight: ptr(-1.0)}},
		{"negative cardio", app.DayEdit{CalCardio: ptr(-5)}},
		{"cardio too large", app.DayEdit{CalCardio: ptr(3000)}},
		{"bad food", app.DayEdit{Foods: []domain.Food{domain.NewFood("x", 10, 10, 0, 0, 0).WithTime(-1, 0)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.EditDay(context.Background(), "d1", tc.edit); !errors.Is(err, app.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestUndoLastMeal(t *testing.T) {
	repo, store := storeRepo(testDay("d1", base,
		domain.NewFood("oats", 80, 300, 10, 5, 50).WithTime(8, 0),
		domain.NewFood("pasta", 200, 300, 10, 2, 60).WithTime(19, 0),
		domain.NewFood("salad", 150, 40, 2, 0, 5).WithTime(20, 0),
	))
	svc := app.NewDayService(repo, app.DefaultRules())

	meal, sum, err := svc.UndoLastMeal(context.Background(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meal) != 2 || meal[0].Name != "pasta" || meal[1].Name != "salad" {
		t.Fatalf("unexpected meal: %+v", meal)
	}
	if sum.NetCalories != 300 {
		t.Fatalf("net calories = %d, want 300", sum.NetCalories)
	}
	if len(store["d1"].Foods) != 1 {
		t.Fatal("meal was not removed from the store")
	}
}

func TestUndoLastMeal_EmptyDay(t *testing.T) {
	repo, _ := storeRepo(testDay("d1", base))
	svc := app.NewDayService(repo, app.DefaultRules())

	meal, _, err := svc.UndoLastMeal(context.Background(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meal == nil || len(meal) != 0 {
		t.Fatalf("expected an empty non-nil meal, got %#v", meal)
	}
}

func TestSetCompletedAndClear(t *testing.T) {
	repo, store := storeRepo(testDay("a", base), testDay("b", base.Add(time.Hour)))
	svc := app.NewDayService(repo, app.DefaultRules())
	ctx := context.Background()

	if _, err := svc.SetCompleted(ctx, "a", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store["a"].Completed {
		t.Fatal("day a should be completed")
	}
	n, err := svc.ClearCompleted(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("cleared %d days, want 1", n)
	}
	if _, ok := store["b"]; !ok {
		t.Fatal("active day must survive")
	}

	ok, err := svc.DeleteDay(ctx, "b")
	if err != nil || !ok {
		t.Fatalf("DeleteDay = %v, %v", ok, err)
	}
	ok, err = svc.DeleteDay(ctx, "b")
	if err != nil || ok {
		t.Fatalf("second DeleteDay = %v, %v", ok, err)
	}
}
