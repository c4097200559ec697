package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"nutrisec/internal/domain"
)

var _ domain.DayRepository = (*DB)(nil)

const dayCols = "id, title, description, weight, cal_cardio, foods, completed, created_at"

func scanDay(scanner interface{ Scan(...any) error }) (*domain.Day, error) {
	var d domain.Day
	var foods []byte
	if err := scanner.Scan(&d.ID, &d.Title, &d.Description, &d.Weight, &d.CalCardio, &foods, &d.Completed, &d.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(foods, &d.Foods); err != nil {
		return nil, fmt.Errorf("decode foods of day %s: %w", d.ID, err)
	}
	if d.Foods == nil {
		d.Foods = []domain.Food{}
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d, nil
}

func encodeFoods(foods []domain.Food) (string, error) {
	if foods == nil {
		foods = []domain.Food{}
	}
	b, err := json.Marshal(foods)
	if err != nil {
		return "", fmt.Errorf("encode foods: %w", err)
	}
	return string(b), nil
}

// CreateDay inserts a new day.
func (d *DB) CreateDay(ctx context.Context, day domain.Day) error {
	foods, err := encodeFoods(day.Foods)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO days("+dayCols+") VALUES($1, $2, $3, $4, $5, $6::jsonb, $7, $8);",
		day.ID, day.Title, day.Description, day.Weight, day.CalCardio, foods, day.Completed, day.CreatedAt.UTC(),
	)
	return err
}

// GetDay returns the day with the given ID, or nil if it does not exist.
func (d *DB) GetDay(ctx context.Context, id string) (*domain.Day, error) {
	day, err := scanDay(d.sql.QueryRowContext(ctx, "SELECT "+dayCols+" FROM days WHERE id=$1;", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return day, nil
}

func (d *DB) queryDays(ctx context.Context, query string, args ...any) ([]domain.Day, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Day{}
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *day)
	}
	return out, rows.Err()
}

// ListDays returns every day, oldest first.
func (d *DB) ListDays(ctx context.Context) ([]domain.Day, error) {
	return d.queryDays(ctx, "SELECT "+dayCols+" FROM days ORDER BY created_at ASC, id ASC;")
}

// ListLastDays returns the n most recent days, oldest first.
func (d *DB) ListLastDays(ctx context.Context, n int) ([]domain.Day, error) {
	return d.queryDays(ctx,
		"SELECT "+dayCols+" FROM (SELECT "+dayCols+" FROM days ORDER BY created_at DESC, id DESC LIMIT $1) last ORDER BY created_at ASC, id ASC;",
		max(0, n),
	)
}

// UpdateDay locks the row, applies mutate and writes the result back in the
// same transaction.
func (d *DB) UpdateDay(ctx context.Context, id string, mutate func(*domain.Day) error) (*domain.Day, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	day, err := scanDay(tx.QueryRowContext(ctx, "SELECT "+dayCols+" FROM days WHERE id=$1 FOR UPDATE;", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDayNotFound
		}
		return nil, err
	}
	if err := mutate(day); err != nil {
		return nil, err
	}
	day.ID = id

	foods, err := encodeFoods(day.Foods)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE days SET title=$2, description=$3, weight=$4, cal_cardio=$5, foods=$6::jsonb, completed=$7 WHERE id=$1;",
		id, day.Title, day.Description, day.Weight, day.CalCardio, foods, day.Completed,
	); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return day, nil
}

// DeleteDay removes a day.
func (d *DB) DeleteDay(ctx context.Context, id string) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM days WHERE id=$1;", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteCompletedDays removes every completed day.
func (d *DB) DeleteCompletedDays(ctx context.Context) (int, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM days WHERE completed;")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
