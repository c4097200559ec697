package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nutrisec/internal/domain"
)

var _ domain.DayRepository = (*DB)(nil)

const dayCols = `id, title, description, weight, cal_cardio, foods, completed, created_at`

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanDay(scanner interface{ Scan(...any) error }) (*domain.Day, error) {
	var d domain.Day
	var foods string
	var completed int
	var createdAt int64

	err := scanner.Scan(
		&d.ID, &d.Title, &d.Description, &d.Weight, &d.CalCardio,
		&foods, &completed, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	d.Completed = completed != 0
	d.CreatedAt = time.Unix(0, createdAt).UTC()
	if err := json.Unmarshal([]byte(foods), &d.Foods); err != nil {
		return nil, fmt.Errorf("decode foods of day %s: %w", d.ID, err)
	}
	if d.Foods == nil {
		d.Foods = []domain.Food{}
	}
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

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func getDay(ctx context.Context, q querier, id string) (*domain.Day, error) {
	row := q.QueryRowContext(ctx, `SELECT `+dayCols+` FROM days WHERE id = ?`, id)
	d, err := scanDay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	return d, nil
}

// CreateDay inserts a new day.
func (d *DB) CreateDay(ctx context.Context, day domain.Day) error {
	foods, err := encodeFoods(day.Foods)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO days (`+dayCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		day.ID, day.Title, day.Description, day.Weight, day.CalCardio,
		foods, boolInt(day.Completed), day.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert day: %w", err)
	}
	return nil
}

// GetDay returns the day with the given ID, or nil if it does not exist.
func (d *DB) GetDay(ctx context.Context, id string) (*domain.Day, error) {
	return getDay(ctx, d.sql, id)
}

func (d *DB) listDays(ctx context.Context, query string, args ...any) ([]domain.Day, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		days = append(days, *day)
	}
	return days, rows.Err()
}

// ListDays lists every day, oldest first.
func (d *DB) ListDays(ctx context.Context) ([]domain.Day, error) {
	return d.listDays(ctx, `SELECT `+dayCols+` FROM days ORDER BY created_at, rowid`)
}

// ListLastDays lists the n most recent days, oldest first.
func (d *DB) ListLastDays(ctx context.Context, n int) ([]domain.Day, error) {
	days, err := d.listDays(ctx,
		`SELECT `+dayCols+` FROM days ORDER BY created_at DESC, rowid DESC LIMIT ?`, max(0, n))
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days, nil
}

// UpdateDay reads, mutates and writes back a day inside one transaction.
func (d *DB) UpdateDay(ctx context.Context, id string, mutate func(*domain.Day) error) (*domain.Day, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	day, err := getDay(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, domain.ErrDayNotFound
	}
	if err := mutate(day); err != nil {
		return nil, err
	}
	day.ID = id

	foods, err := encodeFoods(day.Foods)
	if err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE days SET title = ?, description = ?, weight = ?, cal_cardio = ?, foods = ?, completed = ? WHERE id = ?`,
		day.Title, day.Description, day.Weight, day.CalCardio, foods, boolInt(day.Completed), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update day: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return day, nil
}

// DeleteDay deletes a day by ID.
func (d *DB) DeleteDay(ctx context.Context, id string) (bool, error) {
	res, err := d.sql.ExecContext(ctx, `DELETE FROM days WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete day: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// DeleteCompletedDays deletes every completed day.
func (d *DB) DeleteCompletedDays(ctx context.Context) (int, error) {
	res, err := d.sql.ExecContext(ctx, `DELETE FROM days WHERE completed = 1`)
	if err != nil {
		return 0, fmt.Errorf("delete completed days: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
