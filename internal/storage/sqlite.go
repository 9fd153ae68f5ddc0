package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"paisa/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single-file SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// SQLite serializes writers; one connection avoids SQLITE_BUSY
	// on concurrent statements.
	db.SetMaxOpenConns(1)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Insert(ctx context.Context, e core.Expense) (core.Expense, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (description, amount_cents, category, month, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Description, e.Amount.Cents, e.Category, e.Month, e.Date,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("last insert id: %w", err)
	}

	// Re-read the stored row so the caller gets exactly what persisted
	created, ok, err := s.GetByID(ctx, id)
	if err != nil {
		return core.Expense{}, err
	}
	if !ok {
		return core.Expense{}, fmt.Errorf("inserted expense %d not found", id)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", created.ID,
		"description", created.Description,
		"amount_cents", created.Amount.Cents,
		"month", created.Month)

	return created, nil
}

func (s *SQLiteStore) ListAll(ctx context.Context, month string) ([]core.Expense, error) {
	query := `SELECT id, description, amount_cents, category, month, date, created_at
	          FROM expenses ORDER BY date DESC, id DESC`
	args := []any{}
	if month != "" && month != "All" {
		query = `SELECT id, description, amount_cents, category, month, date, created_at
		         FROM expenses WHERE month = ? ORDER BY date DESC, id DESC`
		args = append(args, month)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (core.Expense, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, description, amount_cents, category, month, date, created_at
		 FROM expenses WHERE id = ?`, id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, false, nil
	}
	if err != nil {
		return core.Expense{}, false, err
	}
	return e, true, nil
}

func (s *SQLiteStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// Aggregate groups over the full record set. The grouping itself lives
// in core so the summary endpoint and the memory store agree exactly.
func (s *SQLiteStore) Aggregate(ctx context.Context) (core.Summary, error) {
	expenses, err := s.ListAll(ctx, "")
	if err != nil {
		return core.Summary{}, err
	}
	return core.Summarize(expenses), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (core.Expense, error) {
	var (
		e       core.Expense
		created string
	)
	if err := row.Scan(&e.ID, &e.Description, &e.Amount.Cents, &e.Category,
		&e.Month, &e.Date, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Expense{}, err
		}
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}
	// Rows inserted by the app use RFC 3339; the column default uses
	// SQLite's datetime() format.
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		ts, err = time.Parse("2006-01-02 15:04:05", created)
		if err != nil {
			return core.Expense{}, fmt.Errorf("parse created_at %q: %w", created, err)
		}
	}
	e.CreatedAt = ts
	return e, nil
}
