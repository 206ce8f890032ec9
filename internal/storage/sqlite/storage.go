// Package sqlite keeps the bill book in an in-memory SQLite database. Nothing
// is written to disk; the database goes away with the connection.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/billtrace/internal/bill"
	"github.com/GustavoCaso/billtrace/internal/storage"
)

const source = "file::memory:"

type Storage struct {
	db *sql.DB
}

var _ storage.Storage = (*Storage)(nil)

func New() (*Storage, error) {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: opens its own database, so the pool is
	// pinned to a single long-lived connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Insert(ctx context.Context, b bill.Bill) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}

	var count int
	err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills WHERE name = ?", b.Name).Scan(&count)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bills(name, amount) VALUES(?, ?)
		ON CONFLICT(name) DO UPDATE SET amount = excluded.amount`,
		b.Name,
		b.Amount.String(),
	)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit bill insert: %w", err)
	}

	return count > 0, nil
}

func (s *Storage) Get(ctx context.Context, name string) (bill.Bill, error) {
	row := s.db.QueryRowContext(ctx, "SELECT name, amount FROM bills WHERE name = ?", name)

	b, err := billFromRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return bill.Bill{}, &storage.NotFoundError{Name: name}
	}

	return b, err
}

func (s *Storage) UpdateAmount(ctx context.Context, name string, amount decimal.Decimal) error {
	if err := bill.ValidateAmount(amount); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "UPDATE bills SET amount = ? WHERE name = ?", amount.String(), name)
	if err != nil {
		return err
	}

	return notFoundIfUntouched(result, name)
}

func (s *Storage) Remove(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE name = ?", name)
	if err != nil {
		return err
	}

	return notFoundIfUntouched(result, name)
}

func (s *Storage) Len(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills").Scan(&count)
	return count, err
}

func (s *Storage) Bills(ctx context.Context) ([]bill.Bill, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, amount FROM bills ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := []bill.Bill{}
	for rows.Next() {
		b, billErr := billFromRow(rows.Scan)
		if billErr != nil {
			return bills, billErr
		}

		bills = append(bills, b)
	}

	return bills, rows.Err()
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func billFromRow(scan func(dest ...any) error) (bill.Bill, error) {
	var name, amount string

	if err := scan(&name, &amount); err != nil {
		return bill.Bill{}, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return bill.Bill{}, fmt.Errorf("stored amount %q for bill %q is corrupt: %w", amount, name, err)
	}

	return bill.Bill{Name: name, Amount: value}, nil
}

func notFoundIfUntouched(result sql.Result, name string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return &storage.NotFoundError{Name: name}
	}

	return nil
}
