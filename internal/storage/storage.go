package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/billtrace/internal/bill"
)

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return "bill not found"
	}
	return fmt.Sprintf("bill %q not found", e.Name)
}

func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// Storage is the bill book of a session. Bills are filed under their name and
// returned by value.
type Storage interface {
	// Insert files b under b.Name, replacing any bill with the same name.
	Insert(ctx context.Context, b bill.Bill) (replaced bool, err error)
	Get(ctx context.Context, name string) (bill.Bill, error)
	// UpdateAmount changes the amount of an existing bill. The name is never
	// changed.
	UpdateAmount(ctx context.Context, name string, amount decimal.Decimal) error
	Remove(ctx context.Context, name string) error
	Len(ctx context.Context) (int, error)
	// Bills returns every stored bill. Callers must not rely on the order.
	Bills(ctx context.Context) ([]bill.Bill, error)

	Close() error
}
