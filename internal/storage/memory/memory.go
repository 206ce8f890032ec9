// Package memory keeps the bill book in a plain map.
package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"

	"github.com/GustavoCaso/billtrace/internal/bill"
	"github.com/GustavoCaso/billtrace/internal/storage"
)

type Storage struct {
	bills map[string]bill.Bill
}

var _ storage.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		bills: map[string]bill.Bill{},
	}
}

func (s *Storage) Insert(_ context.Context, b bill.Bill) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}

	_, replaced := s.bills[b.Name]
	s.bills[b.Name] = b

	return replaced, nil
}

func (s *Storage) Get(_ context.Context, name string) (bill.Bill, error) {
	b, ok := s.bills[name]
	if !ok {
		return bill.Bill{}, &storage.NotFoundError{Name: name}
	}

	return b, nil
}

func (s *Storage) UpdateAmount(_ context.Context, name string, amount decimal.Decimal) error {
	b, ok := s.bills[name]
	if !ok {
		return &storage.NotFoundError{Name: name}
	}

	b.Amount = amount
	if err := b.Validate(); err != nil {
		return err
	}

	s.bills[name] = b

	return nil
}

func (s *Storage) Remove(_ context.Context, name string) error {
	if _, ok := s.bills[name]; !ok {
		return &storage.NotFoundError{Name: name}
	}

	delete(s.bills, name)

	return nil
}

func (s *Storage) Len(_ context.Context) (int, error) {
	return len(s.bills), nil
}

func (s *Storage) Bills(_ context.Context) ([]bill.Bill, error) {
	names := maps.Keys(s.bills)
	sort.Strings(names)

	bills := make([]bill.Bill, 0, len(names))
	for _, name := range names {
		bills = append(bills, s.bills[name])
	}

	return bills, nil
}

func (s *Storage) Close() error {
	s.bills = map[string]bill.Bill{}
	return nil
}
