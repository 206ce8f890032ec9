package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/billtrace/internal/bill"
)

func TestBillsAreFiledUnderTheirName(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, name := range []string{"Rent", "Gas", "Water"} {
		if _, err := s.Insert(ctx, bill.Bill{Name: name, Amount: decimal.NewFromInt(10)}); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	if err := s.UpdateAmount(ctx, "Gas", decimal.NewFromInt(20)); err != nil {
		t.Fatalf("UpdateAmount() error = %v", err)
	}

	for key, b := range s.bills {
		if key != b.Name {
			t.Errorf("bill %q filed under %q", b.Name, key)
		}
	}
}

func TestClose(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Insert(ctx, bill.Bill{Name: "Rent", Amount: decimal.NewFromInt(1)}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if n, _ := s.Len(ctx); n != 0 {
		t.Errorf("Len() after Close() = %d, want 0", n)
	}
}
