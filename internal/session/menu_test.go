package session

import (
	"bytes"
	"testing"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input  string
		want   Choice
		wantOk bool
	}{
		{input: "1", want: AddBill, wantOk: true},
		{input: "2", want: ViewBills, wantOk: true},
		{input: "3", want: RemoveBill, wantOk: true},
		{input: "4", want: EditBill, wantOk: true},
		{input: "5", want: Exit, wantOk: true},
		{input: "0"},
		{input: "6"},
		{input: "01"},
		{input: "Add Bill"},
		{input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseChoice(tt.input)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("ParseChoice(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestChoiceString(t *testing.T) {
	if got := EditBill.String(); got != "Edit Bill" {
		t.Errorf("EditBill.String() = %q, want %q", got, "Edit Bill")
	}

	if got := Choice(42).String(); got != "Choice(42)" {
		t.Errorf("Choice(42).String() = %q, want %q", got, "Choice(42)")
	}
}

func TestParseConfirmation(t *testing.T) {
	tests := []struct {
		input string
		want  Confirmation
	}{
		{input: "Ok", want: Commit},
		{input: "Cancel", want: Cancel},
		{input: "ok", want: Unrecognized},
		{input: "OK", want: Unrecognized},
		{input: "cancel", want: Unrecognized},
		{input: "yes", want: Unrecognized},
		{input: "", want: Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseConfirmation(tt.input); got != tt.want {
				t.Errorf("ParseConfirmation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderMenu(t *testing.T) {
	var buf bytes.Buffer
	renderMenu(&buf, 3)

	want := `==============================
1. Add Bill
2. View Bills
3. Remove Bill
4. Edit Bill
5. Exit
Total: 3
Enter your choice:
==============================
`
	if buf.String() != want {
		t.Errorf("renderMenu() = %q, want %q", buf.String(), want)
	}
}
