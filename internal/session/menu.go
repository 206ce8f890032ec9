package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Choice is one of the main menu commands.
type Choice int

const (
	AddBill Choice = iota + 1
	ViewBills
	RemoveBill
	EditBill
	Exit
)

var choices = []Choice{AddBill, ViewBills, RemoveBill, EditBill, Exit}

var choiceLabels = map[Choice]string{
	AddBill:    "Add Bill",
	ViewBills:  "View Bills",
	RemoveBill: "Remove Bill",
	EditBill:   "Edit Bill",
	Exit:       "Exit",
}

// ParseChoice maps the digits 1 to 5 to their command.
func ParseChoice(input string) (Choice, bool) {
	for _, c := range choices {
		if input == strconv.Itoa(int(c)) {
			return c, true
		}
	}
	return 0, false
}

func (c Choice) String() string {
	if label, ok := choiceLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// Confirmation is the reply to the edit commit prompt.
type Confirmation int

const (
	Unrecognized Confirmation = iota
	Commit
	Cancel
)

// ParseConfirmation is case sensitive: only "Ok" and "Cancel" are recognized.
func ParseConfirmation(input string) Confirmation {
	switch input {
	case "Ok":
		return Commit
	case "Cancel":
		return Cancel
	default:
		return Unrecognized
	}
}

const menuWidth = 30

func renderMenu(w io.Writer, total int) {
	separator := strings.Repeat("=", menuWidth)

	fmt.Fprintln(w, separator)
	for _, c := range choices {
		fmt.Fprintf(w, "%d. %s\n", int(c), c)
	}
	fmt.Fprintf(w, "Total: %d\n", total)
	fmt.Fprintln(w, "Enter your choice:")
	fmt.Fprintln(w, separator)
}
