package session

import (
	"context"
	"fmt"

	"github.com/GustavoCaso/billtrace/internal/bill"
	"github.com/GustavoCaso/billtrace/internal/util"
)

// addBill files a new bill. A bill with the same name is replaced without
// asking.
func (s *Session) addBill(ctx context.Context) error {
	name, err := s.ask(promptName)
	if err != nil {
		return err
	}

	input, err := s.ask(promptAmount)
	if err != nil {
		return err
	}

	amount, err := bill.ParseAmount(input)
	if err != nil {
		return err
	}

	b, err := bill.New(name, amount)
	if err != nil {
		return err
	}

	replaced, err := s.storage.Insert(ctx, b)
	if err != nil {
		return err
	}

	if replaced {
		s.logger.Info("Bill replaced", "name", b.Name, "amount", b.Amount)
	} else {
		s.logger.Info("Bill added", "name", b.Name, "amount", b.Amount)
	}

	return nil
}

func (s *Session) viewBills(ctx context.Context) error {
	bills, err := s.storage.Bills(ctx)
	if err != nil {
		return err
	}

	for _, b := range bills {
		fmt.Fprintf(s.out, "- %s\n", b)
	}

	return nil
}

func (s *Session) removeBill(ctx context.Context) error {
	name, err := s.ask(promptName)
	if err != nil {
		return err
	}

	if err = s.storage.Remove(ctx, name); err != nil {
		return err
	}

	s.logger.Info("Bill removed", "name", name)

	return nil
}

// editBill changes the amount of an existing bill once the user confirms.
// The bill is looked up again on commit instead of being held across prompts.
func (s *Session) editBill(ctx context.Context) error {
	name, err := s.ask(promptName)
	if err != nil {
		return err
	}

	if _, err = s.storage.Get(ctx, name); err != nil {
		return err
	}

	input, err := s.ask(promptNewAmount)
	if err != nil {
		return err
	}

	amount, err := bill.ParseAmount(input)
	if err != nil {
		return err
	}

	reply, err := s.ask(promptConfirm)
	if err != nil {
		return err
	}

	switch ParseConfirmation(reply) {
	case Commit:
		if err = s.storage.UpdateAmount(ctx, name, amount); err != nil {
			return err
		}
		s.logger.Info("Bill updated", "name", name, "amount", amount)
	case Cancel:
		util.Notice(s.out, noticeGoingBack, "yellow")
	case Unrecognized:
		s.logger.Debug("Unrecognized confirmation", "reply", reply)
		util.Notice(s.out, noticeInvalidInput, "red")
	}

	return nil
}
