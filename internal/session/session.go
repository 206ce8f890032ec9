// Package session runs the interactive bill menu against a bill book.
//
// Every iteration renders the menu with the current bill count, reads a
// command and the follow-up replies it needs, applies it and starts over until
// Exit is chosen. Mistakes made by the user are reported as a one-line notice
// and never end the session; only the end of the input stream or a failing
// bill book does.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/GustavoCaso/billtrace/internal/bill"
	"github.com/GustavoCaso/billtrace/internal/logger"
	"github.com/GustavoCaso/billtrace/internal/storage"
	"github.com/GustavoCaso/billtrace/internal/util"
)

const (
	promptName      = "Enter the name of the bill:"
	promptAmount    = "Enter the amount of the bill:"
	promptNewAmount = "Enter the new amount of the bill:"
	promptConfirm   = "Enter Ok to confirm or Cancel to go back:"

	noticeNotFound      = "Bill not found"
	noticeInvalidChoice = "Invalid choice"
	noticeInvalidInput  = "Invalid input"
	noticeInvalidAmount = "Invalid amount"
	noticeGoingBack     = "Going back"
	noticeReadError     = "Error reading input"
	noticeExit          = "Exit"
)

type handler func(s *Session, ctx context.Context) error

var handlers = map[Choice]handler{
	AddBill:    (*Session).addBill,
	ViewBills:  (*Session).viewBills,
	RemoveBill: (*Session).removeBill,
	EditBill:   (*Session).editBill,
}

type Session struct {
	storage storage.Storage
	input   *lineReader
	out     io.Writer
	logger  *logger.Logger
}

func New(s storage.Storage, in io.Reader, out io.Writer, l *logger.Logger) *Session {
	session := &Session{
		storage: s,
		out:     out,
		logger:  l,
	}

	session.input = newLineReader(in, func(err error) {
		l.Warn("Failed to read input, retrying", "error", err)
		util.Notice(out, noticeReadError, "red")
	})

	return session
}

// Run drives the session until Exit is chosen, in which case it returns nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		total, err := s.storage.Len(ctx)
		if err != nil {
			return fmt.Errorf("failed to count bills: %w", err)
		}

		renderMenu(s.out, total)

		input, err := s.input.ReadLine()
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		if input == "" {
			continue
		}

		choice, ok := ParseChoice(input)
		if !ok {
			s.logger.Debug("Unknown menu choice", "input", input)
			util.Notice(s.out, noticeInvalidChoice, "red")
			continue
		}

		if choice == Exit {
			fmt.Fprintln(s.out, noticeExit)
			s.logger.Info("Session finished", "bills", total)
			return nil
		}

		if err = s.dispatch(ctx, choice); err != nil {
			return err
		}
	}
}

// dispatch runs the command and turns user mistakes into notices. Any error it
// returns ends the session.
func (s *Session) dispatch(ctx context.Context, choice Choice) error {
	err := handlers[choice](s, ctx)

	var notice string
	switch {
	case err == nil:
		return nil
	case storage.IsNotFound(err):
		notice = noticeNotFound
	case errors.Is(err, bill.ErrInvalidAmount):
		notice = noticeInvalidAmount
	case errors.Is(err, errEmptyReply), errors.Is(err, bill.ErrEmptyName):
		notice = noticeInvalidInput
	default:
		s.logger.Error("Command failed", "command", choice.String(), "error", err)
		return fmt.Errorf("%s: %w", choice, err)
	}

	s.logger.Debug("Command abandoned", "command", choice.String(), "reason", err.Error())
	util.Notice(s.out, notice, "red")

	return nil
}

// ask prints the prompt and reads the reply. Empty replies are rejected with
// errEmptyReply.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprintln(s.out, prompt)

	reply, err := s.input.ReadLine()
	if err != nil {
		return "", fmt.Errorf("reading reply to %q: %w", prompt, err)
	}

	if reply == "" {
		return "", errEmptyReply
	}

	return reply, nil
}
