package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEndOfInput is returned when the input stream ends while a prompt waits
// for a line.
var ErrEndOfInput = fmt.Errorf("unexpected end of input: %w", io.EOF)

var errEmptyReply = errors.New("empty reply")

type lineReader struct {
	reader *bufio.Reader
	// onError is called for every failed read that is retried.
	onError func(err error)
}

func newLineReader(r io.Reader, onError func(err error)) *lineReader {
	return &lineReader{
		reader:  bufio.NewReader(r),
		onError: onError,
	}
}

// ReadLine returns the next line without surrounding whitespace. Read errors
// other than io.EOF are retried; io.EOF before any data is ErrEndOfInput.
func (l *lineReader) ReadLine() (string, error) {
	var buf strings.Builder

	for {
		chunk, err := l.reader.ReadString('\n')
		buf.WriteString(chunk)

		switch {
		case err == nil:
			return strings.TrimSpace(buf.String()), nil
		case errors.Is(err, io.EOF):
			if buf.Len() > 0 {
				return strings.TrimSpace(buf.String()), nil
			}
			return "", ErrEndOfInput
		default:
			l.onError(err)
		}
	}
}
