package session

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	var retries []error
	reader := newLineReader(
		&flakyReader{r: strings.NewReader("  first  \n\nsecond\r\nlast"), failures: 1},
		func(err error) { retries = append(retries, err) },
	)

	want := []string{"first", "", "second", "last"}
	for _, w := range want {
		got, err := reader.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() unexpected error: %v", err)
		}
		if got != w {
			t.Errorf("ReadLine() = %q, want %q", got, w)
		}
	}

	if _, err := reader.ReadLine(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("ReadLine() at end error = %v, want %v", err, ErrEndOfInput)
	}

	if len(retries) != 1 {
		t.Errorf("Expected 1 retried error, got %d", len(retries))
	}
}

type chunkedReader struct {
	chunks []string
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}

	chunk := c.chunks[0]
	c.chunks = c.chunks[1:]

	if chunk == "!" {
		return 0, errors.New("interrupted")
	}

	return copy(p, chunk), nil
}

func TestReadLineKeepsDataAcrossRetries(t *testing.T) {
	reader := newLineReader(&chunkedReader{chunks: []string{"Ren", "!", "t\n"}}, func(error) {})

	got, err := reader.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() unexpected error: %v", err)
	}

	if got != "Rent" {
		t.Errorf("ReadLine() = %q, want %q", got, "Rent")
	}
}
