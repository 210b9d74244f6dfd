package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

const requestIDLength = 16

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

type Random interface {
	String(length int) (string, error)
	RequestID() string
}

type random struct {
	reader io.Reader
}

func New() Random {
	return &random{reader: rand.Reader}
}

func (ran *random) String(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)

	if _, err := io.ReadFull(ran.reader, b); err != nil {
		return "", err
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return string(b), nil
}

// RequestID returns an identifier for correlating the log lines of one
// request, or "unknown" when the entropy source fails.
func (ran *random) RequestID() string {
	id, err := ran.String(requestIDLength)
	if err != nil {
		return "unknown"
	}
	return id
}
