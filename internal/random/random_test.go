package random

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingReader struct {
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, f.err
}

func TestRandom_String(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"ValidLengthZero", 0, false},
		{"ValidPositiveLength", 10, false},
		{"NegativeLength", -1, true},
		{"VeryLargeLength", 1_000_000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			randomizer := New()

			result, err := randomizer.String(tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("String() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && len(result) != tt.length {
				t.Errorf("String() length = %v, want %v", len(result), tt.length)
			}
		})
	}
}

func TestRandomWithFailingReader_String(t *testing.T) {
	var randomizer Random
	var errEntropy = fmt.Errorf("entropy source exhausted")
	randomizer = &random{reader: &failingReader{err: errEntropy}}
	t.Run("test failing reader", func(t *testing.T) {
		result, err := randomizer.String(20)
		if !errors.Is(err, errEntropy) {
			t.Errorf("String() error = %v, wantErr %v", err, errEntropy)
			return
		}

		if result != "" {
			t.Errorf("String() result = %v, want an empty string due to error", result)
		}
	})
}

func TestRequestID(t *testing.T) {
	randomizer := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := randomizer.RequestID()
		assert.Len(t, id, requestIDLength)
		assert.Regexp(t, `^[a-z0-9]+$`, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	failing := &random{reader: &failingReader{err: errors.New("nope")}}
	assert.Equal(t, "unknown", failing.RequestID())
}
