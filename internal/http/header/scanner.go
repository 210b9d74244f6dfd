package header

import (
	"bytes"

	"golang.org/x/net/http/httpguts"
)

// NextLine returns the line starting at from, without its terminator. CRLF
// and a bare LF both end a line. ok is false when buf holds no terminator
// after from.
func NextLine(buf []byte, from int) (line []byte, next int, ok bool) {
	if from >= len(buf) {
		return nil, from, false
	}
	idx := bytes.IndexByte(buf[from:], '\n')
	if idx == -1 {
		return nil, from, false
	}
	line = buf[from : from+idx]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, from + idx + 1, true
}

func splitOnce(b []byte, sep byte) (before, after []byte, found bool) {
	idx := bytes.IndexByte(b, sep)
	if idx == -1 {
		return b, nil, false
	}
	return b[:idx], b[idx+1:], true
}

func isOWS(c byte) bool {
	return c == ' ' || c == '\t'
}

func trimOWS(b []byte) []byte {
	for len(b) > 0 && isOWS(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isOWS(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

func ValidName(name []byte) bool {
	return len(name) > 0 && httpguts.ValidHeaderFieldName(string(name))
}

func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return true
}
