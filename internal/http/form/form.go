// Package form decodes application/x-www-form-urlencoded bodies and query
// strings.
package form

import (
	"bytes"
	"strings"
)

const ContentType = "application/x-www-form-urlencoded"

type Pair struct {
	Key   string
	Value string
}

// Values keeps pairs in the order they were sent. Keys may repeat.
type Values struct {
	pairs []Pair
}

func (v Values) Get(key string) (string, bool) {
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (v Values) All(key string) []string {
	var out []string
	for _, p := range v.pairs {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

func (v Values) Len() int {
	return len(v.pairs)
}

func (v Values) Pairs() []Pair {
	out := make([]Pair, len(v.pairs))
	copy(out, v.pairs)
	return out
}

// Decode splits data on '&' and each segment on its first '='. Empty
// segments are dropped, a segment without '=' is a key with an empty value.
func Decode(data []byte) Values {
	var v Values
	for len(data) > 0 {
		var segment []byte
		if idx := bytes.IndexByte(data, '&'); idx >= 0 {
			segment, data = data[:idx], data[idx+1:]
		} else {
			segment, data = data, nil
		}
		if len(segment) == 0 {
			continue
		}
		key, value := segment, []byte(nil)
		if idx := bytes.IndexByte(segment, '='); idx >= 0 {
			key, value = segment[:idx], segment[idx+1:]
		}
		v.pairs = append(v.pairs, Pair{Key: Unescape(key), Value: Unescape(value)})
	}
	return v
}

// Unescape reverses percent-encoding with '+' standing for a space. It
// never fails: a '%' not followed by two hex digits is kept as is, invalid
// UTF-8 becomes U+FFFD and carriage returns are dropped.
func Unescape(s []byte) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			out = append(out, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			out = append(out, c)
		}
	}
	decoded := strings.ToValidUTF8(string(out), "\uFFFD")
	return strings.ReplaceAll(decoded, "\r", "")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
