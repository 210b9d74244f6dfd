package form

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	v := Decode([]byte("content=hi+there&licenseID=1234&paramsXML=%3Cabc%3E%3C%2Fabc%3E"))

	tests := []struct {
		key      string
		expect   string
		expectOK bool
	}{
		{"content", "hi there", true},
		{"licenseID", "1234", true},
		{"paramsXML", "<abc></abc>", true},
		{"something", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := v.Get(tt.key)
			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expect, got)
		})
	}
	assert.Equal(t, 3, v.Len())
}

func TestDecodeShapes(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		expect []Pair
	}{
		{"empty", "", nil},
		{"empty segments", "&&a=1&&", []Pair{{"a", "1"}}},
		{"key without value", "flag&a=1", []Pair{{"flag", ""}, {"a", "1"}}},
		{"empty value", "a=", []Pair{{"a", ""}}},
		{"only first equals splits", "a=b=c", []Pair{{"a", "b=c"}}},
		{"encoded key", "first+name=Bob&%C3%A9t%C3%A9=summer", []Pair{{"first name", "Bob"}, {"été", "summer"}}},
		{"duplicates kept in order", "a=1&a=2", []Pair{{"a", "1"}, {"a", "2"}}},
		{"trailing carriage return", "name=Bobert&age=50-99\r\n", []Pair{{"name", "Bobert"}, {"age", "50-99\n"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Decode([]byte(tt.data))
			if tt.expect == nil {
				assert.Equal(t, 0, v.Len())
				return
			}
			assert.Equal(t, tt.expect, v.Pairs())
		})
	}

	v := Decode([]byte("a=1&a=2"))
	first, _ := v.Get("a")
	assert.Equal(t, "1", first)
	assert.Equal(t, []string{"1", "2"}, v.All("a"))
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"plus is space", "a+b", "a b"},
		{"encoded plus stays plus", "a%2Bb", "a+b"},
		{"lowercase hex", "%3c%2f%3e", "</>"},
		{"truncated escape kept", "100%", "100%"},
		{"short escape kept", "%4", "%4"},
		{"non hex escape kept", "%zz", "%zz"},
		{"carriage return dropped", "line%0D%0Anext\r", "line\nnext"},
		{"invalid utf8 replaced", "%FF", "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Unescape([]byte(tt.in)))
		})
	}
}

func TestUnescapeRoundTrip(t *testing.T) {
	inputs := []string{
		"hi there",
		"<abc></abc>",
		"a+b=c&d",
		"100% sure?",
		"ünïcödé ✓",
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Unescape([]byte(url.QueryEscape(in))), in)
	}

	withCR := "one\r\ntwo\r"
	decoded := Unescape([]byte(url.QueryEscape(withCR)))
	assert.False(t, strings.Contains(decoded, "\r"))
	assert.Equal(t, "one\ntwo", decoded)
}
