package header

import (
	"bytes"
	"errors"
	"strings"

	"httpintake/internal/http/httperror"
)

// ErrIncomplete means buf ended before the head did. It is not terminal,
// the caller may retry once more bytes have arrived.
var ErrIncomplete = errors.New("head incomplete")

type Head struct {
	Method  string
	Target  string
	Version string
	Header  Header
}

// ParseHead scans the request line and the header block at the start of
// buf. On success it returns the number of bytes the head occupied, so
// buf[n:] is the start of the body.
func ParseHead(buf []byte, limits Limits) (*Head, int, error) {
	limits = limits.Normalize()

	pos := 0
	var line []byte
	for {
		var ok bool
		var next int
		line, next, ok = NextLine(buf, pos)
		if !ok {
			return nil, 0, incomplete(buf, limits)
		}
		if next > limits.MaxBlockSize {
			return nil, 0, httperror.New(httperror.KindHeaderValue, "request head exceeds %d bytes", limits.MaxBlockSize)
		}
		pos = next
		// Empty lines ahead of the request line are tolerated.
		if len(line) > 0 {
			break
		}
	}

	head := &Head{}
	var err error
	head.Method, head.Target, head.Version, err = parseStartLine(line)
	if err != nil {
		return nil, 0, err
	}

	for {
		line, next, ok := NextLine(buf, pos)
		if !ok {
			return nil, 0, incomplete(buf, limits)
		}
		if next > limits.MaxBlockSize {
			return nil, 0, httperror.New(httperror.KindHeaderValue, "request head exceeds %d bytes", limits.MaxBlockSize)
		}
		pos = next

		if len(line) == 0 {
			return head, pos, nil
		}

		if isOWS(line[0]) {
			if head.Header.Len() == 0 {
				return nil, 0, httperror.New(httperror.KindHeaderName, "continuation line without a preceding field")
			}
			if more := trimOWS(line); len(more) > 0 {
				head.Header.appendToLast(string(more))
			}
			if last := head.Header.fields[head.Header.Len()-1]; len(last.Value) > limits.MaxValueSize {
				return nil, 0, httperror.New(httperror.KindHeaderValue, "value of %q exceeds %d bytes", last.Name, limits.MaxValueSize)
			}
			continue
		}

		name, value, err := splitField(line)
		if err != nil {
			return nil, 0, err
		}
		if len(value) > limits.MaxValueSize {
			return nil, 0, httperror.New(httperror.KindHeaderValue, "value of %q exceeds %d bytes", name, limits.MaxValueSize)
		}
		if head.Header.Len() >= limits.MaxFields {
			return nil, 0, httperror.New(httperror.KindHeaderValue, "more than %d header fields", limits.MaxFields)
		}
		head.Header.Add(string(name), string(value))
	}
}

// incomplete turns running out of input into the right error: a head that
// has already outgrown the block bound will never become valid.
func incomplete(buf []byte, limits Limits) error {
	if len(buf) > limits.MaxBlockSize {
		return httperror.New(httperror.KindHeaderValue, "request head exceeds %d bytes", limits.MaxBlockSize)
	}
	return ErrIncomplete
}

func parseStartLine(startLine []byte) (method, target, version string, err error) {
	parts := bytes.Split(startLine, []byte{' '})
	if len(parts) != 3 {
		return "", "", "", httperror.New(httperror.KindRequestLine, "expected 3 fields, got %d", len(parts))
	}
	for _, p := range parts {
		if len(p) == 0 {
			return "", "", "", httperror.New(httperror.KindRequestLine, "empty field")
		}
	}

	method = string(parts[0])
	if !validMethod(method) {
		return "", "", "", httperror.New(httperror.KindRequestLine, "invalid method %q", method)
	}

	target = string(parts[1])
	for i := 0; i < len(target); i++ {
		if c := target[i]; c <= ' ' || c == 0x7f {
			return "", "", "", httperror.New(httperror.KindRequestLine, "control byte in target")
		}
	}

	version = string(parts[2])
	if !strings.HasPrefix(version, "HTTP/") {
		return "", "", "", httperror.New(httperror.KindRequestLine, "invalid version %q", version)
	}

	return method, target, version, nil
}

func validMethod(method string) bool {
	if !IsToken(method) {
		return false
	}
	for i := 0; i < len(method); i++ {
		if c := method[i]; c >= 'a' && c <= 'z' {
			return false
		}
	}
	return true
}

func splitField(line []byte) (name, value []byte, err error) {
	name, rest, found := splitOnce(line, ':')
	if !found {
		return nil, nil, httperror.New(httperror.KindHeaderName, "missing colon in %q", truncate(line))
	}
	if !ValidName(name) {
		return nil, nil, httperror.New(httperror.KindHeaderName, "invalid field name %q", truncate(name))
	}
	return name, trimOWS(rest), nil
}

// ParseBlock reads a header block without folding or size bounds, as used
// inside multipart bodies. It returns the offset just past the blank line.
func ParseBlock(buf []byte, from int) (Header, int, error) {
	var h Header
	pos := from
	for {
		line, next, ok := NextLine(buf, pos)
		if !ok {
			return Header{}, 0, ErrIncomplete
		}
		pos = next
		if len(line) == 0 {
			return h, pos, nil
		}
		name, value, err := splitField(line)
		if err != nil {
			return Header{}, 0, err
		}
		h.Add(string(name), string(value))
	}
}

func truncate(b []byte) []byte {
	if len(b) > 32 {
		return b[:32]
	}
	return b
}
