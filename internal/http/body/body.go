// Package body materialises a request body sized by Content-Length.
package body

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"httpintake/internal/http/header"
	"httpintake/internal/http/httperror"
)

// MaxConsecutiveEmptyReads bounds how often a reader may return no data
// and no error before a read gives up with io.ErrNoProgress.
const MaxConsecutiveEmptyReads = 100

// Length reports how many body bytes the head declares. Transfer codings
// are not decoded here, so any Transfer-Encoding field is refused.
func Length(h header.Header, limits header.Limits) (int, error) {
	if te, ok := h.Get("Transfer-Encoding"); ok {
		return 0, httperror.New(httperror.KindUnsupportedEncoding, "transfer-encoding %q", te)
	}

	values := h.Values("Content-Length")
	if len(values) == 0 {
		return 0, nil
	}

	length := -1
	for _, raw := range values {
		n, err := parseLength(raw)
		if err != nil {
			return 0, err
		}
		if length != -1 && n != length {
			return 0, httperror.New(httperror.KindHeaderValue, "conflicting content-length values")
		}
		length = n
	}

	if limit := limits.Normalize().MaxBodySize; length > limit {
		return 0, httperror.New(httperror.KindHeaderValue, "content-length %d exceeds %d", length, limit)
	}
	return length, nil
}

func parseLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, httperror.New(httperror.KindHeaderValue, "empty content-length")
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, httperror.New(httperror.KindHeaderValue, "invalid content-length %q", raw)
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperror.Wrap(httperror.KindHeaderValue, err, "content-length out of range")
	}
	return n, nil
}

// Read returns exactly Length bytes of body in a buffer the caller owns,
// taking them first from buffered and then from r. Bytes of buffered past
// the body are returned as surplus. r may be nil when buffered is all the
// input there is.
func Read(h header.Header, limits header.Limits, buffered []byte, r io.Reader) (body, surplus []byte, err error) {
	n, err := Length(h, limits)
	if err != nil {
		return nil, nil, err
	}

	body = make([]byte, n)
	have := copy(body, buffered)
	if have == n {
		return body, buffered[n:], nil
	}

	if r == nil {
		return nil, nil, httperror.New(httperror.KindConnectionClosed, "body has %d of %d bytes", have, n)
	}
	empty := 0
	for have < n {
		m, err := r.Read(body[have:])
		have += m
		if have == n {
			break
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, httperror.ErrConnectionClosed) {
				return nil, nil, httperror.Wrap(httperror.KindConnectionClosed, err, "stream ended before body was complete")
			}
			return nil, nil, err
		}
		if m > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= MaxConsecutiveEmptyReads {
			return nil, nil, io.ErrNoProgress
		}
	}
	return body, nil, nil
}
