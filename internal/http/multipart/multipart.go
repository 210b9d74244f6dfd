// Package multipart splits multipart/form-data bodies into parts without
// copying them. A Part only records where its content sits in the body it
// was parsed from.
package multipart

import (
	"bytes"
	"errors"
	"iter"
	"mime"

	"httpintake/internal/http/header"
	"httpintake/internal/http/httperror"
)

const (
	ContentType    = "multipart/form-data"
	maxBoundaryLen = 70
)

// Span is the half-open range [Start, End) of a body.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Within reports whether s can be used to slice a buffer of size n.
func (s Span) Within(n int) bool {
	return 0 <= s.Start && s.Start <= s.End && s.End <= n
}

type Part struct {
	FieldName   string
	FileName    string
	ContentType string
	Span        Span
}

func (p Part) IsFile() bool {
	return p.FileName != ""
}

// Multipart is the ordered, finite list of parts of one body. It can be
// iterated any number of times.
type Multipart struct {
	parts []Part
}

func (m Multipart) Len() int {
	return len(m.parts)
}

func (m Multipart) At(i int) Part {
	return m.parts[i]
}

func (m Multipart) All() iter.Seq2[int, Part] {
	return func(yield func(int, Part) bool) {
		for i, p := range m.parts {
			if !yield(i, p) {
				return
			}
		}
	}
}

func (m Multipart) Files() []Part {
	var files []Part
	for _, p := range m.parts {
		if p.IsFile() {
			files = append(files, p)
		}
	}
	return files
}

// BoundaryFrom extracts the boundary parameter of a multipart/form-data
// content type. Boundaries made of anything but token characters are
// refused.
func BoundaryFrom(contentType string) (string, error) {
	if contentType == "" {
		return "", httperror.New(httperror.KindDecode, "missing content-type")
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", httperror.Wrap(httperror.KindDecode, err, "malformed content-type")
	}
	if mediaType != ContentType {
		return "", httperror.New(httperror.KindDecode, "content-type %q is not %s", mediaType, ContentType)
	}
	boundary, ok := params["boundary"]
	if !ok || boundary == "" {
		return "", httperror.New(httperror.KindDecode, "missing boundary parameter")
	}
	if len(boundary) > maxBoundaryLen || !header.IsToken(boundary) {
		return "", httperror.New(httperror.KindDecode, "invalid boundary %q", boundary)
	}
	return boundary, nil
}

// Parse walks body delimiter by delimiter. Content spans are offsets into
// body itself.
func Parse(body []byte, boundary string) (Multipart, error) {
	if boundary == "" {
		return Multipart{}, httperror.New(httperror.KindDecode, "missing boundary parameter")
	}
	delim := []byte("--" + boundary)
	marker := append([]byte{'\n'}, delim...)

	pos, err := firstDelimiter(body, delim, marker)
	if err != nil {
		return Multipart{}, err
	}

	var m Multipart
	for {
		after := pos + len(delim)
		if bytes.HasPrefix(body[after:], []byte("--")) {
			return m, nil
		}

		partStart, ok := skipDelimiterLine(body, after)
		if !ok {
			return Multipart{}, httperror.New(httperror.KindDecode, "garbage after boundary at offset %d", after)
		}

		h, contentStart, err := header.ParseBlock(body, partStart)
		if err != nil {
			if errors.Is(err, header.ErrIncomplete) {
				return Multipart{}, httperror.New(httperror.KindDecode, "part %d headers are not terminated", m.Len())
			}
			return Multipart{}, partHeaderError(err)
		}

		idx := bytes.Index(body[contentStart:], marker)
		if idx == -1 {
			return Multipart{}, httperror.New(httperror.KindDecode, "closing boundary not found")
		}
		next := contentStart + idx + 1
		contentEnd := contentStart + idx
		if idx > 0 && body[contentEnd-1] == '\r' {
			contentEnd--
		}

		part, err := describePart(h)
		if err != nil {
			return Multipart{}, err
		}
		part.Span = Span{Start: contentStart, End: contentEnd}
		m.parts = append(m.parts, part)

		pos = next
	}
}

// partHeaderError reports a bad part head as a decode failure only. The
// head parser's own kind is dropped so the error never matches a
// request-head sentinel.
func partHeaderError(err error) error {
	var he *httperror.Error
	if errors.As(err, &he) {
		return httperror.New(httperror.KindDecode, "malformed part headers: %s", he.Msg)
	}
	return httperror.Wrap(httperror.KindDecode, err, "malformed part headers")
}

// firstDelimiter finds the opening delimiter, allowing a preamble before it.
func firstDelimiter(body, delim, marker []byte) (int, error) {
	if bytes.HasPrefix(body, delim) {
		return 0, nil
	}
	idx := bytes.Index(body, marker)
	if idx == -1 {
		return 0, httperror.New(httperror.KindDecode, "boundary not found in body")
	}
	return idx + 1, nil
}

// skipDelimiterLine moves past optional linear whitespace and the line
// ending that close a delimiter line.
func skipDelimiterLine(body []byte, from int) (int, bool) {
	i := from
	for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
		i++
	}
	if i < len(body) && body[i] == '\r' {
		i++
	}
	if i < len(body) && body[i] == '\n' {
		return i + 1, true
	}
	return 0, false
}

func describePart(h header.Header) (Part, error) {
	disposition, ok := h.Get("Content-Disposition")
	if !ok {
		return Part{}, httperror.New(httperror.KindDecode, "part without content-disposition")
	}
	kind, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return Part{}, httperror.Wrap(httperror.KindDecode, err, "malformed content-disposition")
	}
	if kind != "form-data" {
		return Part{}, httperror.New(httperror.KindDecode, "content-disposition %q is not form-data", kind)
	}
	name, ok := params["name"]
	if !ok {
		return Part{}, httperror.New(httperror.KindDecode, "form-data part without a name")
	}
	return Part{
		FieldName:   name,
		FileName:    params["filename"],
		ContentType: h.Value("Content-Type"),
	}, nil
}
