package request

import (
	"net/url"
	"strings"
	"sync"

	"httpintake/internal/http/form"
	"httpintake/internal/http/header"
	"httpintake/internal/http/httperror"
	"httpintake/internal/http/multipart"

	"golang.org/x/net/http/httpguts"
)

// Request is one parsed request. It is never modified after the parser
// hands it out, so it can be shared between goroutines. The slice returned
// by Body and BodyPart must be treated as read-only.
type Request struct {
	method   string
	target   string
	path     string
	rawQuery string
	version  string
	header   header.Header
	body     []byte

	formOnce sync.Once
	form     form.Values

	queryOnce sync.Once
	query     form.Values

	multipartOnce sync.Once
	multipart     multipart.Multipart
	multipartErr  error
}

func newRequest(head *header.Head, body []byte) (*Request, error) {
	rawPath, rawQuery, _ := strings.Cut(head.Target, "?")
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, httperror.Wrap(httperror.KindRequestLine, err, "undecodable target")
	}
	return &Request{
		method:   head.Method,
		target:   head.Target,
		path:     path,
		rawQuery: rawQuery,
		version:  head.Version,
		header:   head.Header,
		body:     body,
	}, nil
}

func (r *Request) Method() string   { return r.method }
func (r *Request) Target() string   { return r.target }
func (r *Request) Path() string     { return r.path }
func (r *Request) RawQuery() string { return r.rawQuery }
func (r *Request) Version() string  { return r.version }
func (r *Request) Body() []byte     { return r.body }

func (r *Request) Header(name string) (string, bool) {
	return r.header.Get(name)
}

func (r *Request) HeaderValues(name string) []string {
	return r.header.Values(name)
}

func (r *Request) Headers() []header.Field {
	return r.header.Fields()
}

func (r *Request) ContentLength() int {
	return len(r.body)
}

// ContentType is the lowercased media type of the body without parameters.
func (r *Request) ContentType() string {
	ct, ok := r.header.Get("Content-Type")
	if !ok {
		return ""
	}
	mediaType, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// KeepAlive reports whether the connection may carry another request.
func (r *Request) KeepAlive() bool {
	conn := r.header.Values("Connection")
	if r.version == "HTTP/1.0" {
		return httpguts.HeaderValuesContainsToken(conn, "keep-alive")
	}
	return !httpguts.HeaderValuesContainsToken(conn, "close")
}

// Form looks key up in a urlencoded body. Bodies of any other type have
// no form fields.
func (r *Request) Form(key string) (string, bool) {
	return r.FormValues().Get(key)
}

func (r *Request) FormValues() form.Values {
	r.formOnce.Do(func() {
		if r.ContentType() == form.ContentType {
			r.form = form.Decode(r.body)
		}
	})
	return r.form
}

func (r *Request) Query(key string) (string, bool) {
	return r.QueryValues().Get(key)
}

func (r *Request) QueryValues() form.Values {
	r.queryOnce.Do(func() {
		r.query = form.Decode([]byte(r.rawQuery))
	})
	return r.query
}

func (r *Request) Boundary() (string, error) {
	return multipart.BoundaryFrom(r.header.Value("Content-Type"))
}

// Multipart splits a multipart/form-data body into parts. The result, or
// the failure, is computed once.
func (r *Request) Multipart() (multipart.Multipart, error) {
	r.multipartOnce.Do(func() {
		boundary, err := r.Boundary()
		if err != nil {
			r.multipartErr = err
			return
		}
		r.multipart, r.multipartErr = multipart.Parse(r.body, boundary)
	})
	return r.multipart, r.multipartErr
}

// BodyPart returns the bytes of span without copying them. ok is false if
// span does not fit the body.
func (r *Request) BodyPart(span multipart.Span) ([]byte, bool) {
	if !span.Within(len(r.body)) {
		return nil, false
	}
	return r.body[span.Start:span.End], true
}
