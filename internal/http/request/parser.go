package request

import (
	"errors"
	"io"

	"httpintake/internal/http/body"
	"httpintake/internal/http/header"
	"httpintake/internal/http/httperror"
)

const DefaultReadSize = 4096

type Status int

const (
	Failed Status = iota
	Partial
	Complete
)

func (s Status) String() string {
	switch s {
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return "failed"
	}
}

// Parse parses a request held entirely in buf. Partial means buf stops
// before the head or the declared body does. Bytes after the body are
// ignored.
func Parse(buf []byte, limits header.Limits) (Status, *Request, error) {
	p := &Parser{limits: limits.Normalize(), readSize: DefaultReadSize, buf: buf}
	return p.Feed(nil)
}

// ReadFrom reads one request from r. Body bytes are read exactly as
// declared; whatever was read past the request is returned as surplus.
func ReadFrom(r io.Reader, limits header.Limits, readSize int) (*Request, []byte, error) {
	p := NewParser(limits, readSize)
	req, err := p.Next(r)
	if err != nil {
		return nil, nil, err
	}
	return req, p.Remaining(), nil
}

// Parser accumulates input across calls. After a Complete result the bytes
// that followed the request stay buffered for the next one.
type Parser struct {
	limits   header.Limits
	readSize int
	buf      []byte

	head    *header.Head
	headLen int
	bodyLen int

	err error
}

func NewParser(limits header.Limits, readSize int) *Parser {
	if readSize <= 0 {
		readSize = DefaultReadSize
	}
	return &Parser{limits: limits.Normalize(), readSize: readSize}
}

// Feed appends data and tries to complete a request. A failure is final:
// every later call reports the same error.
func (p *Parser) Feed(data []byte) (Status, *Request, error) {
	if p.err != nil {
		return Failed, nil, p.err
	}
	p.buf = append(p.buf, data...)

	if p.head == nil {
		head, n, err := header.ParseHead(p.buf, p.limits)
		if errors.Is(err, header.ErrIncomplete) {
			return Partial, nil, nil
		}
		if err != nil {
			return p.fail(err)
		}
		length, err := body.Length(head.Header, p.limits)
		if err != nil {
			return p.fail(err)
		}
		p.head, p.headLen, p.bodyLen = head, n, length
	}

	if len(p.buf)-p.headLen < p.bodyLen {
		return Partial, nil, nil
	}
	return p.finish(nil)
}

// Next returns the next request, reading from r whenever the buffered
// input is not enough.
func (p *Parser) Next(r io.Reader) (*Request, error) {
	status, req, err := p.Feed(nil)
	chunk := make([]byte, p.readSize)
	empty := 0
	for {
		switch status {
		case Complete:
			return req, nil
		case Failed:
			return nil, err
		}
		if p.head != nil {
			if status, req, err = p.finish(r); err != nil {
				return nil, err
			}
			continue
		}

		n, rerr := r.Read(chunk)
		if n > 0 {
			empty = 0
			status, req, err = p.Feed(chunk[:n])
			continue
		}
		if rerr != nil {
			return nil, p.readFailed(rerr)
		}
		if empty++; empty >= body.MaxConsecutiveEmptyReads {
			p.err = io.ErrNoProgress
			return nil, p.err
		}
	}
}

func (p *Parser) readFailed(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, httperror.ErrConnectionClosed) {
		if len(p.buf) == 0 {
			err = httperror.Wrap(httperror.KindConnectionClosed, err, "no request received")
		} else {
			err = httperror.Wrap(httperror.KindConnectionClosed, err, "stream ended before request head was complete")
		}
	}
	p.err = err
	return err
}

// finish takes the body out of the buffer, reading the rest from r when r
// is not nil.
func (p *Parser) finish(r io.Reader) (Status, *Request, error) {
	b, surplus, err := body.Read(p.head.Header, p.limits, p.buf[p.headLen:], r)
	if err != nil {
		return p.fail(err)
	}
	req, err := newRequest(p.head, b)
	if err != nil {
		return p.fail(err)
	}

	p.buf = append([]byte(nil), surplus...)
	p.head, p.headLen, p.bodyLen = nil, 0, 0
	return Complete, req, nil
}

func (p *Parser) fail(err error) (Status, *Request, error) {
	p.err = err
	return Failed, nil, err
}

func (p *Parser) Remaining() []byte {
	return p.buf
}

// Buffered reports whether input for another request is already waiting.
func (p *Parser) Buffered() bool {
	return len(p.buf) > 0
}

func (p *Parser) Reset() {
	p.buf = nil
	p.head, p.headLen, p.bodyLen = nil, 0, 0
	p.err = nil
}
