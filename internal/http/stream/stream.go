package stream

import (
	"io"
	"net"
	"time"

	"httpintake/internal/http/header"
	"httpintake/internal/middleware"
)

// HTTP is a client connection as seen by the serving loop: reads that
// give up after the read timeout, and replies that pass through the
// response middlewares.
type HTTP interface {
	io.ReadWriteCloser
	CloseWrite() error
	RemoteAddr() net.Addr
	UseResponseMiddleware(mw middleware.ResponseMiddleware)
	UseRequestMiddleware(mw middleware.RequestMiddleware)
	RequestMiddlewares() []middleware.RequestMiddleware
	ResponseMiddlewares() []middleware.ResponseMiddleware
	ApplyRequestMiddlewares(req middleware.Request) error
	ApplyResponseMiddlewares(header *header.Header, body []byte) error
	WriteResponse(status int, body []byte, keepAlive bool) error
}

type stream struct {
	conn        net.Conn
	readTimeout time.Duration
	respMW      []middleware.ResponseMiddleware
	reqMW       []middleware.RequestMiddleware
}

// New wraps conn. A zero readTimeout leaves reads without a deadline.
func New(conn net.Conn, readTimeout time.Duration) HTTP {
	return &stream{
		conn:        conn,
		readTimeout: readTimeout,
	}
}

func (hs *stream) RemoteAddr() net.Addr {
	return hs.conn.RemoteAddr()
}

func (hs *stream) UseResponseMiddleware(mw middleware.ResponseMiddleware) {
	hs.respMW = append(hs.respMW, mw)
}

func (hs *stream) UseRequestMiddleware(mw middleware.RequestMiddleware) {
	hs.reqMW = append(hs.reqMW, mw)
}

func (hs *stream) RequestMiddlewares() []middleware.RequestMiddleware {
	return hs.reqMW
}

func (hs *stream) ResponseMiddlewares() []middleware.ResponseMiddleware {
	return hs.respMW
}

func (hs *stream) Close() error {
	return hs.conn.Close()
}

func (hs *stream) CloseWrite() error {
	if closer, ok := hs.conn.(interface{ CloseWrite() error }); ok {
		return closer.CloseWrite()
	}
	return hs.Close()
}

func (hs *stream) ApplyRequestMiddlewares(req middleware.Request) error {
	for _, m := range hs.RequestMiddlewares() {
		if err := m.HandleRequest(req); err != nil {
			return err
		}
	}
	return nil
}

func (hs *stream) ApplyResponseMiddlewares(header *header.Header, body []byte) error {
	for _, m := range hs.ResponseMiddlewares() {
		if err := m.HandleResponse(header, body); err != nil {
			return err
		}
	}
	return nil
}
