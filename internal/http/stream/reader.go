package stream

import (
	"errors"
	"io"
	"net"
	"os"
	"time"

	"httpintake/internal/http/httperror"
)

func (hs *stream) Read(p []byte) (int, error) {
	if hs.readTimeout > 0 {
		if err := hs.conn.SetReadDeadline(time.Now().Add(hs.readTimeout)); err != nil {
			return 0, closedError(err)
		}
	}

	n, err := hs.conn.Read(p)
	if err != nil {
		err = closedError(err)
	}
	return n, err
}

// closedError turns timeouts and reads on a closed socket into
// connection-closed errors. Everything else, io.EOF included, is returned
// as is.
func closedError(err error) error {
	switch {
	case errors.Is(err, os.ErrDeadlineExceeded):
		return httperror.Wrap(httperror.KindConnectionClosed, err, "read timed out")
	case errors.Is(err, net.ErrClosed), errors.Is(err, io.ErrClosedPipe):
		return httperror.Wrap(httperror.KindConnectionClosed, err, "connection closed locally")
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return httperror.Wrap(httperror.KindConnectionClosed, err, "read timed out")
	}
	return err
}
