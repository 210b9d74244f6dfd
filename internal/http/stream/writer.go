package stream

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"httpintake/internal/http/header"
)

func (hs *stream) Write(p []byte) (int, error) {
	return hs.conn.Write(p)
}

// WriteResponse writes a complete plain-text reply. Response middlewares
// may add fields before it is serialised.
func (hs *stream) WriteResponse(status int, body []byte, keepAlive bool) error {
	var h header.Header
	h.Add("Content-Type", "text/plain; charset=utf-8")
	h.Add("Content-Length", strconv.Itoa(len(body)))
	if keepAlive {
		h.Add("Connection", "keep-alive")
	} else {
		h.Add("Connection", "close")
	}

	if err := hs.ApplyResponseMiddlewares(&h, body); err != nil {
		return fmt.Errorf("error applying response middlewares: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "HTTP/1.1 %d %s\r\n", status, http.StatusText(status))
	for _, f := range h.Fields() {
		buf.WriteString(f.Name)
		buf.WriteString(": ")
		buf.WriteString(f.Value)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")
	buf.Write(body)

	_, err := hs.conn.Write(buf.Bytes())
	return err
}
