package middleware

import (
	"net"

	"httpintake/internal/http/header"
)

type ClientAddr struct {
	addr net.Addr
}

func NewClientAddr(addr net.Addr) *ClientAddr {
	return &ClientAddr{addr: addr}
}

// HandleResponse echoes the peer host back in X-Client-Addr.
func (ca *ClientAddr) HandleResponse(header *header.Header, body []byte) error {
	host, _, err := net.SplitHostPort(ca.addr.String())
	if err != nil {
		return err
	}
	header.Add("X-Client-Addr", host)
	return nil
}
