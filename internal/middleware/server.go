package middleware

import (
	"httpintake/internal/http/header"
	"httpintake/internal/version"
)

type ServerName struct{}

func NewServerName() *ServerName {
	return &ServerName{}
}

func (s *ServerName) HandleResponse(header *header.Header, body []byte) error {
	header.Add("Server", version.ServerToken())
	return nil
}
