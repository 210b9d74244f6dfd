package middleware

import (
	"net/http"
	"strings"
)

type HostRequired struct{}

func NewHostRequired() *HostRequired {
	return &HostRequired{}
}

// HandleRequest rejects HTTP/1.1 requests without a Host header.
func (h *HostRequired) HandleRequest(req Request) error {
	if req.Version() != "HTTP/1.1" {
		return nil
	}
	host, ok := req.Header("Host")
	if !ok || strings.TrimSpace(host) == "" {
		return &Rejection{Status: http.StatusBadRequest, Reason: "missing Host header"}
	}
	return nil
}
