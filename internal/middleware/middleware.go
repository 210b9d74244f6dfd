package middleware

import (
	"fmt"

	"httpintake/internal/http/header"
)

// Request is the read-only view of a parsed request that middlewares
// inspect.
type Request interface {
	Method() string
	Version() string
	Header(name string) (string, bool)
}

type RequestMiddleware interface {
	HandleRequest(req Request) error
}

type ResponseMiddleware interface {
	HandleResponse(header *header.Header, body []byte) error
}

// Rejection is returned by a request middleware that refuses a request.
type Rejection struct {
	Status int
	Reason string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("request rejected (%d): %s", r.Status, r.Reason)
}
