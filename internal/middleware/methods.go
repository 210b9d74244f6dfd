package middleware

import (
	"net/http"
	"slices"
)

type AllowedMethods struct {
	methods []string
}

func NewAllowedMethods(methods []string) *AllowedMethods {
	return &AllowedMethods{methods: slices.Clone(methods)}
}

func (am *AllowedMethods) HandleRequest(req Request) error {
	if slices.Contains(am.methods, req.Method()) {
		return nil
	}
	return &Rejection{Status: http.StatusMethodNotAllowed, Reason: "method " + req.Method() + " not allowed"}
}
