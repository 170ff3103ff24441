// Package handlers exposes the session engine over HTTP. Following the
// single-session design, one engine instance is shared by all handlers and
// installed by main at startup.
package handlers

import (
	"errors"
	"net/http"

	"go-invoice-pos/internal/engine"
)

// Sess is the clerk's live session, set once by Init before the router
// starts serving.
var Sess *engine.Session

// Init installs the session engine used by the handlers.
func Init(s *engine.Session) {
	Sess = s
}

// statusFor maps engine errors onto HTTP statuses. Stock and validation
// failures are user-visible warnings, never fatal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrLineNotFound), errors.Is(err, engine.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrStockExceeded):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
