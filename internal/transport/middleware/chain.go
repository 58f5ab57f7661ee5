// Package middleware holds the HTTP middleware shared by the service's
// listeners.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. It matches the
// signature chi.Router.Use expects.
type Middleware func(http.Handler) http.Handler
