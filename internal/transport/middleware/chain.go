// Package middleware provides the HTTP middleware stack: request IDs,
// logging, panic recovery, bearer-token auth, CORS, and rate limiting.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds the given middleware into one. The first argument becomes
// the outermost wrapper: Chain(a, b)(h) runs a, then b, then h.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
