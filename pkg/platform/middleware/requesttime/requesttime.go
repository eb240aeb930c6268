// Package requesttime pins a single "now" to each HTTP request.
// Every deadline, status and score derivation downstream reads this one
// timestamp, so a dashboard response can never disagree with itself about
// what time it is.
package requesttime

import (
	"net/http"
	"time"

	"aceaudit/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and
// stores it in the context for all downstream derivations.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
