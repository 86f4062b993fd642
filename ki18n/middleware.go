package ki18n

import (
	"net/http"
)

// Middleware installs the provider's current snapshot into every request's
// context, so each request observes the filters and locale data as of the
// moment it started.
func (p *Provider) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), p.Current())))
		})
	}
}

// Handler is an http handler that receives the ambient snapshot ahead of its
// usual arguments.
type Handler func(i18n *I18n, w http.ResponseWriter, r *http.Request)

// WithI18n adapts a Handler into an http.Handler, resolving the snapshot from
// the request context (or the shared default outside any provider).
func WithI18n(handler Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(FromContext(r.Context()), w, r)
	})
}
