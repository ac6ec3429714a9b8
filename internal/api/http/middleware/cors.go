package middleware

import "net/http"

const (
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"

	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Authorization, Content-Type, Accept"
)

// CORS injects permissive cross-origin headers into every response.
type CORS struct {
	allowCredentials bool
}

// NewCORS creates a CORS middleware. When allowCredentials is set the
// Access-Control-Allow-Credentials header is sent as well, even though
// browsers reject it next to a wildcard origin.
func NewCORS(allowCredentials bool) *CORS {
	return &CORS{allowCredentials: allowCredentials}
}

// Handle sets the CORS headers before next writes its response, so they
// are present on file responses, error pages and preflight answers alike.
func (c *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(HeaderAllowOrigin, AllowOrigin)
		h.Set(HeaderAllowMethods, AllowMethods)
		h.Set(HeaderAllowHeaders, AllowHeaders)
		if c.allowCredentials {
			h.Set(HeaderAllowCredentials, "true")
		}

		next.ServeHTTP(w, r)
	})
}
