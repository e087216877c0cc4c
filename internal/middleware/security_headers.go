package middleware

import (
	"net/http"
)

// APIContentSecurityPolicy suits a JSON-only API.
const APIContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

const hstsValue = "max-age=31536000; includeSubDomains"

// apiHeaders go on every response. Nothing the forum serves is meant to be
// framed, sniffed or embedded by another origin.
var apiHeaders = [][2]string{
	{"X-Frame-Options", "DENY"},
	{"X-Content-Type-Options", "nosniff"},
	{"Referrer-Policy", "no-referrer"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
}

// SecurityHeadersWithCSP sets apiHeaders plus csp when it is not empty.
// HSTS is only sent when the forum is served over https.
func SecurityHeadersWithCSP(https bool, csp string) func(http.Handler) http.Handler {
	headers := append([][2]string(nil), apiHeaders...)
	if csp != "" {
		headers = append(headers, [2]string{"Content-Security-Policy", csp})
	}
	if https {
		headers = append(headers, [2]string{"Strict-Transport-Security", hstsValue})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range headers {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
