package httphandler

import (
	"crypto/subtle"
	"mime"
	"net/http"
)

// AllowJSONOrForm admits JSON and form-encoded request bodies only. The
// widget script posts JSON; form-encoded is kept for host-runtime callers.
func AllowJSONOrForm(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch mt {
		case "application/json", "application/x-www-form-urlencoded":
			next.ServeHTTP(w, r)
		default:
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
		}
	}
	return http.HandlerFunc(hf)
}

// BasicAuth gates next behind HTTP basic auth. With an empty login the gate
// is disabled entirely.
func BasicAuth(login, password string, next http.Handler) http.Handler {
	if login == "" {
		return next
	}

	hf := func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !equal(user, login) || !equal(pass, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="settings"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
