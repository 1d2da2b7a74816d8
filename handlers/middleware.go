package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"cogscalculator/services"
)

type contextKey string

const SessionKey contextKey = "cogsSession"

// GetSession returns the calculator session stored on the request context.
// Requests that did not pass through SessionMiddleware get one parsed from
// their form and query values.
func GetSession(r *http.Request) *services.Session {
	if val, ok := r.Context().Value(SessionKey).(*services.Session); ok && val != nil {
		return val
	}
	return sessionFromRequest(r)
}

// SessionMiddleware parses the calculator fields (form body or query string)
// into a fresh Session and stores it in the request context. Sessions are
// never persisted between requests.
func SessionMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFromRequest(e.Request)
		ctx := context.WithValue(e.Request.Context(), SessionKey, s)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

func sessionFromRequest(r *http.Request) *services.Session {
	s := services.NewSession()
	// A malformed body leaves r.Form partially filled; the fields that did
	// parse are still used and the rest coerce to zero.
	_ = r.ParseForm()
	s.Inputs = services.ParseInputs(r.FormValue)
	s.SetMethod(services.ParseMethod(r.FormValue(services.FieldMethod)))
	return s
}
