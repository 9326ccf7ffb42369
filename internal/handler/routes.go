package handler

import (
	"net/http"

	"github.com/msomdec/complaint-tracker/internal/nav"
	"github.com/msomdec/complaint-tracker/internal/session"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, manager *session.Manager, controller *nav.Controller, cookieSecure bool) {
	authHandler := NewAuthHandler(manager, cookieSecure)
	complaintHandler := NewComplaintHandler(manager)
	navHandler := NewNavHandler(controller)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", OptionalSession(manager, http.HandlerFunc(authHandler.HandleMe)))

	// Submission is gated inside the session manager so a logged-out caller
	// gets the redirect response instead of a bare 401.
	mux.Handle("POST /api/complaints", OptionalSession(manager, http.HandlerFunc(complaintHandler.HandleSubmit)))
	mux.Handle("GET /api/complaints", RequireSession(manager, http.HandlerFunc(complaintHandler.HandleList)))

	mux.HandleFunc("GET /api/view", navHandler.HandleView)
}
