package rest

import "net/http"

// NewRouter mounts all handlers on a ServeMux. Middleware is applied by the
// caller around the returned mux, not per route.
func NewRouter(health *HealthHandler, sessions *SessionHandler, statements *StatementHandler, votes *VoteHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/sessions", sessions.Create)
	mux.HandleFunc("GET /api/sessions/{id}", sessions.GetSnapshot)
	mux.HandleFunc("POST /api/sessions/{id}/participants", sessions.Join)
	mux.HandleFunc("POST /api/sessions/{id}/phase", sessions.AdvancePhase)
	mux.HandleFunc("POST /api/sessions/{id}/finalize", sessions.Finalize)
	mux.HandleFunc("POST /api/sessions/{id}/identity", sessions.ReconcileIdentity)

	mux.HandleFunc("POST /api/sessions/{id}/statements", statements.Submit)
	mux.HandleFunc("GET /api/sessions/{id}/statements", statements.List)
	mux.HandleFunc("POST /api/sessions/{id}/statements/{statementID}/pin", statements.TogglePin)

	mux.HandleFunc("POST /api/sessions/{id}/items", votes.AddItem)
	mux.HandleFunc("GET /api/sessions/{id}/items", votes.ListItems)
	mux.HandleFunc("PUT /api/sessions/{id}/allocations", votes.SubmitAllocation)
	mux.HandleFunc("GET /api/sessions/{id}/allocations", votes.GetAllocation)

	return mux
}
