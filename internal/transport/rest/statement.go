package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
	"github.com/workshopkit/workshop-backend/internal/service/statement"
)

// statementService defines the statement operations the handler depends on.
type statementService interface {
	Submit(ctx context.Context, input statement.SubmitInput) (*domain.Statement, error)
	List(ctx context.Context, sessionID uuid.UUID) ([]domain.StatementWithPins, error)
	TogglePin(ctx context.Context, input statement.TogglePinInput) (domain.PinToggleResult, error)
}

// StatementHandler serves statement submission and pin endpoints.
type StatementHandler struct {
	svc statementService
	log *slog.Logger
}

// NewStatementHandler creates a StatementHandler.
func NewStatementHandler(logger *slog.Logger, svc statementService) *StatementHandler {
	return &StatementHandler{
		svc: svc,
		log: logger.With("handler", "statement"),
	}
}

type submitStatementRequest struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Body     string `json:"body"`
}

type togglePinRequest struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
}

type statementResponse struct {
	ID          string    `json:"id"`
	Identity    string    `json:"identity"`
	AuthorName  string    `json:"author_name"`
	Body        string    `json:"body"`
	PinCount    int       `json:"pin_count"`
	Endorsers   []string  `json:"endorsers,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type togglePinResponse struct {
	Result string `json:"result"`
}

// Submit handles POST /api/sessions/{id}/statements.
func (h *StatementHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req submitStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.svc.Submit(r.Context(), statement.SubmitInput{
		SessionID:  sessionID,
		Identity:   callerIdentity(r, req.Identity),
		AuthorName: req.Name,
		Body:       req.Body,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, statementResponse{
		ID:          st.ID.String(),
		Identity:    st.AuthorIdentity,
		AuthorName:  st.AuthorName,
		Body:        st.Body,
		SubmittedAt: st.SubmittedAt,
		UpdatedAt:   st.UpdatedAt,
	})
}

// List handles GET /api/sessions/{id}/statements.
func (h *StatementHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	statements, err := h.svc.List(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]statementResponse, 0, len(statements))
	for i := range statements {
		resp = append(resp, toStatementResponse(&statements[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// TogglePin handles POST /api/sessions/{id}/statements/{statementID}/pin.
func (h *StatementHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	statementID, ok := pathID(w, r, "statementID")
	if !ok {
		return
	}

	var req togglePinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.TogglePin(r.Context(), statement.TogglePinInput{
		SessionID:    sessionID,
		StatementID:  statementID,
		Identity:     callerIdentity(r, req.Identity),
		EndorserName: req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, togglePinResponse{Result: string(result)})
}

func toStatementResponse(st *domain.StatementWithPins) statementResponse {
	return statementResponse{
		ID:          st.ID.String(),
		Identity:    st.AuthorIdentity,
		AuthorName:  st.AuthorName,
		Body:        st.Body,
		PinCount:    st.PinCount,
		Endorsers:   st.Endorsers,
		SubmittedAt: st.SubmittedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}
