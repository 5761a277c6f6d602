package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
	"github.com/workshopkit/workshop-backend/internal/service/session"
)

// sessionService defines the session operations the handler depends on.
type sessionService interface {
	Create(ctx context.Context, input session.CreateInput) (*domain.Session, error)
	Join(ctx context.Context, input session.JoinInput) (*domain.Participant, error)
	AdvancePhase(ctx context.Context, input session.AdvancePhaseInput) (*domain.Session, error)
	Finalize(ctx context.Context, input session.FinalizeInput) (*domain.FinalStatement, error)
	ReconcileIdentity(ctx context.Context, input session.ReconcileIdentityInput) (*domain.Participant, error)
	GetSnapshot(ctx context.Context, sessionID uuid.UUID) (*session.Snapshot, error)
}

// SessionHandler serves the session lifecycle endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(logger *slog.Logger, svc sessionService) *SessionHandler {
	return &SessionHandler{
		svc: svc,
		log: logger.With("handler", "session"),
	}
}

type createSessionRequest struct {
	ToolKind    string  `json:"tool_kind"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Identity    string  `json:"identity"`
	DisplayName string  `json:"display_name"`
}

type joinSessionRequest struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"display_name"`
}

type advancePhaseRequest struct {
	Identity string `json:"identity"`
	Target   string `json:"target"`
}

type finalizeRequest struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Body     string `json:"body"`
}

type reconcileIdentityRequest struct {
	CachedIdentity        string `json:"cached_identity"`
	AuthoritativeIdentity string `json:"authoritative_identity"`
}

type sessionResponse struct {
	ID              string     `json:"id"`
	ToolKind        string     `json:"tool_kind"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	CreatorIdentity string     `json:"creator_identity"`
	CreatorName     string     `json:"creator_name"`
	Phase           string     `json:"phase"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type participantResponse struct {
	ID          string    `json:"id"`
	Identity    string    `json:"identity"`
	DisplayName string    `json:"display_name"`
	Facilitator bool      `json:"facilitator"`
	Submitted   bool      `json:"submitted"`
	JoinedAt    time.Time `json:"joined_at"`
}

type finalStatementResponse struct {
	Body       string    `json:"body"`
	AuthorName string    `json:"author_name"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type snapshotResponse struct {
	Session        sessionResponse         `json:"session"`
	Participants   []participantResponse   `json:"participants"`
	Statements     []statementResponse     `json:"statements"`
	FinalStatement *finalStatementResponse `json:"final_statement,omitempty"`
	VoteItems      []voteItemResponse      `json:"vote_items,omitempty"`
	Allocations    []allocationResponse    `json:"allocations,omitempty"`
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.svc.Create(r.Context(), session.CreateInput{
		ToolKind:        domain.ToolKind(req.ToolKind),
		Title:           req.Title,
		Description:     req.Description,
		CreatorIdentity: callerIdentity(r, req.Identity),
		CreatorName:     req.DisplayName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// Join handles POST /api/sessions/{id}/participants.
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req joinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Join(r.Context(), session.JoinInput{
		SessionID:   sessionID,
		Identity:    callerIdentity(r, req.Identity),
		DisplayName: req.DisplayName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toParticipantResponse(p))
}

// AdvancePhase handles POST /api/sessions/{id}/phase.
func (h *SessionHandler) AdvancePhase(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req advancePhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.svc.AdvancePhase(r.Context(), session.AdvancePhaseInput{
		SessionID: sessionID,
		Identity:  callerIdentity(r, req.Identity),
		Target:    domain.Phase(req.Target),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// Finalize handles POST /api/sessions/{id}/finalize.
func (h *SessionHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	final, err := h.svc.Finalize(r.Context(), session.FinalizeInput{
		SessionID: sessionID,
		Identity:  callerIdentity(r, req.Identity),
		Name:      req.Name,
		Body:      req.Body,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFinalStatementResponse(final))
}

// ReconcileIdentity handles POST /api/sessions/{id}/identity. The
// authoritative identity comes from the verified token when one is present.
func (h *SessionHandler) ReconcileIdentity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req reconcileIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.ReconcileIdentity(r.Context(), session.ReconcileIdentityInput{
		SessionID:             sessionID,
		CachedIdentity:        req.CachedIdentity,
		AuthoritativeIdentity: callerIdentity(r, req.AuthoritativeIdentity),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toParticipantResponse(p))
}

// GetSnapshot handles GET /api/sessions/{id}.
func (h *SessionHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	snap, err := h.svc.GetSnapshot(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:              s.ID.String(),
		ToolKind:        s.ToolKind.String(),
		Title:           s.Title,
		Description:     s.Description,
		CreatorIdentity: s.CreatorIdentity,
		CreatorName:     s.CreatorName,
		Phase:           s.Phase.String(),
		CreatedAt:       s.CreatedAt,
		CompletedAt:     s.CompletedAt,
	}
}

func toParticipantResponse(p *domain.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID.String(),
		Identity:    p.Identity,
		DisplayName: p.DisplayName,
		Facilitator: p.Facilitator,
		Submitted:   p.Submitted,
		JoinedAt:    p.JoinedAt,
	}
}

func toFinalStatementResponse(f *domain.FinalStatement) finalStatementResponse {
	return finalStatementResponse{
		Body:       f.Body,
		AuthorName: f.AuthorName,
		UpdatedAt:  f.UpdatedAt,
	}
}

func toSnapshotResponse(snap *session.Snapshot) snapshotResponse {
	resp := snapshotResponse{
		Session:      toSessionResponse(snap.Session),
		Participants: make([]participantResponse, 0, len(snap.Participants)),
		Statements:   make([]statementResponse, 0, len(snap.Statements)),
	}
	for i := range snap.Participants {
		resp.Participants = append(resp.Participants, toParticipantResponse(&snap.Participants[i]))
	}
	for i := range snap.Statements {
		resp.Statements = append(resp.Statements, toStatementResponse(&snap.Statements[i]))
	}
	if snap.FinalStatement != nil {
		fs := toFinalStatementResponse(snap.FinalStatement)
		resp.FinalStatement = &fs
	}
	for i := range snap.VoteItems {
		resp.VoteItems = append(resp.VoteItems, toVoteItemResponse(&snap.VoteItems[i]))
	}
	for _, a := range snap.Allocations {
		resp.Allocations = append(resp.Allocations, allocationResponse{
			ItemID:   a.ItemID.String(),
			Identity: a.ParticipantIdentity,
			Points:   a.Points,
		})
	}
	return resp
}
