package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
	"github.com/workshopkit/workshop-backend/internal/service/vote"
)

// voteService defines the voting-board operations the handler depends on.
type voteService interface {
	AddItem(ctx context.Context, input vote.AddItemInput) (*domain.VoteItem, error)
	ListItems(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error)
	SubmitAllocation(ctx context.Context, input vote.SubmitAllocationInput) (*vote.AllocationResult, error)
	GetAllocation(ctx context.Context, sessionID uuid.UUID, identity string) (*vote.AllocationResult, error)
}

// VoteHandler serves the voting-board endpoints.
type VoteHandler struct {
	svc voteService
	log *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(logger *slog.Logger, svc voteService) *VoteHandler {
	return &VoteHandler{
		svc: svc,
		log: logger.With("handler", "vote"),
	}
}

type addItemRequest struct {
	Identity string `json:"identity"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

type allocationPair struct {
	ItemID string `json:"item_id"`
	Points int    `json:"points"`
}

type submitAllocationRequest struct {
	Identity    string           `json:"identity"`
	Allocations []allocationPair `json:"allocations"`
}

type voteItemResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// allocationResponse is one stored allocation row in a session snapshot.
type allocationResponse struct {
	ItemID   string `json:"item_id"`
	Identity string `json:"identity"`
	Points   int    `json:"points"`
}

// allocationResultResponse is one participant's complete allocation plus the
// derived remaining budget.
type allocationResultResponse struct {
	Allocations []allocationPair `json:"allocations"`
	Remaining   int              `json:"remaining"`
}

// AddItem handles POST /api/sessions/{id}/items.
func (h *VoteHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.AddItem(r.Context(), vote.AddItemInput{
		SessionID: sessionID,
		Identity:  callerIdentity(r, req.Identity),
		Label:     req.Label,
		Position:  req.Position,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVoteItemResponse(item))
}

// ListItems handles GET /api/sessions/{id}/items.
func (h *VoteHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.svc.ListItems(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]voteItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toVoteItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// SubmitAllocation handles PUT /api/sessions/{id}/allocations.
func (h *VoteHandler) SubmitAllocation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req submitAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pairs := make([]domain.PointAllocation, 0, len(req.Allocations))
	for _, p := range req.Allocations {
		itemID, err := uuid.Parse(p.ItemID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid item_id")
			return
		}
		pairs = append(pairs, domain.PointAllocation{ItemID: itemID, Points: p.Points})
	}

	result, err := h.svc.SubmitAllocation(r.Context(), vote.SubmitAllocationInput{
		SessionID: sessionID,
		Identity:  callerIdentity(r, req.Identity),
		Pairs:     pairs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAllocationResultResponse(result))
}

// GetAllocation handles GET /api/sessions/{id}/allocations. The identity
// comes from the verified token or, for anonymous callers, the identity
// query parameter.
func (h *VoteHandler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	identity := callerIdentity(r, r.URL.Query().Get("identity"))
	if identity == "" {
		writeError(w, http.StatusBadRequest, "identity is required")
		return
	}

	result, err := h.svc.GetAllocation(r.Context(), sessionID, identity)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAllocationResultResponse(result))
}

func toVoteItemResponse(item *domain.VoteItem) voteItemResponse {
	return voteItemResponse{
		ID:        item.ID.String(),
		Label:     item.Label,
		Position:  item.Position,
		CreatedAt: item.CreatedAt,
	}
}

func toAllocationResultResponse(result *vote.AllocationResult) allocationResultResponse {
	resp := allocationResultResponse{
		Allocations: make([]allocationPair, 0, len(result.Allocations)),
		Remaining:   result.Remaining,
	}
	for _, a := range result.Allocations {
		resp.Allocations = append(resp.Allocations, allocationPair{
			ItemID: a.ItemID.String(),
			Points: a.Points,
		})
	}
	return resp
}
