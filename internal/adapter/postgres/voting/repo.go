// Package voting implements the vote item and vote allocation repositories
// using PostgreSQL.
package voting

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workshopkit/workshop-backend/internal/adapter/postgres"
	"github.com/workshopkit/workshop-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides voting persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new voting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateItem inserts a vote item. A duplicate label within the session fails
// on the unique constraint.
func (r *Repo) CreateItem(ctx context.Context, item *domain.VoteItem) (*domain.VoteItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `
		INSERT INTO vote_items (id, session_id, label, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, session_id, label, position, created_at`

	var out domain.VoteItem
	err := pgxscan.Get(ctx, q, &out, sql,
		item.ID, item.SessionID, item.Label, item.Position, item.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "vote_item", item.Label)
	}
	return &out, nil
}

// ListItems returns a session's vote items in board order.
func (r *Repo) ListItems(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("id", "session_id", "label", "position", "created_at").
		From("vote_items").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "vote_item", sessionID.String())
	}

	var out []domain.VoteItem
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vote_item", sessionID.String())
	}
	return out, nil
}

// CountItemsIn returns how many of the given item ids belong to the session.
// The caller compares against len(ids) to detect foreign or unknown items.
func (r *Repo) CountItemsIn(ctx context.Context, sessionID uuid.UUID, ids []uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM vote_items WHERE session_id = $1 AND id = ANY($2)`,
		sessionID, ids).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "vote_item", sessionID.String())
	}
	return n, nil
}

// GetAllocation returns the stored allocation rows for one participant.
func (r *Repo) GetAllocation(ctx context.Context, sessionID uuid.UUID, identity string) ([]domain.VoteAllocation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("session_id", "participant_identity", "item_id",
		"points", "updated_at").
		From("vote_allocations").
		Where(sq.Eq{"session_id": sessionID, "participant_identity": identity}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "vote_allocation", identity)
	}

	var out []domain.VoteAllocation
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vote_allocation", identity)
	}
	return out, nil
}

// ReplaceAllocation swaps a participant's stored allocation for the given
// complete set of pairs. Callers run this inside a transaction so the delete
// and the inserts land together.
func (r *Repo) ReplaceAllocation(ctx context.Context, sessionID uuid.UUID, identity string, allocs []domain.PointAllocation) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM vote_allocations WHERE session_id = $1 AND participant_identity = $2`,
		sessionID, identity)
	if err != nil {
		return postgres.MapError(err, "vote_allocation", identity)
	}

	now := time.Now().UTC()
	for _, a := range allocs {
		_, err := q.Exec(ctx,
			`INSERT INTO vote_allocations (session_id, participant_identity, item_id, points, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			sessionID, identity, a.ItemID, a.Points, now)
		if err != nil {
			return postgres.MapError(err, "vote_allocation", identity)
		}
	}
	return nil
}

// ListAllocations returns all allocation rows of a session.
func (r *Repo) ListAllocations(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteAllocation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("session_id", "participant_identity", "item_id",
		"points", "updated_at").
		From("vote_allocations").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("participant_identity ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "vote_allocation", sessionID.String())
	}

	var out []domain.VoteAllocation
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vote_allocation", sessionID.String())
	}
	return out, nil
}

// UpdateParticipantIdentity rewrites the identity on a participant's
// allocation rows. Used only by identity reconciliation.
func (r *Repo) UpdateParticipantIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE vote_allocations SET participant_identity = $3
		 WHERE session_id = $1 AND participant_identity = $2`,
		sessionID, oldIdentity, newIdentity)
	if err != nil {
		return postgres.MapError(err, "vote_allocation", oldIdentity)
	}
	return nil
}
