// Package session implements the Session repository using PostgreSQL.
package session

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

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new session row.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert("sessions").
		Columns("id", "tool_kind", "title", "description", "creator_identity",
			"creator_name", "phase", "created_at").
		Values(s.ID, s.ToolKind, s.Title, s.Description, s.CreatorIdentity,
			s.CreatorName, s.Phase, s.CreatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "session", s.ID.String())
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", s.ID.String())
	}
	return nil
}

// GetByID returns a session by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("id", "tool_kind", "title", "description",
		"creator_identity", "creator_name", "phase", "created_at", "completed_at").
		From("sessions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "session", id.String())
	}

	var s domain.Session
	if err := pgxscan.Get(ctx, q, &s, sql, args...); err != nil {
		return nil, postgres.MapError(err, "session", id.String())
	}
	return &s, nil
}

// AdvancePhase performs a compare-and-swap phase update: the row is only
// written when the stored phase still equals from. Returns true when the swap
// happened, false when another call got there first.
func (r *Repo) AdvancePhase(ctx context.Context, id uuid.UUID, from, to domain.Phase) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("sessions").
		Set("phase", to).
		Where(sq.Eq{"id": id, "phase": from})
	if to.Terminal() {
		b = b.Set("completed_at", time.Now().UTC())
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "session", id.String())
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "session", id.String())
	}
	return tag.RowsAffected() == 1, nil
}

// Complete moves the session to the terminal phase with the given completion
// time. Unlike AdvancePhase it is unconditional on the stored phase: the
// finalization gate may re-finalize an already completed session.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("sessions").
		Set("phase", domain.PhaseCompleted).
		Set("completed_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "session", id.String())
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "session", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "session", id.String())
	}
	return nil
}

// UpdateCreatorIdentity rewrites the stored creator identity. Used only by
// identity reconciliation.
func (r *Repo) UpdateCreatorIdentity(ctx context.Context, id uuid.UUID, oldIdentity, newIdentity string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("sessions").
		Set("creator_identity", newIdentity).
		Where(sq.Eq{"id": id, "creator_identity": oldIdentity}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "session", id.String())
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", id.String())
	}
	return nil
}
