// Package participant implements the Participant repository using PostgreSQL.
package participant

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workshopkit/workshop-backend/internal/adapter/postgres"
	"github.com/workshopkit/workshop-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides participant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new participant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a participant row and returns the persisted record. The
// facilitator flag is derived inside the statement: the first registration
// for a session gets it, every later one does not, regardless of what the
// caller wanted. A duplicate (session, identity) pair fails on the unique
// constraint and maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	key := p.SessionID.String() + "/" + p.Identity

	sql := `
		INSERT INTO participants (id, session_id, identity, display_name, facilitator, submitted, joined_at)
		VALUES ($1, $2, $3, $4,
			NOT EXISTS (SELECT 1 FROM participants WHERE session_id = $2),
			false, $5)
		RETURNING id, session_id, identity, display_name, facilitator, submitted, joined_at`

	var out domain.Participant
	err := pgxscan.Get(ctx, q, &out, sql, p.ID, p.SessionID, p.Identity, p.DisplayName, p.JoinedAt)
	if err != nil {
		return nil, postgres.MapError(err, "participant", key)
	}
	return &out, nil
}

// GetByIdentity returns the participant for a (session, identity) pair.
func (r *Repo) GetByIdentity(ctx context.Context, sessionID uuid.UUID, identity string) (*domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("id", "session_id", "identity", "display_name",
		"facilitator", "submitted", "joined_at").
		From("participants").
		Where(sq.Eq{"session_id": sessionID, "identity": identity}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "participant", identity)
	}

	var p domain.Participant
	if err := pgxscan.Get(ctx, q, &p, sql, args...); err != nil {
		return nil, postgres.MapError(err, "participant", identity)
	}
	return &p, nil
}

// ListBySession returns all participants of a session ordered by join time.
func (r *Repo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Participant, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("id", "session_id", "identity", "display_name",
		"facilitator", "submitted", "joined_at").
		From("participants").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("joined_at ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "participant", sessionID.String())
	}

	var out []domain.Participant
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "participant", sessionID.String())
	}
	return out, nil
}

// MarkSubmitted sets the submitted flag. Idempotent: marking an already
// submitted participant succeeds. Returns ErrNotFound when the participant
// does not exist.
func (r *Repo) MarkSubmitted(ctx context.Context, sessionID uuid.UUID, identity string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("participants").
		Set("submitted", true).
		Where(sq.Eq{"session_id": sessionID, "identity": identity}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "participant", identity)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "participant", identity)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participant %s: %w", identity, domain.ErrParticipantNotFound)
	}
	return nil
}

// UpdateIdentity rewrites a participant's identity. Used only by identity
// reconciliation. Returns the number of rows touched; zero is not an error
// because reconciliation is idempotent.
func (r *Repo) UpdateIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("participants").
		Set("identity", newIdentity).
		Where(sq.Eq{"session_id": sessionID, "identity": oldIdentity}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "participant", oldIdentity)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "participant", oldIdentity)
	}
	return tag.RowsAffected(), nil
}
