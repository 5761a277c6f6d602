// Package statement implements the Statement repository using PostgreSQL.
package statement

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workshopkit/workshop-backend/internal/adapter/postgres"
	"github.com/workshopkit/workshop-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides statement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new statement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts a statement or, when the author already has one in this
// session, replaces its body in place. The (session, author) unique
// constraint makes the second submission an update, never a second row.
func (r *Repo) Upsert(ctx context.Context, st *domain.Statement) (*domain.Statement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	key := st.SessionID.String() + "/" + st.AuthorIdentity

	sql := `
		INSERT INTO statements (id, session_id, author_identity, author_name, body, submitted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (session_id, author_identity)
		DO UPDATE SET body = EXCLUDED.body, author_name = EXCLUDED.author_name, updated_at = EXCLUDED.updated_at
		RETURNING id, session_id, author_identity, author_name, body, submitted_at, updated_at`

	var out domain.Statement
	err := pgxscan.Get(ctx, q, &out, sql,
		st.ID, st.SessionID, st.AuthorIdentity, st.AuthorName, st.Body, st.SubmittedAt)
	if err != nil {
		return nil, postgres.MapError(err, "statement", key)
	}
	return &out, nil
}

// GetByID returns a statement by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("id", "session_id", "author_identity", "author_name",
		"body", "submitted_at", "updated_at").
		From("statements").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "statement", id.String())
	}

	var st domain.Statement
	if err := pgxscan.Get(ctx, q, &st, sql, args...); err != nil {
		return nil, postgres.MapError(err, "statement", id.String())
	}
	return &st, nil
}

// ListWithPins returns a session's statements in submission order, each
// annotated with its pin count and endorser identities. One query: the
// aggregate keeps "pinned by you" renderable without a second round-trip.
func (r *Repo) ListWithPins(ctx context.Context, sessionID uuid.UUID) ([]domain.StatementWithPins, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `
		SELECT s.id, s.session_id, s.author_identity, s.author_name, s.body,
		       s.submitted_at, s.updated_at,
		       count(p.endorser_identity)::int AS pin_count,
		       coalesce(array_agg(p.endorser_identity ORDER BY p.pinned_at)
		                FILTER (WHERE p.endorser_identity IS NOT NULL), '{}') AS endorsers
		FROM statements s
		LEFT JOIN pins p ON p.statement_id = s.id
		WHERE s.session_id = $1
		GROUP BY s.id
		ORDER BY s.submitted_at ASC`

	var out []domain.StatementWithPins
	if err := pgxscan.Select(ctx, q, &out, sql, sessionID); err != nil {
		return nil, postgres.MapError(err, "statement", sessionID.String())
	}
	return out, nil
}

// UpdateAuthorIdentity rewrites the author identity on a session's
// statements. Used only by identity reconciliation.
func (r *Repo) UpdateAuthorIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update("statements").
		Set("author_identity", newIdentity).
		Where(sq.Eq{"session_id": sessionID, "author_identity": oldIdentity}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "statement", oldIdentity)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "statement", oldIdentity)
	}
	return nil
}
