// Package finalstatement implements the FinalStatement repository using PostgreSQL.
package finalstatement

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

// Repo provides final-statement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new final-statement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert writes the session's single final statement. The session id is the
// primary key, so a re-finalize overwrites the body in place.
func (r *Repo) Upsert(ctx context.Context, fs *domain.FinalStatement) (*domain.FinalStatement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `
		INSERT INTO final_statements (session_id, body, author_identity, author_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (session_id)
		DO UPDATE SET body = EXCLUDED.body, author_identity = EXCLUDED.author_identity,
		              author_name = EXCLUDED.author_name, updated_at = EXCLUDED.updated_at
		RETURNING session_id, body, author_identity, author_name, created_at, updated_at`

	var out domain.FinalStatement
	err := pgxscan.Get(ctx, q, &out, sql,
		fs.SessionID, fs.Body, fs.AuthorIdentity, fs.AuthorName, fs.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "final_statement", fs.SessionID.String())
	}
	return &out, nil
}

// GetBySession returns the final statement of a session, or ErrNotFound when
// the session was never finalized.
func (r *Repo) GetBySession(ctx context.Context, sessionID uuid.UUID) (*domain.FinalStatement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("session_id", "body", "author_identity",
		"author_name", "created_at", "updated_at").
		From("final_statements").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "final_statement", sessionID.String())
	}

	var fs domain.FinalStatement
	if err := pgxscan.Get(ctx, q, &fs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "final_statement", sessionID.String())
	}
	return &fs, nil
}
