// Package pin implements the Pin repository using PostgreSQL.
package pin

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workshopkit/workshop-backend/internal/adapter/postgres"
	"github.com/workshopkit/workshop-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides pin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Toggle flips the (statement, endorser) pin. Policy for concurrent calls:
// delete first; if nothing was deleted, insert with ON CONFLICT DO NOTHING.
// An insert that loses to a concurrent insert means another call just added
// the pin, so this call becomes the removal. Two racing toggles therefore
// converge to exactly one added and one removed.
func (r *Repo) Toggle(ctx context.Context, statementID uuid.UUID, identity, name string) (domain.PinToggleResult, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	key := statementID.String() + "/" + identity

	tag, err := q.Exec(ctx,
		`DELETE FROM pins WHERE statement_id = $1 AND endorser_identity = $2`,
		statementID, identity)
	if err != nil {
		return "", postgres.MapError(err, "pin", key)
	}
	if tag.RowsAffected() == 1 {
		return domain.PinRemoved, nil
	}

	tag, err = q.Exec(ctx,
		`INSERT INTO pins (statement_id, endorser_identity, endorser_name, pinned_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (statement_id, endorser_identity) DO NOTHING`,
		statementID, identity, name, time.Now().UTC())
	if err != nil {
		return "", postgres.MapError(err, "pin", key)
	}
	if tag.RowsAffected() == 1 {
		return domain.PinAdded, nil
	}

	// Lost the insert race: the pin exists now, so complete the flip.
	if _, err := q.Exec(ctx,
		`DELETE FROM pins WHERE statement_id = $1 AND endorser_identity = $2`,
		statementID, identity); err != nil {
		return "", postgres.MapError(err, "pin", key)
	}
	return domain.PinRemoved, nil
}

// CountByStatement returns the number of pins on a statement.
func (r *Repo) CountByStatement(ctx context.Context, statementID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("count(*)").
		From("pins").
		Where(sq.Eq{"statement_id": statementID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "pin", statementID.String())
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "pin", statementID.String())
	}
	return n, nil
}

// UpdateEndorserIdentity rewrites the endorser identity on a session's pins.
// Used only by identity reconciliation. The join restricts the rewrite to
// pins on this session's statements.
func (r *Repo) UpdateEndorserIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE pins SET endorser_identity = $3
		 WHERE endorser_identity = $2
		   AND statement_id IN (SELECT id FROM statements WHERE session_id = $1)`,
		sessionID, oldIdentity, newIdentity)
	if err != nil {
		return postgres.MapError(err, "pin", oldIdentity)
	}
	return nil
}
