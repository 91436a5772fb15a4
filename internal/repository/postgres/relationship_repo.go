package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/foo/internal/domain"
)

type RelationshipRepo struct {
	pool *pgxpool.Pool
}

func NewRelationshipRepo(pool *pgxpool.Pool) *RelationshipRepo {
	return &RelationshipRepo{pool: pool}
}

func (r *RelationshipRepo) ListBetween(ctx context.Context, a, b uuid.UUID) ([]domain.RelationshipRequest, error) {
	query := `
		SELECT id, from_id, to_id, status, created_at
		FROM relationship_requests
		WHERE (from_id = $1 AND to_id = $2) OR (from_id = $2 AND to_id = $1)
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, a, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.RelationshipRequest
	for rows.Next() {
		var req domain.RelationshipRequest
		if err := rows.Scan(&req.ID, &req.FromID, &req.ToID, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
