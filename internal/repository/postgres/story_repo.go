package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/foo/internal/domain"
)

type StoryRepo struct {
	pool *pgxpool.Pool
}

func NewStoryRepo(pool *pgxpool.Pool) *StoryRepo {
	return &StoryRepo{pool: pool}
}

func (r *StoryRepo) ListOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]domain.StoryOwner, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}

	owners, index, err := r.listAccounts(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT s.id, s.owner_id, s.file, s.created_at,
			COALESCE(array_agg(v.account_id) FILTER (WHERE v.account_id IS NOT NULL), '{}')
		FROM stories s
		LEFT JOIN story_views v ON v.story_id = s.id
		WHERE s.owner_id = ANY($1)
		GROUP BY s.id
		ORDER BY s.created_at`

	rows, err := r.pool.Query(ctx, query, ownerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var st domain.Story
		if err := rows.Scan(&st.ID, &st.OwnerID, &st.File, &st.CreatedAt, &st.Views); err != nil {
			return nil, err
		}
		i := index[st.OwnerID]
		owners[i].Stories = append(owners[i].Stories, st)
	}
	return owners, rows.Err()
}

func (r *StoryRepo) listAccounts(ctx context.Context, ids []uuid.UUID) ([]domain.StoryOwner, map[uuid.UUID]int, error) {
	query := `
		SELECT u.id, u.username, u.username_alias, u.f_name, u.l_name, pr.profile_pic
		FROM accounts u
		JOIN profiles pr ON pr.account_id = u.id
		WHERE u.id = ANY($1)
		ORDER BY u.username`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var owners []domain.StoryOwner
	index := make(map[uuid.UUID]int, len(ids))
	for rows.Next() {
		var a domain.AccountRef
		if err := rows.Scan(&a.ID, &a.Username, &a.UsernameAlias, &a.FirstName, &a.LastName, &a.ProfilePic); err != nil {
			return nil, nil, err
		}
		index[a.ID] = len(owners)
		owners = append(owners, domain.StoryOwner{Account: a})
	}
	return owners, index, rows.Err()
}
