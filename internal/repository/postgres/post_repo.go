package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/foo/internal/domain"
)

const postColumns = `
	p.id, p.file, p.thumbnail, p.post_type, p.caption, p.created_at,
	u.id, u.username, u.username_alias, u.f_name, u.l_name, pr.profile_pic`

const postJoins = `
	FROM posts p
	JOIN accounts u ON u.id = p.owner_id
	JOIN profiles pr ON pr.account_id = u.id`

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var p domain.Post
	err := r.pool.QueryRow(ctx, `SELECT `+postColumns+postJoins+` WHERE p.id = $1`, id).Scan(postDest(&p)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	posts := []domain.Post{p}
	if err := r.loadRelations(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

func (r *PostRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + postJoins + `
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC`
	return r.listPosts(ctx, query, ownerID)
}

func (r *PostRepo) ListByOwners(ctx context.Context, ownerIDs []uuid.UUID, limit int) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + postJoins + `
		WHERE p.owner_id = ANY($1)
		ORDER BY p.created_at DESC
		LIMIT $2`
	return r.listPosts(ctx, query, ownerIDs, limit)
}

func (r *PostRepo) listPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(postDest(&p)...); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func postDest(p *domain.Post) []any {
	return []any{
		&p.ID, &p.File, &p.Thumbnail, &p.Type, &p.Caption, &p.CreatedAt,
		&p.Owner.ID, &p.Owner.Username, &p.Owner.UsernameAlias,
		&p.Owner.FirstName, &p.Owner.LastName, &p.Owner.ProfilePic,
	}
}

// loadRelations fills likes (oldest first) and comments for posts in place.
func (r *PostRepo) loadRelations(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(posts))
	index := make(map[uuid.UUID]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
	}

	if err := r.loadLikes(ctx, ids, posts, index); err != nil {
		return fmt.Errorf("loading likes: %w", err)
	}
	if err := r.loadComments(ctx, ids, posts, index); err != nil {
		return fmt.Errorf("loading comments: %w", err)
	}
	return nil
}

func (r *PostRepo) loadLikes(ctx context.Context, ids []uuid.UUID, posts []domain.Post, index map[uuid.UUID]int) error {
	query := `
		SELECT l.post_id, u.id, u.username, u.username_alias, u.f_name, u.l_name, pr.profile_pic
		FROM post_likes l
		JOIN accounts u ON u.id = l.account_id
		JOIN profiles pr ON pr.account_id = u.id
		WHERE l.post_id = ANY($1)
		ORDER BY l.seq`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var postID uuid.UUID
		var u domain.AccountRef
		if err := rows.Scan(&postID, &u.ID, &u.Username, &u.UsernameAlias, &u.FirstName, &u.LastName, &u.ProfilePic); err != nil {
			return err
		}
		i := index[postID]
		posts[i].Likes = append(posts[i].Likes, u)
	}
	return rows.Err()
}

func (r *PostRepo) loadComments(ctx context.Context, ids []uuid.UUID, posts []domain.Post, index map[uuid.UUID]int) error {
	query := `
		SELECT c.id, c.post_id, c.body, c.created_at,
			u.id, u.username, u.username_alias, u.f_name, u.l_name, pr.profile_pic
		FROM comments c
		JOIN accounts u ON u.id = c.author_id
		JOIN profiles pr ON pr.account_id = u.id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.Text, &c.CreatedAt,
			&c.Author.ID, &c.Author.Username, &c.Author.UsernameAlias,
			&c.Author.FirstName, &c.Author.LastName, &c.Author.ProfilePic,
		); err != nil {
			return err
		}
		i := index[c.PostID]
		posts[i].Comments = append(posts[i].Comments, c)
	}
	return rows.Err()
}
