package serializer

import (
	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
)

const recentLikesLimit = 3

type PostContext struct {
	ViewerID uuid.UUID
}

type PostSummaryPayload struct {
	File         string         `json:"file"`
	User         AccountSummary `json:"user"`
	ID           uuid.UUID      `json:"id"`
	PostType     string         `json:"post_type"`
	Caption      string         `json:"caption"`
	Thumbnail    string         `json:"thumbnail"`
	CommentCount int            `json:"comment_count"`
	HasLiked     bool           `json:"hasLiked"`
	LikeCount    int            `json:"likeCount"`
}

type PostDetailPayload struct {
	PostSummaryPayload
	Comments    []CommentPayload `json:"comment_set"`
	DP          string           `json:"dp"`
	Username    string           `json:"username"`
	UserID      uuid.UUID        `json:"user_id"`
	RecentLikes []string         `json:"recent_likes"`
}

type CommentPayload struct {
	Comment string `json:"comment"`
	DP      string `json:"dp"`
	User    string `json:"user"`
}

// PostThumbPayload is the compact post listed on a profile page.
type PostThumbPayload struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	Type      string    `json:"type"`
	Comments  int       `json:"comments"`
	Thumbnail string    `json:"thumbnail"`
}

func (s *Serializer) PostSummary(p *domain.Post, ctx PostContext) PostSummaryPayload {
	return PostSummaryPayload{
		File:         s.media.URL(p.File),
		User:         s.summary(p.Owner),
		ID:           p.ID,
		PostType:     p.Type,
		Caption:      p.Caption,
		Thumbnail:    s.media.URL(p.Thumbnail),
		CommentCount: len(p.Comments),
		HasLiked:     p.LikedBy(ctx.ViewerID),
		LikeCount:    len(p.Likes),
	}
}

func (s *Serializer) PostSummaries(posts []domain.Post, ctx PostContext) []PostSummaryPayload {
	out := make([]PostSummaryPayload, 0, len(posts))
	for i := range posts {
		out = append(out, s.PostSummary(&posts[i], ctx))
	}
	return out
}

func (s *Serializer) PostDetail(p *domain.Post, ctx PostContext) *PostDetailPayload {
	comments := make([]CommentPayload, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentPayload{
			Comment: c.Text,
			DP:      s.media.URL(c.Author.ProfilePic),
			User:    c.Author.UsernameAlias,
		})
	}

	likers := RecentLikes(p.Likes)
	recent := make([]string, 0, len(likers))
	for _, l := range likers {
		recent = append(recent, s.media.URL(l.ProfilePic))
	}

	return &PostDetailPayload{
		PostSummaryPayload: s.PostSummary(p, ctx),
		Comments:           comments,
		DP:                 s.media.URL(p.Owner.ProfilePic),
		Username:           p.Owner.UsernameAlias,
		UserID:             p.Owner.ID,
		RecentLikes:        recent,
	}
}

// RecentLikes picks the likers shown next to a post. Up to three likes are
// returned oldest first; past that the three newest are returned newest
// first.
func RecentLikes(likes []domain.AccountRef) []domain.AccountRef {
	if len(likes) <= recentLikesLimit {
		return append([]domain.AccountRef(nil), likes...)
	}

	out := make([]domain.AccountRef, 0, recentLikesLimit)
	for i := len(likes) - 1; i >= 0 && len(out) < recentLikesLimit; i-- {
		out = append(out, likes[i])
	}
	return out
}

func (s *Serializer) postThumb(p *domain.Post) PostThumbPayload {
	return PostThumbPayload{
		ID:        p.ID,
		URL:       s.media.URL(p.File),
		Likes:     len(p.Likes),
		Type:      p.Type,
		Comments:  len(p.Comments),
		Thumbnail: s.media.URL(p.Thumbnail),
	}
}
