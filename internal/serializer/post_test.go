package serializer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/foo/internal/domain"
)

func newPost(likes ...domain.AccountRef) *domain.Post {
	owner := ref("owner", "dp/owner.png")
	owner.FirstName = "Olga"
	return &domain.Post{
		ID:      uuid.New(),
		Owner:   owner,
		File:    "posts/1.jpg",
		Type:    "image",
		Caption: "hello",
		Likes:   likes,
		Comments: []domain.Comment{
			{ID: uuid.New(), Author: ref("c1", "dp/c1.png"), Text: "nice"},
			{ID: uuid.New(), Author: ref("c2", ""), Text: "wow"},
		},
	}
}

func TestPostSummary(t *testing.T) {
	s := newTestSerializer()
	a, b := ref("a", "dp/a.png"), ref("b", "dp/b.png")
	p := newPost(a, b)

	t.Run("liked by viewer", func(t *testing.T) {
		got := s.PostSummary(p, PostContext{ViewerID: b.ID})

		assert.True(t, got.HasLiked)
		assert.Equal(t, 2, got.LikeCount)
		assert.Equal(t, 2, got.CommentCount)
		assert.Equal(t, cdn+"/posts/1.jpg", got.File)
		assert.Equal(t, "", got.Thumbnail)
		assert.Equal(t, "owner", got.User.Username)
		assert.Equal(t, "Olga", got.User.FirstName)
		assert.Equal(t, cdn+"/dp/owner.png", got.User.DP)
	})

	t.Run("not liked by viewer", func(t *testing.T) {
		got := s.PostSummary(p, PostContext{ViewerID: uuid.New()})
		assert.False(t, got.HasLiked)
	})

	t.Run("thumbnail resolved", func(t *testing.T) {
		p.Thumbnail = "thumbs/1.jpg"
		got := s.PostSummary(p, PostContext{})
		assert.Equal(t, cdn+"/thumbs/1.jpg", got.Thumbnail)
	})

	t.Run("list", func(t *testing.T) {
		assert.Empty(t, s.PostSummaries(nil, PostContext{}))
		assert.NotNil(t, s.PostSummaries(nil, PostContext{}))
		assert.Len(t, s.PostSummaries([]domain.Post{*p, *newPost()}, PostContext{}), 2)
	})
}

func TestRecentLikes(t *testing.T) {
	a, b, c, d := ref("a", "a"), ref("b", "b"), ref("c", "c"), ref("d", "d")

	aliases := func(refs []domain.AccountRef) []string {
		out := []string{}
		for _, r := range refs {
			out = append(out, r.UsernameAlias)
		}
		return out
	}

	assert.Equal(t, []string{}, aliases(RecentLikes(nil)))
	assert.Equal(t, []string{"a", "b"}, aliases(RecentLikes([]domain.AccountRef{a, b})))
	assert.Equal(t, []string{"a", "b", "c"}, aliases(RecentLikes([]domain.AccountRef{a, b, c})))
	assert.Equal(t, []string{"d", "c", "b"}, aliases(RecentLikes([]domain.AccountRef{a, b, c, d})))
}

func TestPostDetail(t *testing.T) {
	s := newTestSerializer()
	a, b, c, d := ref("a", "dp/a.png"), ref("b", "dp/b.png"), ref("c", "dp/c.png"), ref("d", "dp/d.png")
	p := newPost(a, b, c, d)

	got := s.PostDetail(p, PostContext{ViewerID: a.ID})

	assert.Equal(t, []string{cdn + "/dp/d.png", cdn + "/dp/c.png", cdn + "/dp/b.png"}, got.RecentLikes)
	assert.True(t, got.HasLiked)
	assert.Equal(t, 4, got.LikeCount)
	assert.Equal(t, "owner", got.Username)
	assert.Equal(t, p.Owner.ID, got.UserID)
	assert.Equal(t, cdn+"/dp/owner.png", got.DP)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, CommentPayload{Comment: "nice", DP: cdn + "/dp/c1.png", User: "c1"}, got.Comments[0])
	assert.Equal(t, "", got.Comments[1].DP)

	m := toMap(t, got)
	for _, key := range []string{"file", "user", "id", "post_type", "caption", "thumbnail", "comment_count", "hasLiked", "likeCount", "comment_set", "dp", "username", "user_id", "recent_likes"} {
		assert.Contains(t, m, key)
	}
}

func TestPostDetail_NoLikes(t *testing.T) {
	s := newTestSerializer()
	p := newPost()
	p.Comments = nil

	m := toMap(t, s.PostDetail(p, PostContext{}))

	assert.Equal(t, []any{}, m["recent_likes"])
	assert.Equal(t, []any{}, m["comment_set"])
	assert.Equal(t, false, m["hasLiked"])
}
