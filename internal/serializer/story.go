package serializer

import (
	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
)

type UserStoriesPayload struct {
	Username string         `json:"username"`
	ID       uuid.UUID      `json:"id"`
	Stories  []StoryPayload `json:"stories"`
	DP       string         `json:"dp"`
}

type StoryPayload struct {
	File  string `json:"file"`
	Views int    `json:"views"`
	Time  string `json:"time"`
}

// UserStories shapes an account's stories. ok is false when the account
// has none, in which case the account must be left out of the response.
func (s *Serializer) UserStories(owner domain.StoryOwner) (payload *UserStoriesPayload, ok bool) {
	if len(owner.Stories) == 0 {
		return nil, false
	}

	stories := make([]StoryPayload, 0, len(owner.Stories))
	for _, st := range owner.Stories {
		stories = append(stories, StoryPayload{
			File:  s.media.URL(st.File),
			Views: len(st.Views),
			Time:  st.CreatedAt.UTC().Format(timeLayout),
		})
	}

	return &UserStoriesPayload{
		Username: owner.Account.Username,
		ID:       owner.Account.ID,
		Stories:  stories,
		DP:       s.media.URL(owner.Account.ProfilePic),
	}, true
}

func (s *Serializer) StoryFeed(owners []domain.StoryOwner) []UserStoriesPayload {
	out := make([]UserStoriesPayload, 0, len(owners))
	for _, o := range owners {
		if p, ok := s.UserStories(o); ok {
			out = append(out, *p)
		}
	}
	return out
}
