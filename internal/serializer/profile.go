package serializer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
)

type ProfileContext struct {
	ViewerID uuid.UUID
	// Requests are the relationship requests in either direction between
	// the viewer and the profile owner.
	Requests []domain.RelationshipRequest
}

type ProfilePayload struct {
	FirstName     string             `json:"f_name"`
	LastName      string             `json:"l_name"`
	ID            uuid.UUID          `json:"id"`
	Email         string             `json:"email"`
	Posts         []PostThumbPayload `json:"posts"`
	About         string             `json:"about"`
	Username      string             `json:"username"`
	DP            string             `json:"dp"`
	IsMe          bool               `json:"isMe"`
	PostCount     int                `json:"post_count"`
	FriendsCount  int                `json:"friends_count"`
	RequestStatus RelationshipStatus `json:"requestStatus"`
	NotifID       *uuid.UUID         `json:"notif_id,omitempty"`
}

func (s *Serializer) ProfilePage(owner *domain.Account, posts []domain.Post, ctx ProfileContext) (*ProfilePayload, error) {
	rel, err := DeriveRelationship(owner, ctx.ViewerID, ctx.Requests)
	if err != nil {
		return nil, fmt.Errorf("deriving relationship: %w", err)
	}

	thumbs := make([]PostThumbPayload, 0, len(posts))
	for i := range posts {
		thumbs = append(thumbs, s.postThumb(&posts[i]))
	}

	return &ProfilePayload{
		FirstName:     owner.FirstName,
		LastName:      owner.LastName,
		ID:            owner.ID,
		Email:         owner.Email,
		Posts:         thumbs,
		About:         owner.Profile.About,
		Username:      owner.Username,
		DP:            s.media.URL(owner.Profile.ProfilePic),
		IsMe:          owner.ID == ctx.ViewerID,
		PostCount:     len(posts),
		FriendsCount:  len(owner.Profile.FriendIDs),
		RequestStatus: rel.Status,
		NotifID:       rel.RequestID,
	}, nil
}
