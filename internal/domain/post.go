package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID
	Owner     AccountRef
	File      string
	Thumbnail string
	Type      string
	Caption   string
	// Likes is ordered oldest first.
	Likes     []AccountRef
	Comments  []Comment
	CreatedAt time.Time
}

// LikedBy reports whether the account with the given id likes the post.
func (p *Post) LikedBy(id uuid.UUID) bool {
	for _, l := range p.Likes {
		if l.ID == id {
			return true
		}
	}
	return false
}

type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	Author    AccountRef
	Text      string
	CreatedAt time.Time
}
