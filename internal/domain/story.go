package domain

import (
	"time"

	"github.com/google/uuid"
)

type Story struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	File      string
	CreatedAt time.Time
	Views     []uuid.UUID
}

// StoryOwner is an account together with its live stories.
type StoryOwner struct {
	Account AccountRef
	Stories []Story
}
