package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

// RelationshipRequest is a directed friend request from FromID to ToID.
type RelationshipRequest struct {
	ID        uuid.UUID     `json:"id"`
	FromID    uuid.UUID     `json:"from_id"`
	ToID      uuid.UUID     `json:"to_id"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
