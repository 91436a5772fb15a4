package serializer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
)

var (
	ErrAmbiguousRelationship = errors.New("more than one relationship request between accounts")
	ErrInvalidRequestStatus  = errors.New("invalid relationship request status")
)

type RelationshipStatus string

const (
	RelationshipOpen              RelationshipStatus = "open"
	RelationshipPending           RelationshipStatus = "pending"
	RelationshipAccepted          RelationshipStatus = "accepted"
	RelationshipRejected          RelationshipStatus = "rejected"
	RelationshipPendingAcceptance RelationshipStatus = "pending_acceptance"
)

type Relationship struct {
	Status RelationshipStatus
	// RequestID is set only for pending_acceptance, so the viewer can
	// answer the request.
	RequestID *uuid.UUID
}

// DeriveRelationship computes how viewerID relates to owner from the
// requests exchanged between them. At most one request may exist.
func DeriveRelationship(owner *domain.Account, viewerID uuid.UUID, requests []domain.RelationshipRequest) (Relationship, error) {
	switch len(requests) {
	case 0:
		if owner.Profile.HasFriend(viewerID) {
			return Relationship{Status: RelationshipAccepted}, nil
		}
		return Relationship{Status: RelationshipOpen}, nil
	case 1:
	default:
		return Relationship{}, fmt.Errorf("%w: %d requests between %s and %s", ErrAmbiguousRelationship, len(requests), viewerID, owner.ID)
	}

	req := requests[0]
	if !req.Status.Valid() {
		return Relationship{}, fmt.Errorf("%w: %q", ErrInvalidRequestStatus, req.Status)
	}

	if req.FromID == viewerID {
		return Relationship{Status: RelationshipStatus(req.Status)}, nil
	}

	if req.Status == domain.RequestPending {
		id := req.ID
		return Relationship{Status: RelationshipPendingAcceptance, RequestID: &id}, nil
	}
	return Relationship{Status: RelationshipStatus(req.Status)}, nil
}
