package serializer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/foo/internal/domain"
)

func TestDeriveRelationship(t *testing.T) {
	owner := newAccount()
	viewer := uuid.New()
	reqID := uuid.New()

	fromViewer := func(status domain.RequestStatus) []domain.RelationshipRequest {
		return []domain.RelationshipRequest{{ID: reqID, FromID: viewer, ToID: owner.ID, Status: status}}
	}
	fromOwner := func(status domain.RequestStatus) []domain.RelationshipRequest {
		return []domain.RelationshipRequest{{ID: reqID, FromID: owner.ID, ToID: viewer, Status: status}}
	}

	tests := []struct {
		name      string
		friends   []uuid.UUID
		requests  []domain.RelationshipRequest
		want      RelationshipStatus
		wantReqID bool
	}{
		{name: "no request, not friends", want: RelationshipOpen},
		{name: "no request, already friends", friends: []uuid.UUID{uuid.New(), viewer}, want: RelationshipAccepted},
		{name: "viewer sent pending", requests: fromViewer(domain.RequestPending), want: RelationshipPending},
		{name: "viewer sent accepted", requests: fromViewer(domain.RequestAccepted), want: RelationshipAccepted},
		{name: "viewer sent rejected", requests: fromViewer(domain.RequestRejected), want: RelationshipRejected},
		{name: "owner sent pending", requests: fromOwner(domain.RequestPending), want: RelationshipPendingAcceptance, wantReqID: true},
		{name: "owner sent accepted", requests: fromOwner(domain.RequestAccepted), want: RelationshipAccepted},
		{name: "owner sent rejected", requests: fromOwner(domain.RequestRejected), want: RelationshipRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner.Profile.FriendIDs = tt.friends

			got, err := DeriveRelationship(owner, viewer, tt.requests)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got.Status)
			if tt.wantReqID {
				require.NotNil(t, got.RequestID)
				assert.Equal(t, reqID, *got.RequestID)
			} else {
				assert.Nil(t, got.RequestID)
			}
		})
	}
}

func TestDeriveRelationship_Faults(t *testing.T) {
	owner := newAccount()
	viewer := uuid.New()

	t.Run("more than one request", func(t *testing.T) {
		reqs := []domain.RelationshipRequest{
			{ID: uuid.New(), FromID: viewer, ToID: owner.ID, Status: domain.RequestPending},
			{ID: uuid.New(), FromID: owner.ID, ToID: viewer, Status: domain.RequestPending},
		}
		_, err := DeriveRelationship(owner, viewer, reqs)
		assert.ErrorIs(t, err, ErrAmbiguousRelationship)
	})

	t.Run("unknown status", func(t *testing.T) {
		reqs := []domain.RelationshipRequest{{ID: uuid.New(), FromID: viewer, ToID: owner.ID, Status: "blocked"}}
		_, err := DeriveRelationship(owner, viewer, reqs)
		assert.ErrorIs(t, err, ErrInvalidRequestStatus)
	})
}
