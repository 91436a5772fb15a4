package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/repository"
	"github.com/vedran77/foo/internal/serializer"
)

type ProfileService struct {
	accountRepo      repository.AccountRepository
	postRepo         repository.PostRepository
	relationshipRepo repository.RelationshipRepository
	serializer       *serializer.Serializer
}

func NewProfileService(
	accountRepo repository.AccountRepository,
	postRepo repository.PostRepository,
	relationshipRepo repository.RelationshipRepository,
	s *serializer.Serializer,
) *ProfileService {
	return &ProfileService{
		accountRepo:      accountRepo,
		postRepo:         postRepo,
		relationshipRepo: relationshipRepo,
		serializer:       s,
	}
}

func (s *ProfileService) Profile(ctx context.Context, viewerID, ownerID uuid.UUID) (*serializer.ProfilePayload, error) {
	owner, err := s.accountRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrAccountNotFound
	}

	posts, err := s.postRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	requests, err := s.relationshipRepo.ListBetween(ctx, viewerID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing relationship requests: %w", err)
	}

	return s.serializer.ProfilePage(owner, posts, serializer.ProfileContext{
		ViewerID: viewerID,
		Requests: requests,
	})
}
