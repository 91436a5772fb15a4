package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/repository"
	"github.com/vedran77/foo/internal/serializer"
)

type StoryService struct {
	storyRepo   repository.StoryRepository
	accountRepo repository.AccountRepository
	serializer  *serializer.Serializer
}

func NewStoryService(storyRepo repository.StoryRepository, accountRepo repository.AccountRepository, s *serializer.Serializer) *StoryService {
	return &StoryService{
		storyRepo:   storyRepo,
		accountRepo: accountRepo,
		serializer:  s,
	}
}

// Feed returns the stories of the viewer and the viewer's friends. Accounts
// without stories are left out.
func (s *StoryService) Feed(ctx context.Context, viewerID uuid.UUID) ([]serializer.UserStoriesPayload, error) {
	viewer, err := s.accountRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, ErrAccountNotFound
	}

	ids := append([]uuid.UUID{viewer.ID}, viewer.Profile.FriendIDs...)
	owners, err := s.storyRepo.ListOwners(ctx, ids)
	if err != nil {
		return nil, err
	}

	return s.serializer.StoryFeed(owners), nil
}
