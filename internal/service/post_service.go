package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/repository"
	"github.com/vedran77/foo/internal/serializer"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 100
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	postRepo    repository.PostRepository
	accountRepo repository.AccountRepository
	serializer  *serializer.Serializer
}

func NewPostService(postRepo repository.PostRepository, accountRepo repository.AccountRepository, s *serializer.Serializer) *PostService {
	return &PostService{
		postRepo:    postRepo,
		accountRepo: accountRepo,
		serializer:  s,
	}
}

// Feed lists the newest posts of the viewer and the viewer's friends.
func (s *PostService) Feed(ctx context.Context, viewerID uuid.UUID, limit int) ([]serializer.PostSummaryPayload, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	limit = min(limit, maxFeedLimit)

	viewer, err := s.accountRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, ErrAccountNotFound
	}

	owners := append([]uuid.UUID{viewer.ID}, viewer.Profile.FriendIDs...)
	posts, err := s.postRepo.ListByOwners(ctx, owners, limit)
	if err != nil {
		return nil, err
	}

	return s.serializer.PostSummaries(posts, serializer.PostContext{ViewerID: viewerID}), nil
}

func (s *PostService) Detail(ctx context.Context, viewerID, postID uuid.UUID) (*serializer.PostDetailPayload, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return s.serializer.PostDetail(post, serializer.PostContext{ViewerID: viewerID}), nil
}
