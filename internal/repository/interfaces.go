package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
)

// Lookups return (nil, nil) when nothing matches.

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByUPRN(ctx context.Context, uprn string) (*domain.Account, error)
}

type PostRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Post, error)
	ListByOwners(ctx context.Context, ownerIDs []uuid.UUID, limit int) ([]domain.Post, error)
}

type StoryRepository interface {
	// ListOwners returns one entry per requested account, including
	// accounts that currently have no stories.
	ListOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]domain.StoryOwner, error)
}

type RelationshipRepository interface {
	// ListBetween returns requests in either direction between a and b.
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]domain.RelationshipRequest, error)
}
