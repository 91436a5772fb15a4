package service

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
	"github.com/vedran77/foo/internal/media"
	"github.com/vedran77/foo/internal/serializer"
)

const testCDN = "https://cdn.test"

func newTestSerializer() *serializer.Serializer {
	return serializer.New(media.NewBaseURLResolver(testCDN))
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*domain.Account
	created  int
}

func newFakeAccountRepo(accounts ...*domain.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: map[uuid.UUID]*domain.Account{}}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(_ context.Context, a *domain.Account) error {
	r.accounts[a.ID] = a
	r.created++
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	return r.find(func(a *domain.Account) bool { return a.Email == email }), nil
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	return r.find(func(a *domain.Account) bool { return a.Username == username }), nil
}

func (r *fakeAccountRepo) GetByUPRN(_ context.Context, uprn string) (*domain.Account, error) {
	return r.find(func(a *domain.Account) bool { return a.UPRN == uprn }), nil
}

func (r *fakeAccountRepo) find(match func(*domain.Account) bool) *domain.Account {
	for _, a := range r.accounts {
		if match(a) {
			return a
		}
	}
	return nil
}

type fakePostRepo struct {
	posts []domain.Post
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return &r.posts[i], nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if p.Owner.ID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListByOwners(_ context.Context, ownerIDs []uuid.UUID, limit int) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if slices.Contains(ownerIDs, p.Owner.ID) && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeStoryRepo struct {
	stories []domain.Story
	refs    map[uuid.UUID]domain.AccountRef
}

func (r *fakeStoryRepo) ListOwners(_ context.Context, ownerIDs []uuid.UUID) ([]domain.StoryOwner, error) {
	var out []domain.StoryOwner
	for _, id := range ownerIDs {
		owner := domain.StoryOwner{Account: r.refs[id]}
		for _, st := range r.stories {
			if st.OwnerID == id {
				owner.Stories = append(owner.Stories, st)
			}
		}
		out = append(out, owner)
	}
	return out, nil
}

type fakeRelationshipRepo struct {
	requests []domain.RelationshipRequest
}

func (r *fakeRelationshipRepo) ListBetween(_ context.Context, a, b uuid.UUID) ([]domain.RelationshipRequest, error) {
	var out []domain.RelationshipRequest
	for _, req := range r.requests {
		if (req.FromID == a && req.ToID == b) || (req.FromID == b && req.ToID == a) {
			out = append(out, req)
		}
	}
	return out, nil
}

func newAccount(username string) *domain.Account {
	return &domain.Account{
		ID:            uuid.New(),
		Email:         username + "@example.com",
		Username:      username,
		UsernameAlias: username + "_alias",
		UPRN:          "UPRN-" + username,
		Token:         "tok-" + username,
		Profile:       domain.Profile{ProfilePic: "dp/" + username + ".png"},
	}
}
