package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/foo/internal/domain"
)

const accountColumns = `
	a.id, a.email, a.username, a.username_alias, a.f_name, a.l_name,
	a.password_hash, a.uprn, a.token, a.dob, a.created_at,
	p.mood, p.general_last_seen, p.profile_pic, p.about`

type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts the account and its empty profile in one transaction.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO accounts (id, email, username, username_alias, f_name, l_name, password_hash, uprn, token, dob, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			a.ID, a.Email, a.Username, a.UsernameAlias, a.FirstName, a.LastName,
			a.PasswordHash, a.UPRN, a.Token, a.DOB, a.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting account: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (account_id, mood, general_last_seen, profile_pic, about)
			VALUES ($1, $2, $3, $4, $5)`,
			a.ID, a.Profile.Mood, a.Profile.GeneralLastSeen, a.Profile.ProfilePic, a.Profile.About,
		)
		if err != nil {
			return fmt.Errorf("inserting profile: %w", err)
		}
		return nil
	})
}

func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getAccount(ctx, "a.id = $1", id)
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getAccount(ctx, "a.email = $1", email)
}

func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.getAccount(ctx, "a.username = $1", username)
}

func (r *AccountRepo) GetByUPRN(ctx context.Context, uprn string) (*domain.Account, error) {
	return r.getAccount(ctx, "a.uprn = $1", uprn)
}

func (r *AccountRepo) getAccount(ctx context.Context, where string, arg any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts a
		JOIN profiles p ON p.account_id = a.id
		WHERE ` + where

	var a domain.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.Username, &a.UsernameAlias, &a.FirstName, &a.LastName,
		&a.PasswordHash, &a.UPRN, &a.Token, &a.DOB, &a.CreatedAt,
		&a.Profile.Mood, &a.Profile.GeneralLastSeen, &a.Profile.ProfilePic, &a.Profile.About,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if a.Profile.FriendIDs, err = r.friendIDs(ctx, a.ID); err != nil {
		return nil, fmt.Errorf("loading friends: %w", err)
	}
	if a.Profile.HiddenFrom, err = r.hiddenFrom(ctx, a.ID); err != nil {
		return nil, fmt.Errorf("loading last seen list: %w", err)
	}
	return &a, nil
}

func (r *AccountRepo) friendIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT friend_id FROM profile_friends WHERE account_id = $1 ORDER BY created_at`, accountID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *AccountRepo) hiddenFrom(ctx context.Context, accountID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.username
		FROM profile_last_seen_hidden h
		JOIN accounts u ON u.id = h.hidden_from_id
		WHERE h.account_id = $1
		ORDER BY u.username`, accountID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
