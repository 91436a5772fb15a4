package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
	"github.com/vedran77/foo/internal/repository"
	"github.com/vedran77/foo/internal/serializer"
	"github.com/vedran77/foo/pkg/validator"
	"golang.org/x/crypto/argon2"
)

var (
	ErrEmailTaken      = errors.New("email already taken")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrUPRNTaken       = errors.New("uprn already registered")
	ErrInvalidCreds    = errors.New("invalid email or password")
	ErrAccountNotFound = errors.New("account not found")
)

type AccountService struct {
	accountRepo repository.AccountRepository
	serializer  *serializer.Serializer
	jwtSecret   []byte
	tokenTTL    time.Duration
}

func NewAccountService(accountRepo repository.AccountRepository, s *serializer.Serializer, jwtSecret string, tokenTTL time.Duration) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		serializer:  s,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	UPRN     string `json:"uprn"`
	Token    string `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	*serializer.AccountPayload
	AccessToken string `json:"access_token"`
}

// Register validates the input, stores a new account and returns it in
// the default account shape. Validation failures are returned as
// validator.ValidationErrors.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*serializer.AccountPayload, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if errs := validator.ValidateRegister(input.Email, input.Username, input.UPRN, input.Token, input.Password); errs.HasErrors() {
		return nil, errs
	}

	if err := s.ensureUnique(ctx, input); err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &domain.Account{
		ID:            uuid.New(),
		Email:         input.Email,
		Username:      input.Username,
		UsernameAlias: input.Username,
		PasswordHash:  hash,
		UPRN:          input.UPRN,
		Token:         input.Token,
		CreatedAt:     time.Now(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return s.serializer.Account(account, serializer.AccountContext{}), nil
}

func (s *AccountService) ensureUnique(ctx context.Context, input RegisterInput) error {
	existing, err := s.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	existing, err = s.accountRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	existing, err = s.accountRepo.GetByUPRN(ctx, input.UPRN)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUPRNTaken
	}
	return nil
}

func (s *AccountService) Login(ctx context.Context, input LoginInput) (*LoginResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCreds
	}

	if !verifyPassword(input.Password, account.PasswordHash) {
		return nil, ErrInvalidCreds
	}

	token, err := s.generateToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginResponse{
		AccountPayload: s.serializer.Account(account, serializer.AccountContext{Mode: serializer.ModeLogin}),
		AccessToken:    token,
	}, nil
}

// Get returns another account's public card. Chat mode exposes the real
// username instead of the alias.
func (s *AccountService) Get(ctx context.Context, accountID uuid.UUID, mode serializer.Mode) (*serializer.AccountSummary, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	summary := s.serializer.PublicAccount(account, serializer.AccountContext{Mode: mode})
	return &summary, nil
}

func (s *AccountService) generateToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID.String(),
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyPassword(password, encoded string) bool {
	saltB64, hashB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}
