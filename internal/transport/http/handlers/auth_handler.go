package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/serializer"
	"github.com/vedran77/foo/internal/service"
	"github.com/vedran77/foo/pkg/validator"
	"go.uber.org/zap"
)

type AccountService interface {
	Register(ctx context.Context, input service.RegisterInput) (*serializer.AccountPayload, error)
	Login(ctx context.Context, input service.LoginInput) (*service.LoginResponse, error)
	Get(ctx context.Context, accountID uuid.UUID, mode serializer.Mode) (*serializer.AccountSummary, error)
}

type AccountHandler struct {
	accountService AccountService
	log            *zap.Logger
}

func NewAccountHandler(accountService AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{accountService: accountService, log: log}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	resp, err := h.accountService.Register(r.Context(), input)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeValidationErrors(w, verrs)
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		case errors.Is(err, service.ErrUPRNTaken):
			writeError(w, http.StatusConflict, "UPRN_TAKEN", "UPRN is already registered")
		default:
			writeInternal(w, h.log, "register", err)
		}
		return
	}

	h.log.Info("account registered", zap.Stringer("account_id", resp.ID))
	writeJSON(w, http.StatusCreated, resp)
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateLogin(input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.accountService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		} else {
			writeInternal(w, h.log, "login", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get serves another account's card; ?mode=chat switches to the real
// username.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(w, r, "id", "account")
	if !ok {
		return
	}

	mode := serializer.ParseMode(r.URL.Query().Get("mode"))
	if mode == serializer.ModeLogin {
		mode = serializer.ModeDefault
	}

	resp, err := h.accountService.Get(r.Context(), accountID, mode)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Account not found")
		} else {
			writeInternal(w, h.log, "get account", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
