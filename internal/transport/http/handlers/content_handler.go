package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/serializer"
	"github.com/vedran77/foo/internal/service"
	"github.com/vedran77/foo/internal/transport/http/middleware"
	"go.uber.org/zap"
)

type PostService interface {
	Feed(ctx context.Context, viewerID uuid.UUID, limit int) ([]serializer.PostSummaryPayload, error)
	Detail(ctx context.Context, viewerID, postID uuid.UUID) (*serializer.PostDetailPayload, error)
}

type ProfileService interface {
	Profile(ctx context.Context, viewerID, ownerID uuid.UUID) (*serializer.ProfilePayload, error)
}

type StoryService interface {
	Feed(ctx context.Context, viewerID uuid.UUID) ([]serializer.UserStoriesPayload, error)
}

type ContentHandler struct {
	posts    PostService
	profiles ProfileService
	stories  StoryService
	log      *zap.Logger
}

func NewContentHandler(posts PostService, profiles ProfileService, stories StoryService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{posts: posts, profiles: profiles, stories: stories, log: log}
}

func (h *ContentHandler) Feed(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetAccountID(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be a positive number")
			return
		}
		limit = n
	}

	feed, err := h.posts.Feed(r.Context(), viewerID, limit)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Account not found")
		} else {
			writeInternal(w, h.log, "feed", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

func (h *ContentHandler) PostDetail(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetAccountID(r.Context())
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	post, err := h.posts.Detail(r.Context(), viewerID, postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		} else {
			writeInternal(w, h.log, "post detail", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *ContentHandler) Profile(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetAccountID(r.Context())
	ownerID, ok := pathID(w, r, "id", "account")
	if !ok {
		return
	}

	profile, err := h.profiles.Profile(r.Context(), viewerID, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Account not found")
		case errors.Is(err, serializer.ErrAmbiguousRelationship), errors.Is(err, serializer.ErrInvalidRequestStatus):
			h.log.Error("relationship data inconsistent",
				zap.Stringer("viewer_id", viewerID),
				zap.Stringer("owner_id", ownerID),
				zap.Error(err),
			)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		default:
			writeInternal(w, h.log, "profile", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ContentHandler) Stories(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetAccountID(r.Context())

	stories, err := h.stories.Feed(r.Context(), viewerID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Account not found")
		} else {
			writeInternal(w, h.log, "stories", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, stories)
}
