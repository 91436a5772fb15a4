package handlers

import (
	"net/http"
)

// Routes wires every endpoint onto a mux. auth guards the protected ones.
func Routes(accounts *AccountHandler, content *ContentHandler, auth func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /api/v1/auth/register", accounts.Register)
	mux.HandleFunc("POST /api/v1/auth/login", accounts.Login)

	// Protected - Accounts
	mux.Handle("GET /api/v1/users/{id}", auth(http.HandlerFunc(accounts.Get)))
	mux.Handle("GET /api/v1/users/{id}/profile", auth(http.HandlerFunc(content.Profile)))

	// Protected - Posts & Stories
	mux.Handle("GET /api/v1/posts", auth(http.HandlerFunc(content.Feed)))
	mux.Handle("GET /api/v1/posts/{id}", auth(http.HandlerFunc(content.PostDetail)))
	mux.Handle("GET /api/v1/stories", auth(http.HandlerFunc(content.Stories)))

	return mux
}
