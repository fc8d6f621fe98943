// Package http implements the HTTP transport layer of the credential
// vault: middleware, route handlers, and request/response helpers for the
// REST API. Authentication, tracing, logging, security headers, and login
// throttling are all applied here before requests reach the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/mlevansky/go-cred-vault/internal/logger"
	"github.com/mlevansky/go-cred-vault/internal/utils"
)

// auth enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to an
// account via the auth service, and stores the account in the request
// context under [utils.UserCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 when the header is absent or
// malformed, and when the token fails verification for any reason
// (bad signature, wrong algorithm, expiry, unknown subject). The precise
// cause is logged; the response body never distinguishes the cases.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("request authentication failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated account in the context so downstream
		// handlers can retrieve it without re-verifying the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
