package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oss-atlas/open-source-directory-backend/auth"
	"github.com/oss-atlas/open-source-directory-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	accounts  AdminAccountStore
	issuer    *auth.TokenIssuer
}

func newAuthHandler(accounts AdminAccountStore, issuer *auth.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		accounts:  accounts,
		issuer:    issuer,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  adminView `json:"user"`
}

type adminView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// login verifies admin credentials and issues a bearer token. Unknown
// usernames and wrong passwords produce the same 401 so the response does
// not reveal which accounts exist. Credentials are never logged.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("username and password are required"))
			return
		}

		account, err := h.accounts.FindByUsername(req.Username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find admin account", "admin account", err))
			return
		}

		if !auth.VerifyPassword(req.Password, account.PasswordHash) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if err := h.accounts.TouchLastLogin(account.ID); err != nil {
			h.logger.Error().Err(err).Str("username", account.Username).Msg("Failed to update last login")
		}

		email := ""
		if account.Email != nil {
			email = *account.Email
		}

		token, err := h.issuer.Issue(account.ID.String(), account.Username, email, account.Role)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Token: token,
			User: adminView{
				ID:       account.ID.String(),
				Username: account.Username,
				Email:    email,
				Role:     account.Role,
			},
		})
	}
}
