package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/oss-atlas/open-source-directory-backend/errs"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"github.com/oss-atlas/open-source-directory-backend/ratelimit"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type signupHandler struct {
	responder Responder
	logger    zerolog.Logger
	signups   EmailSignupStore
	limiter   *ratelimit.Limiter
}

func newSignupHandler(signups EmailSignupStore, limiter *ratelimit.Limiter) signupHandler {
	logger := log.With().Str("handlerName", "signupHandler").Logger()

	return signupHandler{
		responder: NewResponder(logger),
		logger:    logger,
		signups:   signups,
		limiter:   limiter,
	}
}

// signup stores a newsletter email, rate limited per IP (3/minute) and per
// email (1/hour) when redis is configured.
func (h signupHandler) signup() http.HandlerFunc {
	type signupRequest struct {
		Email string `json:"email"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		email := strings.TrimSpace(strings.ToLower(req.Email))
		if email == "" || !strings.Contains(email, "@") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "not a valid email address"))
			return
		}

		ctx := r.Context()
		if !h.limiter.Allow(ctx, "signup:ip:"+clientIP(r), 3, time.Minute) {
			h.responder.WriteError(w, errs.NewRateLimitedError("signup"))
			return
		}
		if !h.limiter.Allow(ctx, "signup:email:"+email, 1, time.Hour) {
			h.responder.WriteError(w, errs.NewRateLimitedError("signup"))
			return
		}

		if err := h.signups.Add(&models.EmailSignup{Email: email}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create signup", "email", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "email registered successfully",
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
