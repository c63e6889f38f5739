package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/auth"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
}

func testAccount(t *testing.T, password string) *models.AdminAccount {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	email := "alice@example.com"
	return &models.AdminAccount{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        &email,
		PasswordHash: hash,
		Role:         "admin",
	}
}

func TestLoginSuccess(t *testing.T) {
	account := testAccount(t, "s3cret")
	touched := false
	store := &fakeAdminAccountStore{
		findByUsernameFn: func(username string) (*models.AdminAccount, error) {
			assert.Equal(t, "alice", username)
			return account, nil
		},
		touchLastLoginFn: func(id uuid.UUID) error {
			assert.Equal(t, account.ID, id)
			touched = true
			return nil
		},
	}

	issuer := testIssuer()
	h := newAuthHandler(store, issuer)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "alice", "password": "s3cret"}`))
	rec := httptest.NewRecorder()
	h.login()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, touched)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, account.ID.String(), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := issuer.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	// The hash must never appear in the response.
	assert.NotContains(t, rec.Body.String(), account.PasswordHash)
}

func TestLoginUnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	account := testAccount(t, "s3cret")

	unknownStore := &fakeAdminAccountStore{
		findByUsernameFn: func(username string) (*models.AdminAccount, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	wrongPasswordStore := &fakeAdminAccountStore{
		findByUsernameFn: func(username string) (*models.AdminAccount, error) {
			return account, nil
		},
	}

	h1 := newAuthHandler(unknownStore, testIssuer())
	req1 := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "nobody", "password": "s3cret"}`))
	rec1 := httptest.NewRecorder()
	h1.login()(rec1, req1)

	h2 := newAuthHandler(wrongPasswordStore, testIssuer())
	req2 := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "alice", "password": "wrong"}`))
	rec2 := httptest.NewRecorder()
	h2.login()(rec2, req2)

	// Both failures answer identically so usernames cannot be probed.
	assert.Equal(t, http.StatusUnauthorized, rec1.Code)
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)
	assert.Equal(t, rec1.Body.String(), rec2.Body.String())
}

func TestLoginMissingCredentials(t *testing.T) {
	h := newAuthHandler(&fakeAdminAccountStore{}, testIssuer())

	for _, body := range []string{
		`{}`,
		`{"username": "alice"}`,
		`{"password": "s3cret"}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.login()(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestLoginSucceedsWhenTouchFails(t *testing.T) {
	account := testAccount(t, "s3cret")
	store := &fakeAdminAccountStore{
		findByUsernameFn: func(username string) (*models.AdminAccount, error) {
			return account, nil
		},
		touchLastLoginFn: func(id uuid.UUID) error {
			return gorm.ErrInvalidDB
		},
	}

	h := newAuthHandler(store, testIssuer())
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "alice", "password": "s3cret"}`))
	rec := httptest.NewRecorder()
	h.login()(rec, req)

	// Updating last_login is best effort.
	assert.Equal(t, http.StatusOK, rec.Code)
}
