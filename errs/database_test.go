package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewDatabaseErrorStatusCodes(t *testing.T) {
	testCases := []struct {
		name       string
		cause      error
		wantStatus int
		wantIs     error
	}{
		{
			name:       "record not found",
			cause:      gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
			wantIs:     ErrNotFound,
		},
		{
			name:       "duplicated key",
			cause:      gorm.ErrDuplicatedKey,
			wantStatus: http.StatusConflict,
			wantIs:     ErrAlreadyExists,
		},
		{
			name:       "foreign key violated",
			cause:      gorm.ErrForeignKeyViolated,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "connection failure",
			cause:      errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantIs:     ErrDatabaseConnection,
		},
		{
			name:       "unknown failure",
			cause:      errors.New("some query exploded"),
			wantStatus: http.StatusInternalServerError,
			wantIs:     ErrDatabaseQuery,
		},
		{
			name:       "nil cause",
			cause:      nil,
			wantStatus: http.StatusInternalServerError,
			wantIs:     ErrDatabaseQuery,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewDatabaseError("find", "project", tc.cause)
			require.NotNil(t, apiErr)
			assert.Equal(t, tc.wantStatus, apiErr.StatusCode)
			if tc.wantIs != nil {
				assert.ErrorIs(t, apiErr, tc.wantIs)
			}
		})
	}
}

func TestNewDatabaseErrorWrapsCause(t *testing.T) {
	apiErr := NewDatabaseError("delete", "project", gorm.ErrRecordNotFound)
	assert.Equal(t, gorm.ErrRecordNotFound, apiErr.Cause)
	assert.Contains(t, apiErr.GetFullError(), "record not found")
}

func TestApiErrSentinels(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("project")))
	assert.True(t, errors.Is(NewAlreadyExists("project"), ErrAlreadyExists))
	assert.True(t, IsBadRequest(NewMissingRequiredFieldError("name")))
	assert.False(t, IsNotFound(NewAlreadyExists("project")))
}
