package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind   apperrors.Kind
		status int
		title  string
	}{
		{apperrors.KindValidation, http.StatusBadRequest, "Bad Request! Consult the documentation"},
		{apperrors.KindInvalidArgument, http.StatusConflict, "Conflict! Consult the documentation"},
		{apperrors.KindConflict, http.StatusConflict, "Conflict! Consult the documentation"},
		{apperrors.KindBusinessRule, http.StatusConflict, "Conflict! Consult the documentation"},
		{apperrors.KindNotFound, http.StatusNotFound, "Not Found! Consult the documentation"},
		{apperrors.KindUnauthorized, http.StatusUnauthorized, "Unauthorized! Consult the documentation"},
		{apperrors.KindInternal, http.StatusInternalServerError, "Internal Server Error! Consult the documentation"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			status, title := statusFor(tt.kind)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.title, title)
		})
	}
}

func TestRespondError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, apperrors.WrapDatabaseError(errors.New("password authentication failed for user app"), "failed to save"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "password authentication")

	var body dto.ExceptionDetails
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "InternalError", body.Exception)
	assert.Equal(t, http.StatusInternalServerError, body.Status)
}

func TestRespondError_InvalidArgument(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, invalidBody(fmt.Errorf("unexpected EOF")))

	var body dto.ExceptionDetails
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, body.Status)
	assert.Equal(t, "Conflict! Consult the documentation", body.Title)
	assert.Equal(t, "IllegalArgumentError", body.Exception)
	assert.Contains(t, body.Details["cause"], "malformed request body")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := parseID(raw, "id")
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err), raw)
	}
}
