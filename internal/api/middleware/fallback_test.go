package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"credit-application/internal/api/handler/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeExceptionBody(t *testing.T, rec *httptest.ResponseRecorder) dto.ExceptionDetails {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body dto.ExceptionDetails
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeExceptionBody(t, rec)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "NotFoundError", body.Exception)
	assert.Equal(t, "No route for GET /api/nope", body.Details["cause"])
	assert.False(t, body.Timestamp.IsZero())
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, httptest.NewRequest(http.MethodPut, "/api/customers", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeExceptionBody(t, rec)
	assert.Equal(t, "MethodNotAllowedError", body.Exception)
	assert.Equal(t, "Method PUT is not allowed on /api/customers", body.Details["cause"])
}

func TestRecoverer(t *testing.T) {
	t.Run("Panic becomes uniform 500", func(t *testing.T) {
		h := Recoverer(testLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/customers/1", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeExceptionBody(t, rec)
		assert.Equal(t, "InternalError", body.Exception)
		assert.Equal(t, map[string]string{"cause": "An unexpected error occurred."}, body.Details)
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("Panic after response started keeps the response", func(t *testing.T) {
		h := Recoverer(testLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("late")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Abort handler is re-raised", func(t *testing.T) {
		h := Recoverer(testLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("No panic passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Recoverer(testLogger)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTimeout(t *testing.T) {
	t.Run("Silent handler gets uniform 504", func(t *testing.T) {
		h := Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/credits", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		body := decodeExceptionBody(t, rec)
		assert.Equal(t, "TimeoutError", body.Exception)
		assert.Equal(t, http.StatusGatewayTimeout, body.Status)
	})

	t.Run("Handler that answered in time is untouched", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Timeout(time.Second)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Handler that wrote before the deadline is untouched", func(t *testing.T) {
		h := Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
