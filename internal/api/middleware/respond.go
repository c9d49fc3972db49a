package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/infrastructure/monitoring"
)

// writeException renders the same payload shape the handlers use for errors
// raised before a request reaches them.
func writeException(w http.ResponseWriter, status int, title, exception string, details map[string]string) {
	monitoring.RecordAPIError(exception)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ExceptionDetails{
		Title:     title,
		Timestamp: time.Now(),
		Status:    status,
		Exception: exception,
		Details:   details,
	})
}
