package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"credit-application/internal/api/handler/dto"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"
)

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("no request body")
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"title":"Internal Server Error! Consult the documentation","status":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func statusFor(kind apperrors.Kind) (int, string) {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest, "Bad Request! Consult the documentation"
	case apperrors.KindInvalidArgument, apperrors.KindConflict, apperrors.KindBusinessRule:
		return http.StatusConflict, "Conflict! Consult the documentation"
	case apperrors.KindNotFound:
		return http.StatusNotFound, "Not Found! Consult the documentation"
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized, "Unauthorized! Consult the documentation"
	default:
		return http.StatusInternalServerError, "Internal Server Error! Consult the documentation"
	}
}

// respondError is the single place an error becomes an HTTP response.
func respondError(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)
	if kind == "" {
		kind = apperrors.KindInternal
	}
	status, title := statusFor(kind)
	if kind == apperrors.KindInternal {
		slog.Default().Error("Unhandled internal error", "error", err)
	}
	monitoring.RecordAPIError(string(kind))

	respondJSON(w, status, dto.ExceptionDetails{
		Title:     title,
		Timestamp: time.Now(),
		Status:    status,
		Exception: string(kind),
		Details:   apperrors.Details(err),
	})
}

func invalidBody(err error) error {
	return fmt.Errorf("%w: malformed request body: %v", apperrors.ErrInvalidArgument, err)
}

func parseID(raw, name string) (int64, error) {
	if raw == "" {
		return 0, apperrors.NewValidationError(name, "This field is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, "Must be a positive integer")
	}
	return id, nil
}
