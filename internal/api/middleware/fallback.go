package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const internalCause = "An unexpected error occurred."

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeException(w, http.StatusNotFound, "Not Found! Consult the documentation", "NotFoundError",
		map[string]string{"cause": "No route for " + r.Method + " " + r.URL.Path})
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeException(w, http.StatusMethodNotAllowed, "Method Not Allowed! Consult the documentation", "MethodNotAllowedError",
		map[string]string{"cause": "Method " + r.Method + " is not allowed on " + r.URL.Path})
}

// Recoverer turns a handler panic into a 500 with the error payload. If the
// handler already started its response, the panic is only logged.
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				logger.ErrorContext(r.Context(), "Recovered from handler panic",
					slog.Any("panic", rvr),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				if ww.Status() == 0 {
					writeException(ww, http.StatusInternalServerError, "Internal Server Error! Consult the documentation", "InternalError",
						map[string]string{"cause": internalCause})
				}
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

// Timeout cancels the request context after d. A handler that gave up
// without writing gets a 504 with the error payload.
func Timeout(d time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				writeException(ww, http.StatusGatewayTimeout, "Gateway Timeout! Consult the documentation", "TimeoutError",
					map[string]string{"cause": "Request timed out after " + d.String()})
			}
		}
		return http.HandlerFunc(fn)
	}
}
