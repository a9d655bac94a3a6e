package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/stockroom/items-api/internal/api/shared"
)

// Recover converts panics in downstream handlers into a generic 500
// response so the process keeps serving. The panic value and stack are
// logged; the client only ever sees the fixed message.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					// the connection is gone, nothing sensible to write
					panic(rec)
				}

				slog.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method),
					slog.String("trace_id", shared.GetTraceID(r.Context())),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(w, r, http.StatusInternalServerError, "Something went wrong!")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
