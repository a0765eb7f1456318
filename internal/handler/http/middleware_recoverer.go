package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/what-to-cook/internal/logger"
)

// errHandlerPanicked wraps the value recovered from a panicking handler.
var errHandlerPanicked = errors.New("handler panicked")

// withRecoverer turns a handler panic into the regular JSON 500 response.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeError(w, r, fmt.Errorf("%w: %v", errHandlerPanicked, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
