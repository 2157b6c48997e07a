package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/utils"
)

// withRecover turns a handler panic into the generic 500 JSON body. The
// panic value and stack only go to the log.
func (h *Handler) withRecover(next http.Handler) http.Handler {
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
				Str("func", "Handler.withRecover").
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			utils.WriteError(w, http.StatusInternalServerError, app.MsgServerError, app.KindServer)
		}()

		next.ServeHTTP(w, r)
	})
}
