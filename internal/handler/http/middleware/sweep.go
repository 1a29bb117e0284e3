package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/handler/http/response"
)

// SweepBeforeRequest runs the forced-closure sweep ahead of every
// request. On an ordinary no-op sweep nothing is visible to the caller;
// a fatal store error fails the enclosing request rather than letting
// it observe a ledger the sweep could not maintain.
func SweepBeforeRequest(sweeper ledger.SweeperService, loc *time.Location) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := sweeper.Sweep(r.Context(), time.Now().In(loc)); err != nil {
				slog.Error("Pre-request sweep failed", "path", r.URL.Path, "error", err)
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
