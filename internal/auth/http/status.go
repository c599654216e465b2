package http

import (
	"net/http"
	"time"

	"github.com/vendorgate/authd/internal/auth/store"
	"github.com/vendorgate/authd/pkg/httpx"
	"github.com/vendorgate/authd/pkg/slogx"
)

// StatusHandler godoc
//
//	@Summary		Service Status
//	@Description	Reports service status, version, environment and database connectivity. A store that cannot be reached degrades the reported status.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	StatusResponse	"status, version, timestamp, environment, database"
//	@Failure		503	{object}	StatusResponse	"status=degraded"
//	@Router			/status [get].
func StatusHandler(st store.Store, version, environment string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		connected := true
		if err := st.Connect(ctx); err != nil {
			connected = false
		} else if err := st.Ping(ctx); err != nil {
			connected = false
		}
		if !connected {
			slogx.FromContext(ctx).Warn("status probe: database unreachable")
		}

		resp := StatusResponse{
			Status:      "ok",
			Version:     version,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Environment: environment,
			Database:    DatabaseStatus{Connected: connected},
		}

		code := http.StatusOK
		if !connected {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, resp)
	})
}
