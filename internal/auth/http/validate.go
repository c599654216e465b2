package http

import (
	"net/http"
	"time"

	"github.com/vendorgate/authd/internal/auth/oauth2"
	"github.com/vendorgate/authd/pkg/httpx"
)

// ValidateHandler serves GET /validate-token, introspecting the bearer token
// in the Authorization header. Expiry is enforced here at validation time;
// there is no background sweep of expired records.
type ValidateHandler struct {
	Engine *oauth2.Server
}

// ServeHTTP godoc
//
//	@Summary		Validate Bearer Token
//	@Description	Checks whether the presented bearer access token is known and unexpired.
//	@Tags			OAuth2
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Success		200				{object}	ValidateResponse	"active, username, expiresAt"
//	@Failure		401				{object}	ValidateResponse	"active=false, error, error_description"
//	@Router			/validate-token [get].
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, oerr := h.Engine.Authenticate(r.Context(), r.Header.Get("Authorization"))
	if oerr != nil {
		httpx.WriteJSON(w, oerr.StatusCode, ValidateResponse{
			Active:           false,
			Error:            oerr.Code,
			ErrorDescription: oerr.Description,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ValidateResponse{
		Active:    true,
		Username:  token.User.Username,
		ExpiresAt: token.AccessTokenExpiresAt.UTC().Format(time.RFC3339),
	})
}
