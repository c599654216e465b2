package http

import (
	"net/http"
	"strings"

	"github.com/vendorgate/authd/internal/auth/oauth2"
	"github.com/vendorgate/authd/pkg/httpx"
)

// TokenHandler serves POST /oauth/token.
// Accepts application/x-www-form-urlencoded per the RFC 6749 framework.
type TokenHandler struct {
	Engine *oauth2.Server
}

// ServeHTTP godoc
//
//	@Summary		OAuth2 Token Endpoint
//	@Description	Issues access and refresh tokens using the client_credentials and refresh_token grant types.
//	@Tags			OAuth2
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			grant_type		formData	string			true	"Grant type"	Enums(client_credentials, refresh_token)
//	@Param			client_id		formData	string			true	"Client identifier"
//	@Param			client_secret	formData	string			false	"Client secret (required for client_credentials)"
//	@Param			refresh_token	formData	string			false	"Refresh token (required for refresh_token grant)"
//	@Success		200				{object}	domain.Token	"accessToken, refreshToken, expiries, client, user, finalAuthToken"
//	@Failure		400				{object}	oauth2.Error	"error, error_description"
//	@Failure		401				{object}	oauth2.Error	"error, error_description"
//	@Failure		500				{object}	oauth2.Error	"error, error_description"
//	@Header			200				{string}	Cache-Control	"no-store"
//	@Header			200				{string}	Pragma			"no-cache"
//	@Router			/oauth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		oauth2.ErrInvalidContentType.WriteError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		oauth2.ErrInvalidFormBody.WriteError(w)
		return
	}

	req := oauth2.TokenRequest{
		GrantType:    r.Form.Get("grant_type"),
		ClientID:     strings.TrimSpace(r.Form.Get("client_id")),
		ClientSecret: r.Form.Get("client_secret"),
		RefreshToken: r.Form.Get("refresh_token"),
	}

	token, oerr := h.Engine.Token(r.Context(), req)
	if oerr != nil {
		oerr.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, token)
}
