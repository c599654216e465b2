package oauth2

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vendorgate/authd/pkg/httpx"
)

// OAuth2 error codes per RFC 6749.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeInvalidClient        = "invalid_client"
	ErrorCodeInvalidGrant         = "invalid_grant"
	ErrorCodeUnauthorizedClient   = "unauthorized_client"
	ErrorCodeUnsupportedGrantType = "unsupported_grant_type"
	ErrorCodeServerError          = "server_error"
	ErrorCodeInvalidToken         = "invalid_token"
)

// Error is a standard OAuth2 error per RFC 6749. The engine owns the whole
// protocol error vocabulary; the storage-facing model never constructs these.
type Error struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the OAuth2 error code (e.g., "invalid_grant")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this error as an OAuth2-compliant HTTP response.
func (e *Error) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest covers missing or malformed required parameters.
	ErrInvalidRequest = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidClient is returned when client authentication failed.
	ErrInvalidClient = &Error{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidClient,
		Description: "invalid client credentials",
	}

	// ErrInvalidGrant is returned when the presented refresh token is
	// invalid, expired, revoked, or was issued to another client.
	ErrInvalidGrant = &Error{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidGrant,
		Description: "the provided grant is invalid, expired or revoked",
	}

	// ErrUnauthorizedClient is returned when the authenticated client is not
	// authorized for the requested grant type.
	ErrUnauthorizedClient = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUnauthorizedClient,
		Description: "the client is not authorized to use this grant type",
	}

	// ErrUnsupportedGrantType is returned for grant types this server does
	// not process.
	ErrUnsupportedGrantType = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUnsupportedGrantType,
		Description: "grant type not supported",
	}

	// ErrServerError is returned when token persistence or another internal
	// step failed.
	ErrServerError = &Error{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}

	// ErrInvalidContentType is returned when the token request is not
	// application/x-www-form-urlencoded as RFC 6749 requires.
	ErrInvalidContentType = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "content-type must be application/x-www-form-urlencoded",
	}

	// ErrInvalidFormBody is returned when the form body cannot be parsed.
	ErrInvalidFormBody = &Error{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "invalid form body",
	}

	// ErrInvalidToken is returned when the presented bearer token is unknown.
	ErrInvalidToken = &Error{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token provided is invalid",
	}

	// ErrExpiredToken is returned when the presented bearer token has expired.
	ErrExpiredToken = &Error{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token provided has expired",
	}
)
