package oauth2

import (
	"context"
	"strings"
	"time"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/pkg/slogx"
	"github.com/vendorgate/authd/pkg/tokenx"
)

// Default token lifetimes.
const (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 14 * 24 * time.Hour
)

// Server executes the client_credentials and refresh_token grants and bearer
// authentication over a Model. It owns grant dispatch and the protocol error
// taxonomy; all record access goes through the model.
type Server struct {
	Model      Model
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewServer returns a Server with default TTLs where unset.
func NewServer(model Model) *Server {
	return &Server{
		Model:      model,
		AccessTTL:  DefaultAccessTTL,
		RefreshTTL: DefaultRefreshTTL,
	}
}

// TokenRequest is a parsed token-endpoint request.
type TokenRequest struct {
	GrantType    string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Token processes a token request, dispatching on grant type.
func (s *Server) Token(ctx context.Context, req TokenRequest) (domain.Token, *Error) {
	switch req.GrantType {
	case domain.GrantClientCredentials:
		return s.clientCredentials(ctx, req)
	case domain.GrantRefreshToken:
		return s.refreshToken(ctx, req)
	case "":
		return domain.Token{}, ErrInvalidRequest
	default:
		return domain.Token{}, ErrUnsupportedGrantType
	}
}

func (s *Server) clientCredentials(ctx context.Context, req TokenRequest) (domain.Token, *Error) {
	log := slogx.FromContext(ctx)

	if req.ClientID == "" || req.ClientSecret == "" {
		return domain.Token{}, ErrInvalidRequest
	}

	client, ok := s.Model.VerifyClient(ctx, req.ClientID, req.ClientSecret)
	if !ok {
		log.Info("client_credentials grant rejected", "client_id", req.ClientID)
		return domain.Token{}, ErrInvalidClient
	}
	if !client.HasGrant(domain.GrantClientCredentials) {
		return domain.Token{}, ErrUnauthorizedClient
	}

	data, err := s.mint(time.Now())
	if err != nil {
		log.Error("token generation failed", "error", err)
		return domain.Token{}, ErrServerError
	}

	user := s.Model.UserFromClient(client)

	token, err := s.Model.PersistToken(ctx, data, client, user)
	if err != nil {
		log.Error("token persistence failed", "error", err, "client_id", req.ClientID)
		return domain.Token{}, ErrServerError
	}
	return token, nil
}

func (s *Server) refreshToken(ctx context.Context, req TokenRequest) (domain.Token, *Error) {
	log := slogx.FromContext(ctx)

	if req.ClientID == "" || req.RefreshToken == "" {
		return domain.Token{}, ErrInvalidRequest
	}

	// Client secret may be absent on the refresh grant; when supplied the
	// model enforces the exact match.
	client, ok := s.Model.VerifyClient(ctx, req.ClientID, req.ClientSecret)
	if !ok {
		log.Info("refresh_token grant rejected", "client_id", req.ClientID)
		return domain.Token{}, ErrInvalidClient
	}
	if !client.HasGrant(domain.GrantRefreshToken) {
		return domain.Token{}, ErrUnauthorizedClient
	}

	old, ok := s.Model.RefreshToken(ctx, req.RefreshToken)
	if !ok {
		return domain.Token{}, ErrInvalidGrant
	}
	if old.Client.ID != client.ClientID {
		log.Warn("refresh token presented by another client",
			"client_id", req.ClientID, "issued_to", old.Client.ID)
		return domain.Token{}, ErrInvalidGrant
	}

	now := time.Now()
	if !old.RefreshTokenExpiresAt.IsZero() && now.After(old.RefreshTokenExpiresAt) {
		return domain.Token{}, ErrInvalidGrant
	}

	// Single-use rotation: the old refresh token dies the moment a new pair
	// is minted. A failed delete means it was already consumed.
	if !s.Model.Revoke(ctx, req.RefreshToken) {
		return domain.Token{}, ErrInvalidGrant
	}

	data, err := s.mint(now)
	if err != nil {
		log.Error("token generation failed", "error", err)
		return domain.Token{}, ErrServerError
	}

	token, err := s.Model.PersistToken(ctx, data, client, old.User)
	if err != nil {
		log.Error("token persistence failed", "error", err, "client_id", req.ClientID)
		return domain.Token{}, ErrServerError
	}
	return token, nil
}

// Authenticate verifies a bearer Authorization header value against the
// token store. Expiry is enforced here at validation time; expired records
// are never swept proactively.
func (s *Server) Authenticate(ctx context.Context, authorization string) (domain.Token, *Error) {
	value, ok := bearerValue(authorization)
	if !ok {
		return domain.Token{}, ErrInvalidToken
	}

	token, ok := s.Model.AccessToken(ctx, value)
	if !ok {
		return domain.Token{}, ErrInvalidToken
	}
	if time.Now().After(token.AccessTokenExpiresAt) {
		return domain.Token{}, ErrExpiredToken
	}
	return token, nil
}

func (s *Server) mint(now time.Time) (TokenData, error) {
	access, err := tokenx.Generate(tokenx.Size256)
	if err != nil {
		return TokenData{}, err
	}
	refresh, err := tokenx.Generate(tokenx.Size256)
	if err != nil {
		return TokenData{}, err
	}

	return TokenData{
		AccessToken:           access,
		AccessTokenExpiresAt:  now.Add(s.AccessTTL).UTC(),
		RefreshToken:          refresh,
		RefreshTokenExpiresAt: now.Add(s.RefreshTTL).UTC(),
	}, nil
}

func bearerValue(authorization string) (string, bool) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return "", false
	}
	value := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	return value, value != ""
}
