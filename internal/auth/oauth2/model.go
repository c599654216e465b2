package oauth2

import (
	"context"
	"time"

	"github.com/vendorgate/authd/internal/auth/domain"
)

// TokenData carries the freshly generated opaque token values the engine
// hands to the model for persistence.
type TokenData struct {
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// RefreshTokenData is the reshaped refresh-token lookup result used by the
// refresh grant validation step.
type RefreshTokenData struct {
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Client                domain.TokenClient
	User                  domain.TokenUser
}

// Model is the storage contract the grant engine drives. Lookups report
// absence through the ok flag rather than an error: the engine maps absence
// to invalid_client/invalid_grant, and implementations collapse lower-level
// storage failures into absence as well (logging them), so that the engine's
// error vocabulary alone decides the protocol-visible outcome. The one
// exception is PersistToken, whose write failure is fatal and must surface:
// a grant response must never be returned without durable storage.
type Model interface {
	// VerifyClient resolves a client by clientId. When clientSecret is
	// non-empty it must match exactly; a mismatch is a miss, not an error.
	// The returned client's grants always include refresh_token.
	VerifyClient(ctx context.Context, clientID, clientSecret string) (domain.Client, bool)

	// UserFromClient derives the service-account identity for a verified
	// client. Pure mapping, no side effects.
	UserFromClient(client domain.Client) domain.TokenUser

	// PersistToken builds the denormalized token record and stores it.
	PersistToken(ctx context.Context, data TokenData, client domain.Client, user domain.TokenUser) (domain.Token, error)

	// AccessToken looks up a token record by access-token value.
	AccessToken(ctx context.Context, accessToken string) (domain.Token, bool)

	// RefreshToken looks up a token record by refresh-token value.
	RefreshToken(ctx context.Context, refreshToken string) (RefreshTokenData, bool)

	// Revoke deletes the record holding this refresh token, reporting
	// whether anything was removed. Refresh tokens are single-use.
	Revoke(ctx context.Context, refreshToken string) bool
}
