package domain

import "time"

// TokenClient is the denormalized client snapshot stored on a token record.
// ID carries the business clientId, not the internal record identifier, so
// issued tokens stay valid even if the registry entry is later mutated or
// removed.
type TokenClient struct {
	Username string `json:"username"`
	ID       string `json:"id,omitempty"`
}

// TokenUser is the denormalized service-account identity stored on a token.
type TokenUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Token is an issued access grant. Records are immutable after creation;
// revocation deletes the record outright.
type Token struct {
	AccessToken           string      `json:"accessToken"`
	AccessTokenExpiresAt  time.Time   `json:"accessTokenExpiresAt"`
	RefreshToken          string      `json:"refreshToken,omitempty"`
	RefreshTokenExpiresAt time.Time   `json:"refreshTokenExpiresAt,omitzero"`
	Client                TokenClient `json:"client"`
	User                  TokenUser   `json:"user"`
	FinalAuthToken        string      `json:"finalAuthToken"`
	CreatedAt             time.Time   `json:"-"`
}
