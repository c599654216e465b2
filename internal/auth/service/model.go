package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/internal/auth/oauth2"
	"github.com/vendorgate/authd/internal/auth/store"
	"github.com/vendorgate/authd/pkg/slogx"
)

// TokenModel implements the storage contract the grant engine drives:
// credential verification, token persistence and retrieval, refresh-token
// revocation and service-account derivation. Lookups collapse "not found"
// and lower-level storage failure into a single absent result (logged); the
// engine maps absence uniformly onto its protocol error vocabulary.
type TokenModel struct {
	Store store.Store
}

var _ oauth2.Model = (*TokenModel)(nil)

// VerifyClient looks up a client by clientId and, when a secret is supplied,
// requires an exact match. A verified client's grants always include
// refresh_token on top of whatever is stored: any client able to obtain a
// token may rotate it.
func (m *TokenModel) VerifyClient(
	ctx context.Context,
	clientID, clientSecret string,
) (domain.Client, bool) {
	l := slogx.FromContext(ctx)

	c, err := m.Store.Clients().GetClientByClientID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("client verification lookup failed", "error", err, "client_id", clientID)
		}
		return domain.Client{}, false
	}

	if clientSecret != "" &&
		subtle.ConstantTimeCompare([]byte(clientSecret), []byte(c.ClientSecret)) != 1 {
		return domain.Client{}, false
	}

	grants := domain.NormalizeGrants(c.Grants)
	if !slices.Contains(grants, domain.GrantRefreshToken) {
		grants = append(grants, domain.GrantRefreshToken)
	}
	c.Grants = grants

	return c, true
}

// UserFromClient derives the service-account identity for a verified client.
func (m *TokenModel) UserFromClient(client domain.Client) domain.TokenUser {
	return domain.TokenUser{
		UserID:   client.UserID,
		Username: client.Username,
	}
}

// PersistToken builds the denormalized token record and writes it. A write
// failure is propagated: the engine must not answer a grant it could not
// durably record.
func (m *TokenModel) PersistToken(
	ctx context.Context,
	data oauth2.TokenData,
	client domain.Client,
	user domain.TokenUser,
) (domain.Token, error) {
	snapshotID := client.ClientID
	if snapshotID == "" {
		snapshotID = client.ID
	}

	token := domain.Token{
		AccessToken:           data.AccessToken,
		AccessTokenExpiresAt:  data.AccessTokenExpiresAt,
		RefreshToken:          data.RefreshToken,
		RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
		Client: domain.TokenClient{
			Username: client.Username,
			ID:       snapshotID,
		},
		User:           user,
		FinalAuthToken: "Bearer " + data.AccessToken,
	}

	if err := m.Store.Tokens().CreateToken(ctx, token); err != nil {
		slogx.FromContext(ctx).Error("failed to persist token",
			"error", err, "client_id", snapshotID)
		return domain.Token{}, fmt.Errorf("persist token: %w", err)
	}
	return token, nil
}

// AccessToken looks up a token record by access-token value.
func (m *TokenModel) AccessToken(ctx context.Context, accessToken string) (domain.Token, bool) {
	t, err := m.Store.Tokens().GetTokenByAccess(ctx, accessToken)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("access token lookup failed", "error", err)
		}
		return domain.Token{}, false
	}
	return t, true
}

// RefreshToken looks up a token record by refresh-token value, reshaped to
// what the refresh-grant validation step consumes.
func (m *TokenModel) RefreshToken(ctx context.Context, refreshToken string) (oauth2.RefreshTokenData, bool) {
	t, err := m.Store.Tokens().GetTokenByRefresh(ctx, refreshToken)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("refresh token lookup failed", "error", err)
		}
		return oauth2.RefreshTokenData{}, false
	}

	return oauth2.RefreshTokenData{
		RefreshToken:          t.RefreshToken,
		RefreshTokenExpiresAt: t.RefreshTokenExpiresAt,
		Client:                t.Client,
		User:                  t.User,
	}, true
}

// Revoke deletes the token record holding this refresh token.
func (m *TokenModel) Revoke(ctx context.Context, refreshToken string) bool {
	removed, err := m.Store.Tokens().DeleteTokenByRefresh(ctx, refreshToken)
	if err != nil {
		slogx.FromContext(ctx).Error("refresh token revocation failed", "error", err)
		return false
	}
	return removed
}
