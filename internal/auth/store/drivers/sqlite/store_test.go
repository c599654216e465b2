package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/internal/auth/store"
	"github.com/vendorgate/authd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func storedClient(clientID string) domain.Client {
	return domain.Client{
		ID:           idx.New().String(),
		ClientID:     clientID,
		ClientSecret: "secret",
		UserID:       "user-1",
		Username:     "acme",
		VendorID:     "vendor-1",
		Grants:       []string{domain.GrantClientCredentials},
	}
}

func TestUniqueClientIDConstraint(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	require.NoError(t, st.Clients().CreateClient(ctx, storedClient("dup")))

	// A second insert with the same clientId must fail even though it has a
	// fresh primary key: this is the guarantee that closes the advisory
	// pre-check race in the registry.
	err := st.Clients().CreateClient(ctx, storedClient("dup"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	c := storedClient("round")
	c.Grants = []string{domain.GrantClientCredentials, domain.GrantRefreshToken}
	require.NoError(t, st.Clients().CreateClient(ctx, c))

	t.Run("lookup by id", func(t *testing.T) {
		got, err := st.Clients().GetClient(ctx, store.ByID(c.ID))
		require.NoError(t, err)
		require.Equal(t, c.ClientID, got.ClientID)
		require.Equal(t, c.Grants, got.Grants)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("lookup by clientId", func(t *testing.T) {
		got, err := st.Clients().GetClientByClientID(ctx, "round")
		require.NoError(t, err)
		require.Equal(t, c.ID, got.ID)
	})

	t.Run("absent record is ErrNotFound", func(t *testing.T) {
		_, err := st.Clients().GetClient(ctx, store.ByID("missing"))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update of absent record is ErrNotFound", func(t *testing.T) {
		name := "x"
		err := st.Clients().UpdateClient(ctx, store.ByID("missing"), domain.ClientPatch{Username: &name})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete of absent record is ErrNotFound", func(t *testing.T) {
		err := st.Clients().DeleteClient(ctx, store.ByClientID("missing"))
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	token := domain.Token{
		AccessToken:           "AT",
		AccessTokenExpiresAt:  expiry,
		RefreshToken:          "RT",
		RefreshTokenExpiresAt: expiry.Add(24 * time.Hour),
		Client:                domain.TokenClient{Username: "acme", ID: "svc-acme"},
		User:                  domain.TokenUser{UserID: "user-1", Username: "acme"},
		FinalAuthToken:        "Bearer AT",
	}
	require.NoError(t, st.Tokens().CreateToken(ctx, token))

	t.Run("lookup by access token", func(t *testing.T) {
		got, err := st.Tokens().GetTokenByAccess(ctx, "AT")
		require.NoError(t, err)
		require.Equal(t, "Bearer AT", got.FinalAuthToken)
		require.Equal(t, "svc-acme", got.Client.ID)
		require.True(t, expiry.Equal(got.AccessTokenExpiresAt))
	})

	t.Run("lookup by refresh token", func(t *testing.T) {
		got, err := st.Tokens().GetTokenByRefresh(ctx, "RT")
		require.NoError(t, err)
		require.Equal(t, "AT", got.AccessToken)
	})

	t.Run("token without refresh stores nulls", func(t *testing.T) {
		bare := domain.Token{
			AccessToken:          "AT-bare",
			AccessTokenExpiresAt: expiry,
			Client:               domain.TokenClient{Username: "acme", ID: "svc-acme"},
			User:                 domain.TokenUser{UserID: "user-1", Username: "acme"},
			FinalAuthToken:       "Bearer AT-bare",
		}
		require.NoError(t, st.Tokens().CreateToken(ctx, bare))

		got, err := st.Tokens().GetTokenByAccess(ctx, "AT-bare")
		require.NoError(t, err)
		require.Empty(t, got.RefreshToken)
		require.True(t, got.RefreshTokenExpiresAt.IsZero())
	})

	t.Run("delete by refresh reports removal", func(t *testing.T) {
		removed, err := st.Tokens().DeleteTokenByRefresh(ctx, "RT")
		require.NoError(t, err)
		require.True(t, removed)

		removed, err = st.Tokens().DeleteTokenByRefresh(ctx, "RT")
		require.NoError(t, err)
		require.False(t, removed)

		_, err = st.Tokens().GetTokenByAccess(ctx, "AT")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Connect(ctx))
		require.NoError(t, st.Connect(ctx))
		require.NoError(t, st.Ping(ctx))
	})

	t.Run("closed store is unavailable", func(t *testing.T) {
		st, err := NewStore(":memory:")
		require.NoError(t, err)
		require.NoError(t, st.Close())

		err = st.Connect(ctx)
		require.ErrorIs(t, err, store.ErrUnavailable)
	})
}
