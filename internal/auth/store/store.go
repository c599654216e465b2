package store

import (
	"context"
	"errors"

	"github.com/vendorgate/authd/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrUnavailable   = errors.New("store: storage unavailable")
)

// ClientKey identifies a client record by exactly one of its two keys: the
// internal record identifier or the business clientId. The dual-key
// resolution rule lives in one place (service.ResolveClientKey) and every
// get/update/delete flows through a value of this type.
type ClientKey struct {
	ID       string
	ClientID string
}

// ByID builds a key targeting the internal record identifier.
func ByID(id string) ClientKey { return ClientKey{ID: id} }

// ByClientID builds a key targeting the business clientId.
func ByClientID(clientID string) ClientKey { return ClientKey{ClientID: clientID} }

// ClientFilter constrains List. Zero-value fields are unconstrained.
// Username matches as a case-insensitive substring; the others exactly.
type ClientFilter struct {
	UserID   string
	Username string
	VendorID string
}

// Store is the root data access interface, owning the single live handle to
// the backing database. Concrete drivers (sqlite) implement it. All record
// access from the registry and the token lifecycle flows through here.
type Store interface {
	Clients() Clients
	Tokens() Tokens

	ApplyMigrations() error

	// Connect idempotently establishes the underlying connection. Safe to
	// call concurrently; a failure surfaces as ErrUnavailable and is not
	// retried here (the caller decides whether to retry).
	Connect(ctx context.Context) error

	// Ping verifies the connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying handle.
	Close() error
}

type Clients interface {
	// CreateClient inserts a new client (id provided by the app via ULID).
	// Returns ErrAlreadyExists when the clientId is already registered; the
	// UNIQUE constraint on client_id makes this hold even when two creates
	// race past the registry's advisory pre-check.
	CreateClient(ctx context.Context, c domain.Client) error

	// GetClient fetches a client by either key.
	GetClient(ctx context.Context, key ClientKey) (domain.Client, error)

	// GetClientByClientID is the credential-verification lookup.
	GetClientByClientID(ctx context.Context, clientID string) (domain.Client, error)

	// ListClients returns a page of matching clients plus the total count
	// of matches across all pages.
	ListClients(ctx context.Context, f ClientFilter, offset, limit int) ([]domain.Client, int, error)

	// UpdateClient applies a partial update and bumps updated_at.
	UpdateClient(ctx context.Context, key ClientKey, patch domain.ClientPatch) error

	// DeleteClient removes a client record.
	DeleteClient(ctx context.Context, key ClientKey) error
}

type Tokens interface {
	// CreateToken stores a freshly minted token record.
	CreateToken(ctx context.Context, t domain.Token) error

	// GetTokenByAccess looks up a record by exact access-token value.
	GetTokenByAccess(ctx context.Context, accessToken string) (domain.Token, error)

	// GetTokenByRefresh looks up a record by exact refresh-token value.
	GetTokenByRefresh(ctx context.Context, refreshToken string) (domain.Token, error)

	// DeleteTokenByRefresh removes the matching record and reports whether
	// one was actually removed. Used for single-use refresh rotation.
	DeleteTokenByRefresh(ctx context.Context, refreshToken string) (bool, error)
}
