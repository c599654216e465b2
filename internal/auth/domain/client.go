package domain

import (
	"slices"
	"time"
)

// Grant type names a client may be authorized for.
const (
	GrantClientCredentials = "client_credentials"
	GrantRefreshToken      = "refresh_token"
)

// Client is a registered machine-to-machine caller. ID is the internally
// generated record identifier (ULID); ClientID is the caller-chosen business
// key and is unique across the registry.
type Client struct {
	ID           string
	ClientID     string
	ClientSecret string
	UserID       string
	Username     string
	VendorID     string
	Grants       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasGrant reports whether the client is authorized for the named grant type.
func (c Client) HasGrant(grant string) bool {
	return slices.Contains(c.Grants, grant)
}

// NormalizeGrants returns grants unchanged when it is a proper non-empty
// collection, or the default grant set otherwise.
func NormalizeGrants(grants []string) []string {
	out := make([]string, 0, len(grants))
	for _, g := range grants {
		if g != "" {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return []string{GrantClientCredentials}
	}
	return out
}

// ClientPatch is a partial update to a client record. Nil fields are left
// untouched. There is deliberately no ClientID field: the business key cannot
// be renamed after creation.
type ClientPatch struct {
	ClientSecret *string
	UserID       *string
	Username     *string
	VendorID     *string
	Grants       []string
}

// IsZero reports whether the patch carries no fields at all.
func (p ClientPatch) IsZero() bool {
	return p.ClientSecret == nil && p.UserID == nil && p.Username == nil &&
		p.VendorID == nil && p.Grants == nil
}
