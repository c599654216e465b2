package service

import (
	"context"
	"errors"
	"slices"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/internal/auth/store"
	"github.com/vendorgate/authd/pkg/idx"
	"github.com/vendorgate/authd/pkg/slogx"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// RegistryService manages the registry of authorized clients: CRUD with
// field validation, clientId uniqueness and dual-key lookup.
type RegistryService struct {
	Store store.Store
}

// Pagination describes the page of a List result.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ListResult is a page of client records plus pagination metadata.
type ListResult struct {
	Records    []domain.Client
	Pagination Pagination
}

// ResolveClientKey decides which key an admin-supplied identifier targets:
// a string with canonical ULID shape resolves by internal identifier,
// anything else by clientId. Centralized here so get/update/delete cannot
// drift apart in how they branch.
func ResolveClientKey(idOrClientID string) store.ClientKey {
	if idx.IsValid(idOrClientID) {
		return store.ByID(idOrClientID)
	}
	return store.ByClientID(idOrClientID)
}

// Create validates and stores a new client record, returning the stored
// record including its generated identifier.
func (s *RegistryService) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	for _, field := range []struct {
		name  string
		value string
	}{
		{"user_id", c.UserID},
		{"username", c.Username},
		{"vendor_id", c.VendorID},
		{"clientId", c.ClientID},
		{"clientSecret", c.ClientSecret},
	} {
		if field.value == "" {
			return domain.Client{}, &ValidationError{Field: field.name}
		}
	}

	c.Grants = domain.NormalizeGrants(c.Grants)

	// Advisory pre-check. Two racing creates can both pass it; the UNIQUE
	// constraint on client_id is what actually closes the race below.
	_, err := s.Store.Clients().GetClientByClientID(ctx, c.ClientID)
	switch {
	case err == nil:
		return domain.Client{}, ErrConflict
	case !errors.Is(err, store.ErrNotFound):
		l.Error("client lookup failed during create", "error", err, "client_id", c.ClientID)
		return domain.Client{}, err
	}

	c.ID = idx.New().String()
	if err := s.Store.Clients().CreateClient(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Client{}, ErrConflict
		}
		l.Error("failed to create client", "error", err, "client_id", c.ClientID)
		return domain.Client{}, err
	}

	created, err := s.Store.Clients().GetClient(ctx, store.ByID(c.ID))
	if err != nil {
		l.Error("failed to read back created client", "error", err, "id", c.ID)
		return domain.Client{}, err
	}

	l.Info("client created", "id", created.ID, "client_id", created.ClientID)
	return created, nil
}

// List returns a filtered page of client records. Non-positive page and
// limit values fall back to the defaults.
func (s *RegistryService) List(
	ctx context.Context,
	f store.ClientFilter,
	page, limit int,
) (ListResult, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	records, total, err := s.Store.Clients().ListClients(ctx, f, (page-1)*limit, limit)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "error", err)
		return ListResult{}, err
	}

	return ListResult{
		Records: records,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

// Get resolves a client by internal identifier or clientId.
func (s *RegistryService) Get(ctx context.Context, idOrClientID string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClient(ctx, ResolveClientKey(idOrClientID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrNotFound
		}
		slogx.FromContext(ctx).Error("failed to get client", "error", err, "key", idOrClientID)
		return domain.Client{}, err
	}
	return c, nil
}

// Update applies a partial update. The patch carries no clientId by
// construction (the business key cannot be renamed); a patch that changes
// nothing fails with ErrNoChange. Returns the post-update record.
func (s *RegistryService) Update(
	ctx context.Context,
	idOrClientID string,
	patch domain.ClientPatch,
) (domain.Client, error) {
	l := slogx.FromContext(ctx)
	key := ResolveClientKey(idOrClientID)

	existing, err := s.Store.Clients().GetClient(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrNotFound
		}
		l.Error("failed to load client for update", "error", err, "key", idOrClientID)
		return domain.Client{}, err
	}

	if countChanges(existing, patch) == 0 {
		return domain.Client{}, ErrNoChange
	}

	if err := s.Store.Clients().UpdateClient(ctx, key, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrNotFound
		}
		l.Error("failed to update client", "error", err, "key", idOrClientID)
		return domain.Client{}, err
	}

	updated, err := s.Store.Clients().GetClient(ctx, key)
	if err != nil {
		l.Error("failed to read back updated client", "error", err, "key", idOrClientID)
		return domain.Client{}, err
	}

	l.Info("client updated", "id", updated.ID, "client_id", updated.ClientID)
	return updated, nil
}

// Delete removes a client and returns its pre-deletion snapshot.
func (s *RegistryService) Delete(ctx context.Context, idOrClientID string) (domain.Client, error) {
	l := slogx.FromContext(ctx)
	key := ResolveClientKey(idOrClientID)

	existing, err := s.Store.Clients().GetClient(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrNotFound
		}
		l.Error("failed to load client for delete", "error", err, "key", idOrClientID)
		return domain.Client{}, err
	}

	if err := s.Store.Clients().DeleteClient(ctx, key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrNotFound
		}
		l.Error("failed to delete client", "error", err, "key", idOrClientID)
		return domain.Client{}, err
	}

	l.Info("client deleted", "id", existing.ID, "client_id", existing.ClientID)
	return existing, nil
}

// countChanges reports how many stored fields the patch would actually
// modify.
func countChanges(c domain.Client, p domain.ClientPatch) int {
	n := 0
	if p.ClientSecret != nil && *p.ClientSecret != c.ClientSecret {
		n++
	}
	if p.UserID != nil && *p.UserID != c.UserID {
		n++
	}
	if p.Username != nil && *p.Username != c.Username {
		n++
	}
	if p.VendorID != nil && *p.VendorID != c.VendorID {
		n++
	}
	if p.Grants != nil && !slices.Equal(p.Grants, c.Grants) {
		n++
	}
	return n
}
