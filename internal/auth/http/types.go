package http

import (
	"time"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/internal/auth/service"
)

// ErrorResponse is the admin API error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ClientRecord is the wire shape of a registered client.
type ClientRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	VendorID     string    `json:"vendor_id"`
	ClientID     string    `json:"clientId"`
	ClientSecret string    `json:"clientSecret"`
	Grants       []string  `json:"grants"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toClientRecord(c domain.Client) ClientRecord {
	return ClientRecord{
		ID:           c.ID,
		UserID:       c.UserID,
		Username:     c.Username,
		VendorID:     c.VendorID,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Grants:       c.Grants,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toClientRecords(cs []domain.Client) []ClientRecord {
	out := make([]ClientRecord, len(cs))
	for i, c := range cs {
		out[i] = toClientRecord(c)
	}
	return out
}

// CreateClientRequest is the admin create payload.
type CreateClientRequest struct {
	UserID       string   `json:"user_id"`
	Username     string   `json:"username"`
	VendorID     string   `json:"vendor_id"`
	ClientID     string   `json:"clientId"`
	ClientSecret string   `json:"clientSecret"`
	Grants       []string `json:"grants"`
}

// UpdateClientRequest is the admin partial-update payload. There is no
// clientId field: the business key cannot be renamed, and a clientId sent by
// the caller is silently dropped during decoding.
type UpdateClientRequest struct {
	UserID       *string  `json:"user_id"`
	Username     *string  `json:"username"`
	VendorID     *string  `json:"vendor_id"`
	ClientSecret *string  `json:"clientSecret"`
	Grants       []string `json:"grants"`
}

func (r UpdateClientRequest) patch() domain.ClientPatch {
	return domain.ClientPatch{
		ClientSecret: r.ClientSecret,
		UserID:       r.UserID,
		Username:     r.Username,
		VendorID:     r.VendorID,
		Grants:       r.Grants,
	}
}

// ListClientsResponse is a page of client records.
type ListClientsResponse struct {
	Records    []ClientRecord     `json:"records"`
	Pagination service.Pagination `json:"pagination"`
}

// DeleteClientResponse confirms a deletion and echoes the removed record.
type DeleteClientResponse struct {
	Success       bool         `json:"success"`
	Message       string       `json:"message"`
	DeletedRecord ClientRecord `json:"deletedRecord"`
}

// ValidateResponse reports the result of bearer-token introspection.
type ValidateResponse struct {
	Active           bool   `json:"active"`
	Username         string `json:"username,omitempty"`
	ExpiresAt        string `json:"expiresAt,omitempty"`
	Scope            string `json:"scope,omitempty"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// StatusResponse is the service health payload.
type StatusResponse struct {
	Status      string         `json:"status"`
	Version     string         `json:"version"`
	Timestamp   string         `json:"timestamp"`
	Environment string         `json:"environment"`
	Database    DatabaseStatus `json:"database"`
}

// DatabaseStatus reports the outcome of the connectivity probe.
type DatabaseStatus struct {
	Connected bool `json:"connected"`
}
