package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/internal/auth/service"
	"github.com/vendorgate/authd/internal/auth/store"
	"github.com/vendorgate/authd/pkg/httpx"
	"github.com/vendorgate/authd/pkg/slogx"
)

// AdminHandler serves the /admin/oauth-access registry CRUD endpoints.
type AdminHandler struct {
	Registry *service.RegistryService
}

// HandleCreate handles POST /admin/oauth-access
//
//	@Summary		Create OAuth Access Record
//	@Description	Registers a new client. Requires user_id, username, vendor_id, clientId and clientSecret; grants default to client_credentials.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			request	body		CreateClientRequest	true	"Client registration"
//	@Success		201		{object}	ClientRecord		"stored record including generated id"
//	@Failure		400		{object}	ErrorResponse		"validation or duplicate clientId"
//	@Failure		401		{object}	ErrorResponse		"missing or invalid API key"
//	@Failure		500		{object}	ErrorResponse		"error, message"
//	@Router			/admin/oauth-access [post].
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid JSON in request body",
		})
		return
	}

	created, err := h.Registry.Create(ctx, domain.Client{
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		UserID:       req.UserID,
		Username:     req.Username,
		VendorID:     req.VendorID,
		Grants:       req.Grants,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "Bad Request",
				Message: verr.Error(),
			})
		case errors.Is(err, service.ErrConflict):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "Bad Request",
				Message: service.ErrConflict.Error(),
			})
		default:
			slogx.FromContext(ctx).Error("failed to create oauth access record", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   "Internal Server Error",
				Message: "Failed to create record",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClientRecord(created))
}

// HandleList handles GET /admin/oauth-access
//
//	@Summary		List OAuth Access Records
//	@Description	Returns a filtered page of client records. user_id and vendor_id match exactly; username matches as a case-insensitive substring.
//	@Tags			Admin
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			user_id		query		string				false	"Exact user_id filter"
//	@Param			username	query		string				false	"Case-insensitive username substring"
//	@Param			vendor_id	query		string				false	"Exact vendor_id filter"
//	@Param			page		query		int					false	"Page number (default 1)"
//	@Param			limit		query		int					false	"Page size (default 10)"
//	@Success		200			{object}	ListClientsResponse	"records, pagination"
//	@Failure		401			{object}	ErrorResponse		"missing or invalid API key"
//	@Failure		500			{object}	ErrorResponse		"error, message"
//	@Router			/admin/oauth-access [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	// Unparseable page/limit values fall back to the defaults.
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.Registry.List(ctx, store.ClientFilter{
		UserID:   q.Get("user_id"),
		Username: q.Get("username"),
		VendorID: q.Get("vendor_id"),
	}, page, limit)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list oauth access records", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list records",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ListClientsResponse{
		Records:    toClientRecords(result.Records),
		Pagination: result.Pagination,
	})
}

// HandleGet handles GET /admin/oauth-access/{id}
//
//	@Summary		Get OAuth Access Record
//	@Description	Fetches a single record by internal identifier or clientId.
//	@Tags			Admin
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id	path		string			true	"Internal record id (ULID) or clientId"
//	@Success		200	{object}	ClientRecord	"record"
//	@Failure		401	{object}	ErrorResponse	"missing or invalid API key"
//	@Failure		404	{object}	ErrorResponse	"record not found"
//	@Failure		500	{object}	ErrorResponse	"error, message"
//	@Router			/admin/oauth-access/{id} [get].
func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	c, err := h.Registry.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
				Error:   "Not Found",
				Message: service.ErrNotFound.Error(),
			})
			return
		}
		slogx.FromContext(ctx).Error("failed to get oauth access record", "error", err, "id", id)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get record",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientRecord(c))
}

// HandleUpdate handles PUT /admin/oauth-access/{id}
//
//	@Summary		Update OAuth Access Record
//	@Description	Applies a partial update. The clientId cannot be changed; a patch that changes nothing is rejected.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id		path		string				true	"Internal record id (ULID) or clientId"
//	@Param			request	body		UpdateClientRequest	true	"Fields to update"
//	@Success		200		{object}	ClientRecord		"post-update record"
//	@Failure		400		{object}	ErrorResponse		"invalid body or no-op patch"
//	@Failure		401		{object}	ErrorResponse		"missing or invalid API key"
//	@Failure		404		{object}	ErrorResponse		"record not found"
//	@Failure		500		{object}	ErrorResponse		"error, message"
//	@Router			/admin/oauth-access/{id} [put].
func (h *AdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid JSON in request body",
		})
		return
	}

	updated, err := h.Registry.Update(ctx, id, req.patch())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
				Error:   "Not Found",
				Message: service.ErrNotFound.Error(),
			})
		case errors.Is(err, service.ErrNoChange):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "Bad Request",
				Message: service.ErrNoChange.Error(),
			})
		default:
			slogx.FromContext(ctx).Error("failed to update oauth access record", "error", err, "id", id)
			httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   "Internal Server Error",
				Message: "Failed to update record",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientRecord(updated))
}

// HandleDelete handles DELETE /admin/oauth-access/{id}
//
//	@Summary		Delete OAuth Access Record
//	@Description	Removes a record and returns its pre-deletion snapshot.
//	@Tags			Admin
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id	path		string					true	"Internal record id (ULID) or clientId"
//	@Success		200	{object}	DeleteClientResponse	"success, message, deletedRecord"
//	@Failure		401	{object}	ErrorResponse			"missing or invalid API key"
//	@Failure		404	{object}	ErrorResponse			"record not found"
//	@Failure		500	{object}	ErrorResponse			"error, message"
//	@Router			/admin/oauth-access/{id} [delete].
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	deleted, err := h.Registry.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
				Error:   "Not Found",
				Message: service.ErrNotFound.Error(),
			})
			return
		}
		slogx.FromContext(ctx).Error("failed to delete oauth access record", "error", err, "id", id)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete record",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, DeleteClientResponse{
		Success:       true,
		Message:       "Record deleted successfully",
		DeletedRecord: toClientRecord(deleted),
	})
}
