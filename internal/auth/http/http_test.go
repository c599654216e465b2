package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/internal/auth/oauth2"
	"github.com/vendorgate/authd/internal/auth/service"
	"github.com/vendorgate/authd/internal/auth/store/drivers/sqlite"
	"github.com/vendorgate/authd/pkg/httpx"
	"github.com/vendorgate/authd/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-admin-key"

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "authd",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	r := NewRouter("v1.0.0", "test", testAPIKey, st, logger)
	r.Engine = oauth2.NewServer(&service.TokenModel{Store: st})
	r.Registry = &service.RegistryService{Store: st}
	r.ApplyRoutes()
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httpx.APIKeyHeader, testAPIKey)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createTestClient(t *testing.T, h http.Handler, clientID string) ClientRecord {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/admin/oauth-access", CreateClientRequest{
		UserID:       "user-1",
		Username:     "acme-integration",
		VendorID:     "vendor-1",
		ClientID:     clientID,
		ClientSecret: "secret-" + clientID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created ClientRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func requestToken(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTokenEndpoint(t *testing.T) {
	t.Run("rejects non-form content type", func(t *testing.T) {
		router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "invalid_request", body["error"])
	})

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		router := newTestRouter(t)
		createTestClient(t, router, "svc-issue")

		rec := requestToken(t, router, url.Values{
			"grant_type":    {"client_credentials"},
			"client_id":     {"svc-issue"},
			"client_secret": {"secret-svc-issue"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var token domain.Token
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
		require.NotEmpty(t, token.AccessToken)
		require.NotEmpty(t, token.RefreshToken)
		require.Equal(t, "Bearer "+token.AccessToken, token.FinalAuthToken)
		require.Equal(t, "svc-issue", token.Client.ID)
		require.Equal(t, "user-1", token.User.UserID)
	})

	t.Run("rejects bad credentials", func(t *testing.T) {
		router := newTestRouter(t)
		createTestClient(t, router, "svc-bad")

		rec := requestToken(t, router, url.Values{
			"grant_type":    {"client_credentials"},
			"client_id":     {"svc-bad"},
			"client_secret": {"wrong"},
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh grant rotates and consumes the old token", func(t *testing.T) {
		router := newTestRouter(t)
		createTestClient(t, router, "svc-rotate")

		rec := requestToken(t, router, url.Values{
			"grant_type":    {"client_credentials"},
			"client_id":     {"svc-rotate"},
			"client_secret": {"secret-svc-rotate"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var first domain.Token
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

		rec = requestToken(t, router, url.Values{
			"grant_type":    {"refresh_token"},
			"client_id":     {"svc-rotate"},
			"refresh_token": {first.RefreshToken},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var second domain.Token
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
		require.NotEqual(t, first.RefreshToken, second.RefreshToken)

		// The consumed token is single-use.
		rec = requestToken(t, router, url.Values{
			"grant_type":    {"refresh_token"},
			"client_id":     {"svc-rotate"},
			"refresh_token": {first.RefreshToken},
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unsupported grant type", func(t *testing.T) {
		router := newTestRouter(t)

		rec := requestToken(t, router, url.Values{
			"grant_type": {"password"},
			"client_id":  {"x"},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "unsupported_grant_type", body["error"])
	})
}

func TestValidateTokenEndpoint(t *testing.T) {
	router := newTestRouter(t)
	createTestClient(t, router, "svc-validate")

	rec := requestToken(t, router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"svc-validate"},
		"client_secret": {"secret-svc-validate"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var token domain.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))

	t.Run("active for a live token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/validate-token", nil)
		req.Header.Set("Authorization", token.FinalAuthToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ValidateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.Active)
		require.Equal(t, "acme-integration", resp.Username)
		require.NotEmpty(t, resp.ExpiresAt)
	})

	t.Run("inactive for an unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/validate-token", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp ValidateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.False(t, resp.Active)
		require.Equal(t, "invalid_token", resp.Error)
	})

	t.Run("inactive without a header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/validate-token", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminAPIKeyGate(t *testing.T) {
	router := newTestRouter(t)

	t.Run("missing key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/oauth-access", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/oauth-access", nil)
		req.Header.Set(httpx.APIKeyHeader, "wrong")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid key passes", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/admin/oauth-access", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminCRUD(t *testing.T) {
	router := newTestRouter(t)

	t.Run("create validates required fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/admin/oauth-access", CreateClientRequest{
			Username: "incomplete",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Contains(t, resp.Message, "user_id")
	})

	created := createTestClient(t, router, "svc-crud")
	require.NotEmpty(t, created.ID)
	require.Equal(t, []string{domain.GrantClientCredentials}, created.Grants)

	t.Run("duplicate clientId rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/admin/oauth-access", CreateClientRequest{
			UserID:       "user-2",
			Username:     "other",
			VendorID:     "vendor-2",
			ClientID:     "svc-crud",
			ClientSecret: "secret",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get by either key", func(t *testing.T) {
		for _, key := range []string{created.ID, created.ClientID} {
			rec := doJSON(t, router, http.MethodGet, "/admin/oauth-access/"+key, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var got ClientRecord
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, created.ID, got.ID)
		}
	})

	t.Run("list wraps records with pagination", func(t *testing.T) {
		for i := 0; i < 12; i++ {
			createTestClient(t, router, fmt.Sprintf("svc-list-%02d", i))
		}

		rec := doJSON(t, router, http.MethodGet, "/admin/oauth-access?limit=5&page=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ListClientsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Records, 5)
		require.Equal(t, 13, resp.Pagination.Total)
		require.Equal(t, 2, resp.Pagination.Page)
		require.Equal(t, 3, resp.Pagination.Pages)
	})

	t.Run("update applies patch", func(t *testing.T) {
		username := "updated-name"
		rec := doJSON(t, router, http.MethodPut, "/admin/oauth-access/svc-crud", UpdateClientRequest{
			Username: &username,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var got ClientRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, "updated-name", got.Username)
		require.Equal(t, "svc-crud", got.ClientID)
	})

	t.Run("clientId in the patch body is dropped", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/admin/oauth-access/svc-crud",
			map[string]string{"clientId": "renamed"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Contains(t, resp.Message, "no changes")
	})

	t.Run("no-op update rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/admin/oauth-access/svc-crud", UpdateClientRequest{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete returns the snapshot", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/admin/oauth-access/svc-crud", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DeleteClientResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.Success)
		require.Equal(t, created.ID, resp.DeletedRecord.ID)
		require.Equal(t, "updated-name", resp.DeletedRecord.Username)

		rec = doJSON(t, router, http.MethodGet, "/admin/oauth-access/svc-crud", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown target not found", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/admin/oauth-access/missing", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStatusEndpoint(t *testing.T) {
	t.Run("healthy store reports ok", func(t *testing.T) {
		router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "ok", resp.Status)
		require.Equal(t, "v1.0.0", resp.Version)
		require.Equal(t, "test", resp.Environment)
		require.True(t, resp.Database.Connected)
	})

	t.Run("closed store degrades the status", func(t *testing.T) {
		st, err := sqlite.NewStore(":memory:")
		require.NoError(t, err)
		require.NoError(t, st.ApplyMigrations())
		require.NoError(t, st.Close())

		handler := StatusHandler(st, "v1.0.0", "test")
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "degraded", resp.Status)
		require.False(t, resp.Database.Connected)
	})
}
