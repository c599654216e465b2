package http

import (
	"log/slog"
	"net/http"

	"github.com/vendorgate/authd/internal/auth/oauth2"
	"github.com/vendorgate/authd/internal/auth/service"
	"github.com/vendorgate/authd/internal/auth/store"
	"github.com/vendorgate/authd/pkg/httpx"
	"github.com/vendorgate/authd/pkg/slogx"

	_ "github.com/vendorgate/authd/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	environment  string
	adminAPIKey  string
	logger       *slog.Logger

	store    store.Store
	Engine   *oauth2.Server
	Registry *service.RegistryService
}

func NewRouter(
	buildVersion, environment, adminAPIKey string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		environment:  environment,
		adminAPIKey:  adminAPIKey,
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOAuth()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Vendor Gate Auth Service API
//	@version		1.0.0
//	@description	OAuth2 bearer-token service for machine-to-machine integrations: client_credentials and refresh_token grants over opaque tokens, plus an administrative client registry.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-Api-Key
//	@description				Admin API key for the /admin routes.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOAuth() {
	// POST /oauth/token - strict rate limit (authentication attempts)
	tokenHandler := &TokenHandler{Engine: r.Engine}
	r.Mux.Handle("POST /oauth/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /validate-token - lenient rate limit (called on every downstream request)
	validateHandler := &ValidateHandler{Engine: r.Engine}
	r.Mux.Handle("GET /validate-token",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{Registry: r.Registry}

	secured := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.RequireAPIKey(r.adminAPIKey),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /admin/oauth-access", secured(h.HandleCreate))
	r.Mux.Handle("GET /admin/oauth-access", secured(h.HandleList))
	r.Mux.Handle("GET /admin/oauth-access/{id}", secured(h.HandleGet))
	r.Mux.Handle("PUT /admin/oauth-access/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /admin/oauth-access/{id}", secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently, keep this lenient.
	r.Mux.Handle("GET /status",
		httpx.Chain(StatusHandler(r.store, r.buildVersion, r.environment),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
