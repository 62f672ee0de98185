package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/jwtx"
	"github.com/classtrackhq/classtrack/pkg/slogx"

	_ "github.com/classtrackhq/classtrack/api/onboarding" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	BootstrapService    *service.BootstrapService
	SessionService      *service.SessionService
	LinkService         *service.LinkService
	InvitationService   *service.InvitationService
	RegistrationService *service.RegistrationService
	ApprovalService     *service.ApprovalService
	ResetService        *service.PasswordResetService
	NotificationService *service.NotificationService

	// ResetDeliver hands raw reset tokens to the delivery pipeline.
	ResetDeliver func(ctx context.Context, email, token string)
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerBootstrap()
	r.registerSessions()
	r.registerLinks()
	r.registerInvitations()
	r.registerRegistrations()
	r.registerApprovals()
	r.registerPasswordResets()
	r.registerNotifications()
	r.registerOrganizations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ClassTrack Onboarding Service API
//	@version		0.1.0
//	@description	Invitation links, email invitations, registration approval, and password resets for the ClassTrack platform.
//	@description
//	@description				Raw registration and reset tokens are returned exactly once at issuance; the service stores only fingerprints.
//
//	@contact.name				ClassTrack Team
//	@contact.url				https://github.com/classtrackhq/classtrack
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	// One-shot setup endpoint; strict IP limit keeps token guessing slow.
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSessions() {
	h := &SessionHandler{SessionService: r.SessionService}

	// Login attempts are limited by IP + email to slow credential stuffing
	// without letting one attacker lock out an office behind shared NAT.
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(h,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)
}

func (r *Router) registerLinks() {
	issueHandler := &LinkIssueHandler{LinkService: r.LinkService}
	deactivateHandler := &LinkDeactivateHandler{LinkService: r.LinkService}
	validateHandler := &TokenValidateHandler{LinkService: r.LinkService}

	securedIssue := httpx.Chain(issueHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("links:write"),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/links", securedIssue)

	securedDeactivate := httpx.Chain(deactivateHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("links:write"),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/links/{id}/deactivate", securedDeactivate)

	// Public preview endpoint; anyone holding a token may ask what it grants.
	r.Mux.Handle("GET /v1/tokens/validate",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	issueHandler := &InvitationIssueHandler{InvitationService: r.InvitationService}
	revokeHandler := &InvitationRevokeHandler{InvitationService: r.InvitationService}

	securedIssue := httpx.Chain(issueHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("invites:write"),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/invitations", securedIssue)

	securedRevoke := httpx.Chain(revokeHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("invites:write"),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/invitations/{id}/revoke", securedRevoke)
}

func (r *Router) registerRegistrations() {
	h := &RegistrationHandler{RegistrationService: r.RegistrationService}

	// Public signup endpoint - strict rate limit by IP.
	r.Mux.Handle("POST /v1/registrations",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerApprovals() {
	approveHandler := &ApprovalHandler{ApprovalService: r.ApprovalService, approve: true}
	rejectHandler := &ApprovalHandler{ApprovalService: r.ApprovalService, approve: false}

	secured := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("approvals:write"),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		)
	}
	r.Mux.Handle("POST /v1/accounts/{id}/approve", secured(approveHandler))
	r.Mux.Handle("POST /v1/accounts/{id}/reject", secured(rejectHandler))
}

func (r *Router) registerPasswordResets() {
	requestHandler := &ResetRequestHandler{ResetService: r.ResetService, Deliver: r.ResetDeliver}
	consumeHandler := &ResetConsumeHandler{ResetService: r.ResetService}

	// Both public; both strict. Request is additionally keyed by the email
	// being reset so one address cannot be hammered from many IPs... within
	// reason.
	r.Mux.Handle("POST /v1/password-resets",
		httpx.Chain(requestHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/password-resets/consume",
		httpx.Chain(consumeHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerNotifications() {
	listHandler := &NotificationListHandler{NotificationService: r.NotificationService}
	readHandler := &NotificationReadHandler{NotificationService: r.NotificationService}

	secured := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("notifications:read"),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		)
	}
	r.Mux.Handle("GET /v1/notifications", secured(listHandler))
	r.Mux.Handle("POST /v1/notifications/{id}/read", secured(readHandler))
}

func (r *Router) registerOrganizations() {
	h := &OrganizationHandler{BootstrapService: r.BootstrapService}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("admin:write"),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/organizations", secured)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.buildVersion, r.startTime))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.store))
}
