package http

import (
	"errors"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

// writeServiceError maps service sentinels onto the HTTP surface. 409 means
// the request raced or duplicated something that already happened; 410 means
// the token or link can never work again.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidLinkRequest),
		errors.Is(err, service.ErrInvalidInvitationRequest),
		errors.Is(err, service.ErrInvalidRegistration),
		errors.Is(err, service.ErrInvalidBootstrap):
		httpx.WriteError(w, http.StatusBadRequest, onboardsdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrInvalidResetToken):
		httpx.WriteError(w, http.StatusBadRequest, onboardsdk.ErrorCodeInvalidToken, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, onboardsdk.ErrorCodeUnauthorized, err.Error())

	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotOrganizationOwner),
		errors.Is(err, service.ErrAccountNotActive),
		errors.Is(err, service.ErrInvalidBootstrapToken):
		httpx.WriteError(w, http.StatusForbidden, onboardsdk.ErrorCodeForbidden, err.Error())

	case errors.Is(err, service.ErrTokenNotFound),
		errors.Is(err, service.ErrOrganizationNotFound),
		errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrInvitationNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		httpx.WriteError(w, http.StatusNotFound, onboardsdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrDuplicateAccount),
		errors.Is(err, service.ErrDuplicatePendingInvitation),
		errors.Is(err, service.ErrEmailMismatch),
		errors.Is(err, service.ErrAlreadyProcessed),
		errors.Is(err, service.ErrAlreadyBootstrapped):
		httpx.WriteError(w, http.StatusConflict, onboardsdk.ErrorCodeConflict, err.Error())

	case errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrLinkExhausted),
		errors.Is(err, service.ErrLinkInactive):
		httpx.WriteError(w, http.StatusGone, onboardsdk.ErrorCodeGone, err.Error())

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, onboardsdk.ErrorCodeServerError, "internal error")
	}
}

// requireAccountID pulls the authenticated account out of the context. The
// authn middleware guarantees it for secured routes; a miss is a programming
// error surfaced as 401.
func requireAccountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.AccountIDFromContext(r.Context())
	if !ok || id == "" {
		httpx.WriteError(w, http.StatusUnauthorized, onboardsdk.ErrorCodeUnauthorized, "authentication required")
		return "", false
	}
	return id, true
}

func writeInvalidJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, onboardsdk.ErrorCodeInvalidRequest, "invalid JSON body")
}
