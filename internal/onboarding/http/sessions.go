package http

import (
	"encoding/json"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

type SessionHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a short-lived EdDSA session token. Only active accounts may log in; pending and rejected registrations are refused.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	onboardsdk.LoginResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	onboardsdk.APIError			"error, error_description"
//	@Failure		401		{object}	onboardsdk.APIError			"error, error_description"
//	@Failure		403		{object}	onboardsdk.APIError			"error, error_description"
//	@Router			/v1/sessions [post].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req onboardsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, onboardsdk.ErrorCodeInvalidRequest,
			"email and password are required")
		return
	}

	session, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardsdk.LoginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		AccountID:   session.AccountID,
		Role:        session.Role,
		Scopes:      session.Scopes,
	})
}
