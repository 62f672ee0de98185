package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

type ResetRequestHandler struct {
	ResetService *service.PasswordResetService

	// Deliver hands the raw token to the delivery pipeline (email, usually).
	// Left nil, issuance still happens but the token goes nowhere, which is
	// the right behavior for deployments without outbound mail.
	Deliver func(ctx context.Context, email, token string)
}

// ServeHTTP godoc
//
//	@Summary		Request Password Reset
//	@Description	Request a password reset token delivered out of band. The response is identical whether or not the email has an account, so the endpoint cannot be used to enumerate addresses.
//	@Tags			PasswordResets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.PasswordResetRequest	true	"Target email"
//	@Success		200		{object}	onboardsdk.PasswordResetResponse	"message"
//	@Failure		400		{object}	onboardsdk.APIError					"error, error_description"
//	@Router			/v1/password-resets [post].
func (h *ResetRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req onboardsdk.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, onboardsdk.ErrorCodeInvalidRequest,
			"email is required")
		return
	}

	// The raw token goes to the mail pipeline, never into this response. An
	// unknown email gets the same 200 as a known one.
	token, err := h.ResetService.RequestReset(ctx, req.Email)
	switch {
	case err == nil:
		if h.Deliver != nil {
			h.Deliver(ctx, req.Email, token)
		}
	case errors.Is(err, service.ErrAccountNotFound):
		// fall through to the uniform response
	default:
		log.Error("failed to create reset token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, onboardsdk.ErrorCodeServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardsdk.PasswordResetResponse{
		Message: "If that email has an account, a reset link is on its way.",
	})
}

type ResetConsumeHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Consume Password Reset
//	@Description	Redeem a reset token for a new password. Tokens are single-use and expire after one hour; any defect reports the same invalid_token error.
//	@Tags			PasswordResets
//	@Accept			json
//	@Produce		json
//	@Param			request	body	onboardsdk.ConsumeResetRequest	true	"Token and new password"
//	@Success		204		"password replaced"
//	@Failure		400		{object}	onboardsdk.APIError	"error, error_description"
//	@Router			/v1/password-resets/consume [post].
func (h *ResetConsumeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req onboardsdk.ConsumeResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	if err := h.ResetService.ConsumeReset(ctx, req.Token, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
