package http

import (
	"encoding/json"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

type RegistrationHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Registration Endpoint
//	@Description	Create a pending account from a link or invitation token. The token is consumed before the account is created; a duplicate email does not refund the consumed use.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.RegisterRequest	true	"Registration form"
//	@Success		201		{object}	onboardsdk.RegisterResponse	"account_id, role, status"
//	@Failure		400		{object}	onboardsdk.APIError			"error, error_description"
//	@Failure		404		{object}	onboardsdk.APIError			"error, error_description"
//	@Failure		409		{object}	onboardsdk.APIError			"error, error_description"
//	@Failure		410		{object}	onboardsdk.APIError			"error, error_description"
//	@Router			/v1/registrations [post].
func (h *RegistrationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req onboardsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if req.Token == "" {
		httpx.WriteError(w, http.StatusBadRequest, onboardsdk.ErrorCodeInvalidRequest,
			"token is required")
		return
	}

	account, err := h.RegistrationService.Register(ctx, req.Token, service.Registrant{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, onboardsdk.RegisterResponse{
		AccountID:  account.ID,
		Email:      account.Email,
		Role:       account.Role,
		Status:     account.Status,
		ApproverID: account.ApproverID,
		OrgID:      account.OrgID,
	})
}
