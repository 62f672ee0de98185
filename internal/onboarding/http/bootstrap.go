package http

import (
	"encoding/json"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Endpoint
//	@Description	Seed an empty deployment with its first admin account and organization. Works exactly once; guarded by the setup token when one is configured.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.BootstrapRequest		true	"Bootstrap request"
//	@Success		201		{object}	onboardsdk.BootstrapResponse	"admin_id, organization_id"
//	@Failure		400		{object}	onboardsdk.APIError				"error, error_description"
//	@Failure		403		{object}	onboardsdk.APIError				"error, error_description"
//	@Failure		409		{object}	onboardsdk.APIError				"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req onboardsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	res, err := h.BootstrapService.Bootstrap(ctx, req.SetupToken,
		req.AdminName, req.AdminEmail, req.AdminPassword, req.OrganizationName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, onboardsdk.BootstrapResponse{
		AdminID:        res.Admin.ID,
		OrganizationID: res.Organization.ID,
	})
}
