package http

import (
	"encoding/json"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

type OrganizationHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Create Organization
//	@Description	Add an organization owned by an existing account. Admin-only; the owner defaults to the caller.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.CreateOrganizationRequest	true	"Organization parameters"
//	@Success		201		{object}	onboardsdk.OrganizationResponse			"id, name, owner_id"
//	@Failure		400		{object}	onboardsdk.APIError						"error, error_description"
//	@Failure		403		{object}	onboardsdk.APIError						"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organizations [post].
func (h *OrganizationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req onboardsdk.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	org, err := h.BootstrapService.CreateOrganization(ctx, actorID, req.Name, req.OwnerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, onboardsdk.OrganizationResponse{
		ID:      org.ID,
		Name:    org.Name,
		OwnerID: org.OwnerID,
	})
}
