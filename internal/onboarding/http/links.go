package http

import (
	"encoding/json"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

type LinkIssueHandler struct {
	LinkService *service.LinkService
}

// ServeHTTP godoc
//
//	@Summary		Issue Invitation Link
//	@Description	Mint a shareable registration link for an organization. The raw token appears in this response only; the service stores a fingerprint.
//	@Tags			Links
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.IssueLinkRequest	true	"Link parameters"
//	@Success		201		{object}	onboardsdk.LinkResponse		"link_id, token, link_type"
//	@Failure		400		{object}	onboardsdk.APIError			"error, error_description"
//	@Failure		403		{object}	onboardsdk.APIError			"error, error_description"
//	@Failure		404		{object}	onboardsdk.APIError			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/links [post].
func (h *LinkIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req onboardsdk.IssueLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	token, link, err := h.LinkService.IssueLink(ctx, actorID,
		req.LinkType, req.OrganizationID, req.ExpiresAt, req.MaxUses)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, onboardsdk.LinkResponse{
		LinkID:    link.ID,
		Token:     token,
		LinkType:  link.LinkType,
		OrgID:     link.OrgID,
		OrgName:   link.OrgName,
		ExpiresAt: link.ExpiresAt,
		MaxUses:   link.MaxUses,
		UsesCount: link.UsesCount,
		IsActive:  link.IsActive,
	})
}

type LinkDeactivateHandler struct {
	LinkService *service.LinkService
}

// ServeHTTP godoc
//
//	@Summary		Deactivate Invitation Link
//	@Description	Turn a link off so it can no longer be redeemed. Only the issuer, the organization owner, or an admin may deactivate it.
//	@Tags			Links
//	@Produce		json
//	@Param			id	path	string	true	"Link ID"
//	@Success		204	"deactivated"
//	@Failure		403	{object}	onboardsdk.APIError	"error, error_description"
//	@Failure		404	{object}	onboardsdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/links/{id}/deactivate [post].
func (h *LinkDeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	if err := h.LinkService.Deactivate(ctx, actorID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type TokenValidateHandler struct {
	LinkService *service.LinkService
}

// ServeHTTP godoc
//
//	@Summary		Validate Registration Token
//	@Description	Preview what a link or invitation token grants without consuming anything. Failures are reported in a fixed order: not found, expired, exhausted, inactive.
//	@Tags			Links
//	@Produce		json
//	@Param			token	query		string							true	"Raw registration token"
//	@Success		200		{object}	onboardsdk.ValidateTokenResponse	"kind, org_id, approver_id"
//	@Failure		400		{object}	onboardsdk.APIError				"error, error_description"
//	@Failure		404		{object}	onboardsdk.APIError				"error, error_description"
//	@Failure		410		{object}	onboardsdk.APIError				"error, error_description"
//	@Router			/v1/tokens/validate [get].
func (h *TokenValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get("token")
	if token == "" {
		httpx.WriteError(w, http.StatusBadRequest, onboardsdk.ErrorCodeInvalidRequest,
			"token query parameter is required")
		return
	}

	preview, err := h.LinkService.Validate(ctx, token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardsdk.ValidateTokenResponse{
		Kind:         preview.Kind,
		OrgID:        preview.OrgID,
		OrgName:      preview.OrgName,
		ApproverID:   preview.ApproverID,
		ApproverName: preview.ApproverName,
		InviteeEmail: preview.InviteeEmail,
	})
}
