package http

import (
	"encoding/json"
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

type InvitationIssueHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Issue Invitation
//	@Description	Mint a single-use invitation bound to an email address. At most one pending invitation per (issuer, email) pair; the raw token appears in this response only.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.IssueInvitationRequest	true	"Invitation parameters"
//	@Success		201		{object}	onboardsdk.InvitationResponse		"invitation_id, token"
//	@Failure		400		{object}	onboardsdk.APIError					"error, error_description"
//	@Failure		409		{object}	onboardsdk.APIError					"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	var req onboardsdk.IssueInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	token, inv, err := h.InvitationService.Issue(ctx, actorID,
		req.InviteeName, req.InviteeEmail, req.Message, req.ExpiresAt)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, onboardsdk.InvitationResponse{
		InvitationID: inv.ID,
		Token:        token,
		InviteeName:  inv.InviteeName,
		InviteeEmail: inv.InviteeEmail,
		OrgID:        inv.OrgID,
		OrgName:      inv.OrgName,
		Status:       inv.Status,
		ExpiresAt:    inv.ExpiresAt,
	})
}

type InvitationRevokeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invitation
//	@Description	Withdraw a pending invitation. Only the issuer may revoke; an invitation that was already accepted or revoked reports a conflict.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"revoked"
//	@Failure		403	{object}	onboardsdk.APIError	"error, error_description"
//	@Failure		404	{object}	onboardsdk.APIError	"error, error_description"
//	@Failure		409	{object}	onboardsdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/revoke [post].
func (h *InvitationRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	if err := h.InvitationService.Revoke(ctx, actorID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
