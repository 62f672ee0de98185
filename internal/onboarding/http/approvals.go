package http

import (
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
)

// ApprovalHandler settles a pending registration one way or the other. The
// same handler serves both routes; approve picks the direction.
type ApprovalHandler struct {
	ApprovalService *service.ApprovalService
	approve         bool
}

// ServeHTTP godoc
//
//	@Summary		Approval Endpoint
//	@Description	Approve or reject a pending registration. Only the account's assigned approver may act; the first decision wins and later ones report a conflict.
//	@Tags			Approvals
//	@Produce		json
//	@Param			id	path	string	true	"Account ID"
//	@Success		204	"settled"
//	@Failure		403	{object}	onboardsdk.APIError	"error, error_description"
//	@Failure		404	{object}	onboardsdk.APIError	"error, error_description"
//	@Failure		409	{object}	onboardsdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id}/approve [post].
func (h *ApprovalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	accountID := r.PathValue("id")

	var err error
	if h.approve {
		err = h.ApprovalService.Approve(ctx, actorID, accountID)
	} else {
		err = h.ApprovalService.Reject(ctx, actorID, accountID)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
