package http

import (
	"net/http"

	"github.com/classtrackhq/classtrack/internal/onboarding/service"
	"github.com/classtrackhq/classtrack/pkg/httpx"
	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

type NotificationListHandler struct {
	NotificationService *service.NotificationService
}

// ServeHTTP godoc
//
//	@Summary		List Notifications
//	@Description	List the caller's unread in-app notifications, newest first.
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{array}		onboardsdk.NotificationResponse	"notifications"
//	@Failure		401	{object}	onboardsdk.APIError				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications [get].
func (h *NotificationListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	notices, err := h.NotificationService.ListUnread(ctx, accountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]onboardsdk.NotificationResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, onboardsdk.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Content:   n.Content,
			Link:      n.Link,
			CreatedAt: n.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

type NotificationReadHandler struct {
	NotificationService *service.NotificationService
}

// ServeHTTP godoc
//
//	@Summary		Mark Notification Read
//	@Description	Acknowledge one notification. Acting on another account's notification reads as not found.
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204	"acknowledged"
//	@Failure		404	{object}	onboardsdk.APIError	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications/{id}/read [post].
func (h *NotificationReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	if err := h.NotificationService.MarkRead(ctx, accountID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
