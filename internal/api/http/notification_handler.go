package http

import (
	"net/http"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/service"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notes service.NotificationService
}

func NewNotificationHandler(notes service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notes: notes}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	page := parseInt32(r.URL.Query().Get("page"), 1)
	pageSize := parseInt32(r.URL.Query().Get("page_size"), 20)

	notes, total, err := h.notes.GetNotifications(r.Context(), ident.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notes,
		"total":         total,
	})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	if err := h.notes.MarkAsRead(r.Context(), ident.UserID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"read": true})
}
