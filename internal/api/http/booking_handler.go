package http

import (
	"net/http"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type bookRoomRequest struct {
	RoomID      string `json:"room_id"`
	PhoneNumber string `json:"phone_number"`
}

func (h *BookingHandler) BookRoom(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req bookRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RoomID == "" {
		writeBadRequest(w, "room_id is required")
		return
	}

	booking, receipt, err := h.bookings.BookRoom(r.Context(), ident, req.RoomID, req.PhoneNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"booking": booking,
		"receipt": receipt,
	})
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	booking, err := h.bookings.ConfirmRoom(r.Context(), ident, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req cancelRequest
	if r.ContentLength > 0 && !decodeBody(w, r, &req) {
		return
	}

	booking, err := h.bookings.CancelBooking(r.Context(), ident, mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type disputeRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req disputeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, err := h.bookings.RaiseDispute(r.Context(), ident, mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	booking, err := h.bookings.GetBooking(r.Context(), ident, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	bookings, err := h.bookings.ListMyBookings(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"bookings": bookings})
}

func (h *BookingHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	receipt, err := h.bookings.GetReceipt(r.Context(), ident, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *BookingHandler) ListMyReceipts(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	receipts, err := h.bookings.ListMyReceipts(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"receipts": receipts})
}
