package http

import (
	"net/http"
	"strconv"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/service"

	"github.com/gorilla/mux"
)

type HostelHandler struct {
	hostels service.HostelService
}

func NewHostelHandler(hostels service.HostelService) *HostelHandler {
	return &HostelHandler{hostels: hostels}
}

type createHostelRequest struct {
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	PlotNumber       string   `json:"plot_number"`
	Description      string   `json:"description"`
	DistanceFromGate *float64 `json:"distance_from_gate"`
	Images           []string `json:"images"`
}

func (h *HostelHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req createHostelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.PlotNumber == "" {
		writeBadRequest(w, "name and plot_number are required")
		return
	}

	hostel := &domain.Hostel{
		Name:             req.Name,
		Location:         req.Location,
		PlotNumber:       req.PlotNumber,
		Description:      req.Description,
		DistanceFromGate: req.DistanceFromGate,
		Images:           req.Images,
	}
	if err := h.hostels.CreateHostel(r.Context(), ident, hostel); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hostel)
}

func (h *HostelHandler) Get(w http.ResponseWriter, r *http.Request) {
	hostelID := mux.Vars(r)["id"]
	hostel, rooms, err := h.hostels.GetHostel(r.Context(), hostelID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hostel": hostel,
		"rooms":  rooms,
	})
}

func (h *HostelHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parseInt32(r.URL.Query().Get("page"), 1)
	pageSize := parseInt32(r.URL.Query().Get("page_size"), 20)

	hostels, total, err := h.hostels.ListHostels(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hostels": hostels,
		"total":   total,
	})
}

func (h *HostelHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	hostels, err := h.hostels.ListMyHostels(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"hostels": hostels})
}

func (h *HostelHandler) VerifyPlot(w http.ResponseWriter, r *http.Request) {
	plotNumber := r.URL.Query().Get("plot_number")
	if plotNumber == "" {
		writeBadRequest(w, "plot_number is required")
		return
	}

	verified, err := h.hostels.VerifyPlot(r.Context(), plotNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"verified": verified})
}

type roomRequest struct {
	RoomNumber    string   `json:"room_number"`
	PricePerMonth int64    `json:"price_per_month"`
	DepositAmount int64    `json:"deposit_amount"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
}

func (h *HostelHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req roomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PricePerMonth <= 0 {
		writeError(w, domain.ErrInvalidAmount)
		return
	}

	room := &domain.Room{
		HostelID:      mux.Vars(r)["id"],
		RoomNumber:    req.RoomNumber,
		PricePerMonth: req.PricePerMonth,
		DepositAmount: req.DepositAmount,
		Description:   req.Description,
		Images:        req.Images,
	}
	if err := h.hostels.AddRoom(r.Context(), ident, room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *HostelHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req roomRequest
	if !decodeBody(w, r, &req) {
		return
	}

	room := &domain.Room{
		ID:            mux.Vars(r)["roomId"],
		RoomNumber:    req.RoomNumber,
		PricePerMonth: req.PricePerMonth,
		DepositAmount: req.DepositAmount,
		Description:   req.Description,
		Images:        req.Images,
	}
	if err := h.hostels.UpdateRoom(r.Context(), ident, room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *HostelHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	if err := h.hostels.DeleteRoom(r.Context(), ident, mux.Vars(r)["roomId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *HostelHandler) MarkRoomVacant(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	if err := h.hostels.MarkRoomVacant(r.Context(), ident, mux.Vars(r)["roomId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"vacant": true})
}

func parseInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
