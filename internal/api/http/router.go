package http

import (
	"net/http"

	"hostellink-backend/internal/security"
	"hostellink-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every handler onto /api/v1. Auth endpoints are open;
// everything else sits behind the bearer-token middleware.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	hostelSvc service.HostelService,
	bookingSvc service.BookingService,
	walletSvc service.WalletService,
	noteSvc service.NotificationService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	hostelHandler := NewHostelHandler(hostelSvc)
	bookingHandler := NewBookingHandler(bookingSvc)
	walletHandler := NewWalletHandler(walletSvc)
	noteHandler := NewNotificationHandler(noteSvc)
	authMw := NewAuthMiddleware(tokens)

	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/hostels", hostelHandler.List).Methods("GET")
	api.HandleFunc("/hostels/{id}", hostelHandler.Get).Methods("GET")
	api.HandleFunc("/plots/verify", hostelHandler.VerifyPlot).Methods("GET")

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Authenticate)

	authed.HandleFunc("/hostels", hostelHandler.Create).Methods("POST")
	authed.HandleFunc("/my/hostels", hostelHandler.ListMine).Methods("GET")
	authed.HandleFunc("/hostels/{id}/rooms", hostelHandler.AddRoom).Methods("POST")
	authed.HandleFunc("/rooms/{roomId}", hostelHandler.UpdateRoom).Methods("PUT")
	authed.HandleFunc("/rooms/{roomId}", hostelHandler.DeleteRoom).Methods("DELETE")
	authed.HandleFunc("/rooms/{roomId}/vacate", hostelHandler.MarkRoomVacant).Methods("POST")

	authed.HandleFunc("/bookings", bookingHandler.BookRoom).Methods("POST")
	authed.HandleFunc("/bookings", bookingHandler.ListMine).Methods("GET")
	authed.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods("GET")
	authed.HandleFunc("/bookings/{id}/confirm", bookingHandler.Confirm).Methods("POST")
	authed.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods("POST")
	authed.HandleFunc("/bookings/{id}/dispute", bookingHandler.Dispute).Methods("POST")
	authed.HandleFunc("/bookings/{id}/receipt", bookingHandler.GetReceipt).Methods("GET")
	authed.HandleFunc("/receipts", bookingHandler.ListMyReceipts).Methods("GET")

	authed.HandleFunc("/wallet", walletHandler.Get).Methods("GET")
	authed.HandleFunc("/wallet/withdraw", walletHandler.Withdraw).Methods("POST")
	authed.HandleFunc("/wallet/transactions", walletHandler.ListTransactions).Methods("GET")

	authed.HandleFunc("/notifications", noteHandler.List).Methods("GET")
	authed.HandleFunc("/notifications/{id}/read", noteHandler.MarkAsRead).Methods("POST")

	return r
}
