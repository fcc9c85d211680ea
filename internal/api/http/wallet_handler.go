package http

import (
	"net/http"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/service"
)

type WalletHandler struct {
	wallets service.WalletService
}

func NewWalletHandler(wallets service.WalletService) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	wallet, err := h.wallets.GetWallet(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

type withdrawRequest struct {
	Amount int64 `json:"amount"`
}

func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req withdrawRequest
	if !decodeBody(w, r, &req) {
		return
	}

	wallet, err := h.wallets.Withdraw(r.Context(), ident, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	limit := parseInt32(r.URL.Query().Get("limit"), 20)
	txs, err := h.wallets.ListTransactions(r.Context(), ident, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": txs})
}
