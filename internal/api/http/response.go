package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/logger"
	"hostellink-backend/internal/security"
	"hostellink-backend/internal/service"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError translates service and domain errors into stable machine
// codes so clients can branch on the code instead of the message.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, domain.ErrRoomAlreadyBooked):
		status, code = http.StatusConflict, "ROOM_ALREADY_BOOKED"
	case errors.Is(err, domain.ErrStaleTransition):
		status, code = http.StatusConflict, "STALE_TRANSITION"
	case errors.Is(err, domain.ErrInsufficientBalance):
		status, code = http.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE"
	case errors.Is(err, domain.ErrInvalidAmount):
		status, code = http.StatusUnprocessableEntity, "INVALID_AMOUNT"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, service.ErrEmailTaken):
		status, code = http.StatusConflict, "EMAIL_TAKEN"
	case errors.Is(err, service.ErrInvalidRole):
		status, code = http.StatusBadRequest, "INVALID_ROLE"
	case errors.Is(err, service.ErrPlotNotVerified):
		status, code = http.StatusUnprocessableEntity, "PLOT_NOT_VERIFIED"
	case errors.Is(err, service.ErrDisputeNeedsReason):
		status, code = http.StatusBadRequest, "DISPUTE_REASON_REQUIRED"
	case errors.Is(err, service.ErrPaymentFailed):
		status, code = http.StatusPaymentRequired, "PAYMENT_FAILED"
	case errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrWrongTokenType):
		status, code = http.StatusUnauthorized, "INVALID_TOKEN"
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{
			Code:    "STORAGE_FAILURE",
			Message: "an internal error occurred",
		}})
		return
	}

	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: err.Error()}})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    "BAD_REQUEST",
		Message: message,
	}})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return false
	}
	return true
}
