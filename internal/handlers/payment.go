package handlers

import (
	"encoding/json"
	"net/http"

	"qpg-backend/internal/models"
	"qpg-backend/internal/services"
)

// PaymentHandler opens payment orders with the gateway.
type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateOrder opens a gateway order for the requested amount.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	orderID, err := h.payments.CreateOrder(req.Amount)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"amount":   req.Amount,
	})
}
