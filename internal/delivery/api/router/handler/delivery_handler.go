package handler

import (
	"net/http"

	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"
	"upkeep/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeliveryHandler serves ledger diagnostics
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(deliveryUC usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: deliveryUC}
}

// List returns the caller's most recent send attempts
func (h *DeliveryHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := response.Pagination(c)

	entries, err := h.deliveryUC.ListDeliveries(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}
