package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"go.uber.org/zap"
)

type SettlementHandler struct {
	Handler
	service port.Service
}

func NewSettlementHandler(service port.Service, logger *zap.Logger) (*SettlementHandler, error) {
	return &SettlementHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type settlementReceiptResponse struct {
	RestaurantID uint64          `json:"restaurant_id"`
	Reference    string          `json:"reference,omitempty"`
	OrderIDs     []uint64        `json:"order_ids"`
	Total        decimal.Decimal `json:"total"`
	CompletedAt  time.Time       `json:"completed_at"`
}

// RunBatch is the operator trigger for one restaurant's due payouts.
// asOf defaults to now; an explicit date (RFC 3339) replays history
// deterministically.
func (sh *SettlementHandler) RunBatch(ctx *gin.Context) {
	restaurantID, err := strconv.ParseUint(ctx.Param("restaurantId"), 10, 64)
	if err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	asOf := time.Now()
	if raw := ctx.Query("as_of"); raw != "" {
		asOf, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			sh.handleValidationError(ctx, err)
			return
		}
	}

	receipt, err := sh.service.RunSettlementBatch(ctx, restaurantID, asOf)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, settlementReceiptResponse{
		RestaurantID: receipt.RestaurantID,
		Reference:    receipt.Reference,
		OrderIDs:     receipt.OrderIDs,
		Total:        receipt.Total,
		CompletedAt:  receipt.CompletedAt,
	})
}
