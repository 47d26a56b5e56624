package http

import (
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	Handler
	service port.Service
}

func NewBalanceHandler(service port.Service, logger *zap.Logger) (*BalanceHandler, error) {
	return &BalanceHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type balanceResponse struct {
	PendingBalance decimal.Decimal `json:"pending_balance"`
	PaidBalance    decimal.Decimal `json:"paid_balance"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
}

func (bh *BalanceHandler) RestaurantBalance(ctx *gin.Context) {
	restaurantID := getAuthPayload(ctx).SubjectID

	restaurant, err := bh.service.GetRestaurantBalance(ctx, restaurantID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, balanceResponse{
		PendingBalance: restaurant.PendingBalance,
		PaidBalance:    restaurant.PaidBalance,
		TotalEarned:    restaurant.TotalEarned,
	})
}
