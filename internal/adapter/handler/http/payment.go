package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type paymentCallbackRequest struct {
	OrderID        uint64 `json:"order_id" binding:"required"`
	Status         string `json:"status" binding:"required,oneof=authorized failed"`
	TransactionRef string `json:"transaction_ref"`
}

// Callback consumes the asynchronous payment signal from the gateway
// collaborator. The gateway retries until it sees 2xx, so the same
// signal may arrive more than once; ErrAlreadyConfirmed maps to 200.
func (ph *PaymentHandler) Callback(ctx *gin.Context) {
	req := paymentCallbackRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	signal := port.PaymentSignal{
		OrderID:        req.OrderID,
		Authorized:     req.Status == "authorized",
		TransactionRef: req.TransactionRef,
	}

	var err error
	if signal.Authorized {
		_, err = ph.service.ConfirmPayment(ctx, signal.OrderID, signal.TransactionRef)
	} else {
		_, err = ph.service.FailPayment(ctx, signal.OrderID, "payment failed")
	}
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"order_id": signal.OrderID})
}
