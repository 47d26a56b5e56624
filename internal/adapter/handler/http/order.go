package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	PackageID uint64 `json:"package_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	RestaurantID  uint64             `json:"restaurant_id" binding:"required"`
	Items         []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string             `json:"payment_method" binding:"required,oneof=CASH CARD ONLINE"`
	Fulfillment   string             `json:"fulfillment" binding:"omitempty,oneof=PICKUP DELIVERY"`
}

type orderItemResponse struct {
	PackageID uint64          `json:"package_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type commissionResponse struct {
	Rate             decimal.Decimal `json:"rate"`
	PlatformRevenue  decimal.Decimal `json:"platform_revenue"`
	RestaurantPayout decimal.Decimal `json:"restaurant_payout"`
	ComputedAt       time.Time       `json:"computed_at"`
}

type settlementResponse struct {
	Status       string     `json:"status"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Reference    string     `json:"reference,omitempty"`
}

type orderResponse struct {
	ID            uint64              `json:"id"`
	RestaurantID  uint64              `json:"restaurant_id"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMethod string              `json:"payment_method"`
	Fulfillment   string              `json:"fulfillment"`
	Total         decimal.Decimal     `json:"total"`
	Acknowledged  bool                `json:"acknowledged"`
	Items         []orderItemResponse `json:"items"`
	Commission    *commissionResponse `json:"commission,omitempty"`
	Settlement    settlementResponse  `json:"settlement"`
	CreatedAt     time.Time           `json:"created_at"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			PackageID: item.PackageID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	resp := orderResponse{
		ID:            o.ID,
		RestaurantID:  o.RestaurantID,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		Fulfillment:   string(o.Fulfillment),
		Total:         o.Total,
		Acknowledged:  o.Acknowledged,
		Items:         items,
		Settlement: settlementResponse{
			Status:       string(o.Settlement.Status),
			ScheduledFor: o.Settlement.ScheduledFor,
			CompletedAt:  o.Settlement.CompletedAt,
			Reference:    o.Settlement.Reference,
		},
		CreatedAt: o.CreatedAt,
	}
	if o.Commission.ComputedAt != nil {
		resp.Commission = &commissionResponse{
			Rate:             o.Commission.Rate,
			PlatformRevenue:  o.Commission.PlatformRevenue,
			RestaurantPayout: o.Commission.RestaurantPayout,
			ComputedAt:       *o.Commission.ComputedAt,
		}
	}
	return resp
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).SubjectID

	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]port.NewOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, port.NewOrderItem{PackageID: item.PackageID, Quantity: item.Quantity})
	}

	fulfillment := domain.FulfillmentType(req.Fulfillment)
	if fulfillment == "" {
		fulfillment = domain.FulfillmentPickup
	}

	order, err := oh.service.CreateOrder(ctx, customerID, req.RestaurantID, items,
		domain.PaymentMethod(req.PaymentMethod), fulfillment)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if order.CustomerID != getAuthPayload(ctx).SubjectID {
		oh.handleError(ctx, domain.ErrForbidden)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	list, err := oh.service.ListOrdersByCustomer(ctx, getAuthPayload(ctx).SubjectID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}
	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) ListRestaurantOrders(ctx *gin.Context) {
	list, err := oh.service.ListOrdersByRestaurant(ctx, getAuthPayload(ctx).SubjectID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}
	oh.handleSuccess(ctx, result)
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (oh *OrderHandler) Transition(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := transitionRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.Transition(ctx, orderID, domain.OrderStatus(req.Status), req.Note)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := cancelRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CancelOrder(ctx, orderID, req.Reason)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) AcknowledgeOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.AcknowledgeOrder(ctx, orderID); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func orderIDParam(ctx *gin.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}
