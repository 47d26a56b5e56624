package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/rescuebite/rescuebite/internal/core/port"
	"go.uber.org/zap"
)

type PackageHandler struct {
	Handler
	service port.Service
}

func NewPackageHandler(service port.Service, logger *zap.Logger) (*PackageHandler, error) {
	return &PackageHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type packageRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	UnitPrice       float64 `json:"unit_price" binding:"required,gt=0"`
	DiscountedPrice float64 `json:"discounted_price" binding:"required,gt=0"`
	Quantity        int     `json:"quantity" binding:"gte=0"`
}

type packageResponse struct {
	ID              uint64          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Quantity        int             `json:"quantity"`
	Status          string          `json:"status"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func newPackageResponse(p *domain.Package) packageResponse {
	return packageResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		UnitPrice:       p.UnitPrice,
		DiscountedPrice: p.DiscountedPrice,
		Quantity:        p.AvailableQuantity,
		Status:          string(p.Status),
		UpdatedAt:       p.UpdatedAt,
	}
}

func (ph *PackageHandler) packageFromRequest(ctx *gin.Context, req *packageRequest) (*domain.Package, error) {
	unitPrice, err := decimal.NewFromFloat64(req.UnitPrice)
	if err != nil {
		return nil, err
	}
	discounted, err := decimal.NewFromFloat64(req.DiscountedPrice)
	if err != nil {
		return nil, err
	}

	return &domain.Package{
		RestaurantID:      getAuthPayload(ctx).SubjectID,
		Name:              req.Name,
		Description:       req.Description,
		UnitPrice:         unitPrice,
		DiscountedPrice:   discounted,
		AvailableQuantity: req.Quantity,
	}, nil
}

func (ph *PackageHandler) CreatePackage(ctx *gin.Context) {
	req := packageRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	pkg, err := ph.packageFromRequest(ctx, &req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	created, err := ph.service.CreatePackage(ctx, pkg)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPackageResponse(created), http.StatusCreated)
}

func (ph *PackageHandler) UpdatePackage(ctx *gin.Context) {
	packageID, err := orderIDParam(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := packageRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	pkg, err := ph.packageFromRequest(ctx, &req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	pkg.ID = packageID

	updated, err := ph.service.UpdatePackage(ctx, pkg)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPackageResponse(updated))
}

func (ph *PackageHandler) DeactivatePackage(ctx *gin.Context) {
	packageID, err := orderIDParam(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	pkg, err := ph.service.DeactivatePackage(ctx, packageID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPackageResponse(pkg))
}

type reactivateRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

func (ph *PackageHandler) ReactivatePackage(ctx *gin.Context) {
	packageID, err := orderIDParam(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	req := reactivateRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	pkg, err := ph.service.ReactivatePackage(ctx, packageID, req.Quantity)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPackageResponse(pkg))
}

func (ph *PackageHandler) ListPackages(ctx *gin.Context) {
	list, err := ph.service.ListPackages(ctx, getAuthPayload(ctx).SubjectID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]packageResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newPackageResponse(p))
	}
	ph.handleSuccess(ctx, result)
}
