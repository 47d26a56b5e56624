package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,
	domain.ErrEmptyOrder:    http.StatusBadRequest,

	domain.ErrInsufficientStock:     http.StatusConflict,
	domain.ErrInvalidTransition:     http.StatusConflict,
	domain.ErrRestaurantUnavailable: http.StatusUnprocessableEntity,
	domain.ErrPackageInactive:       http.StatusUnprocessableEntity,

	// Idempotence guards count as success for the caller.
	domain.ErrAlreadyConfirmed: http.StatusOK,
	domain.ErrAlreadyComputed:  http.StatusOK,
}

func statusFor(err error) (int, bool) {
	if code, ok := errorStatusMap[err]; ok {
		return code, true
	}
	// Typed errors (e.g. shortfall) unwrap to a mapped sentinel.
	for mapped, code := range errorStatusMap {
		if errors.Is(err, mapped) {
			return code, true
		}
	}
	return http.StatusInternalServerError, false
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithError(statusCode, err)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
	}

	var shortfall *domain.InsufficientStockError
	if errors.As(err, &shortfall) {
		ctx.JSON(statusCode, gin.H{
			"error":      domain.ErrInsufficientStock.Error(),
			"package_id": shortfall.PackageID,
			"requested":  shortfall.Requested,
			"available":  shortfall.Available,
		})
		return
	}

	ctx.JSON(statusCode, gin.H{"error": err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
