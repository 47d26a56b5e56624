package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInsufficientStock      = errors.New("not enough stock available")
	ErrRestaurantUnavailable  = errors.New("restaurant is not accepting orders")
	ErrPackageInactive        = errors.New("package is not active")
	ErrEmptyOrder             = errors.New("order has no items")
	ErrInvalidTransition      = errors.New("order status transition is not allowed")
	ErrAlreadyConfirmed       = errors.New("order payment already confirmed")
	ErrAlreadyComputed        = errors.New("order commission already computed")
	ErrCommissionNotComputed  = errors.New("order commission is not computed yet")
	ErrSettlementBatchFailure = errors.New("settlement batch could not be applied")
)

// InsufficientStockError carries the shortfall so callers can report
// a precise message. It unwraps to ErrInsufficientStock.
type InsufficientStockError struct {
	PackageID uint64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("package %d: requested %d, available %d", e.PackageID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
