package domain_test

import (
	"testing"

	"github.com/rescuebite/rescuebite/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrder_CanTransition(t *testing.T) {
	type transitionTest struct {
		name        string
		status      domain.OrderStatus
		fulfillment domain.FulfillmentType
		to          domain.OrderStatus
		allowed     bool
	}

	tests := []transitionTest{
		{name: "pending to confirmed", status: domain.OrderStatusPending, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusConfirmed, allowed: true},
		{name: "pending to ready skips preparing", status: domain.OrderStatusPending, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusReady, allowed: false},
		{name: "confirmed to preparing", status: domain.OrderStatusConfirmed, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusPreparing, allowed: true},
		{name: "preparing to ready", status: domain.OrderStatusPreparing, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusReady, allowed: true},
		{name: "ready to completed", status: domain.OrderStatusReady, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusCompleted, allowed: true},
		{name: "ready to delivering for delivery order", status: domain.OrderStatusReady, fulfillment: domain.FulfillmentDelivery, to: domain.OrderStatusDelivering, allowed: true},
		{name: "ready to delivering for pickup order", status: domain.OrderStatusReady, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusDelivering, allowed: false},
		{name: "delivering to delivered", status: domain.OrderStatusDelivering, fulfillment: domain.FulfillmentDelivery, to: domain.OrderStatusDelivered, allowed: true},
		{name: "cancel while preparing", status: domain.OrderStatusPreparing, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusCancelled, allowed: true},
		{name: "cancel while delivering", status: domain.OrderStatusDelivering, fulfillment: domain.FulfillmentDelivery, to: domain.OrderStatusCancelled, allowed: true},
		{name: "completed is terminal", status: domain.OrderStatusCompleted, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusCancelled, allowed: false},
		{name: "delivered is terminal", status: domain.OrderStatusDelivered, fulfillment: domain.FulfillmentDelivery, to: domain.OrderStatusCancelled, allowed: false},
		{name: "cancelled is terminal", status: domain.OrderStatusCancelled, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusConfirmed, allowed: false},
		{name: "no backwards move", status: domain.OrderStatusReady, fulfillment: domain.FulfillmentPickup, to: domain.OrderStatusPreparing, allowed: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := domain.Order{Status: test.status, Fulfillment: test.fulfillment}
			assert.Equal(t, test.allowed, order.CanTransition(test.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	terminal := []domain.OrderStatus{
		domain.OrderStatusCompleted,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	}
	active := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusPreparing,
		domain.OrderStatusReady,
		domain.OrderStatusDelivering,
	}

	for _, status := range terminal {
		assert.True(t, status.Terminal(), string(status))
	}
	for _, status := range active {
		assert.False(t, status.Terminal(), string(status))
	}
}
