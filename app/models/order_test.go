package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	legal := []struct{ from, to OrderStatus }{
		{StatusPending, StatusAccept},
		{StatusPending, StatusCancelled},
		{StatusAccept, StatusPacked},
		{StatusPacked, StatusShipped},
		{StatusShipped, StatusDelivered},
	}
	for _, tc := range legal {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	illegal := []struct{ from, to OrderStatus }{
		{StatusDelivered, StatusPending},
		{StatusDelivered, StatusShipped},
		{StatusCancelled, StatusAccept},
		{StatusPending, StatusShipped},
		{StatusShipped, StatusCancelled},
		{StatusAccept, StatusCancelled},
		{StatusPacked, StatusPending},
	}
	for _, tc := range illegal {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	st, ok := ParseOrderStatus("Shipped")
	assert.True(t, ok)
	assert.Equal(t, StatusShipped, st)

	_, ok = ParseOrderStatus("shipped")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("Returned")
	assert.False(t, ok)
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{From: StatusDelivered, To: StatusPending}
	assert.Equal(t, "cannot transition order from Delivered to Pending", err.Error())
}
