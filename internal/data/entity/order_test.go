package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusInProgress.CanTransitionTo(OrderStatusCompleted))
	assert.True(t, OrderStatusInProgress.CanTransitionTo(OrderStatusCancelled))

	// Terminal states never move
	assert.False(t, OrderStatusCompleted.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCompleted.CanTransitionTo(OrderStatusInProgress))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusCompleted))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusInProgress))

	// No self transitions
	assert.False(t, OrderStatusInProgress.CanTransitionTo(OrderStatusInProgress))
}
