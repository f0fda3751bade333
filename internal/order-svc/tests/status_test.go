package tests

import (
	"errors"
	"testing"

	"quickbite/internal/order-svc/domain"

	"github.com/stretchr/testify/assert"
)

func TestOrderTransitionTable(t *testing.T) {
	allowed := map[domain.Status][]domain.Status{
		domain.StatusPending:        {domain.StatusConfirmed, domain.StatusRejected, domain.StatusCancelled},
		domain.StatusConfirmed:      {domain.StatusPreparing, domain.StatusCancelled},
		domain.StatusPreparing:      {domain.StatusReadyForPickup, domain.StatusCancelled},
		domain.StatusReadyForPickup: {domain.StatusOutForDelivery, domain.StatusCancelled},
		domain.StatusOutForDelivery: {domain.StatusDelivered},
	}

	all := []domain.Status{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusPreparing,
		domain.StatusReadyForPickup, domain.StatusOutForDelivery,
		domain.StatusDelivered, domain.StatusCancelled, domain.StatusRejected,
	}

	for _, from := range all {
		for _, to := range all {
			err := domain.CanTransition(from, to)
			legal := false
			for _, next := range allowed[from] {
				if next == to {
					legal = true
				}
			}
			if legal {
				assert.NoError(t, err, "%s -> %s should be legal", from, to)
			} else {
				var invalid *domain.InvalidTransitionError
				assert.Error(t, err, "%s -> %s should be illegal", from, to)
				assert.True(t, errors.As(err, &invalid))
				assert.Equal(t, from, invalid.From)
				assert.Equal(t, to, invalid.To)
			}
		}
	}
}

func TestTerminalStatusesAllowNothing(t *testing.T) {
	terminals := []domain.Status{domain.StatusDelivered, domain.StatusCancelled, domain.StatusRejected}
	targets := []domain.Status{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusPreparing,
		domain.StatusReadyForPickup, domain.StatusOutForDelivery,
		domain.StatusDelivered, domain.StatusCancelled, domain.StatusRejected,
	}

	for _, from := range terminals {
		assert.True(t, domain.IsTerminal(from))
		for _, to := range targets {
			assert.Error(t, domain.CanTransition(from, to), "terminal %s must reject %s", from, to)
		}
	}
}

func TestTimestampColumnConvention(t *testing.T) {
	assert.Equal(t, "confirmed_at", domain.TimestampColumn(domain.StatusConfirmed))
	assert.Equal(t, "prepared_at", domain.TimestampColumn(domain.StatusReadyForPickup))
	assert.Equal(t, "picked_up_at", domain.TimestampColumn(domain.StatusOutForDelivery))
	assert.Equal(t, "delivered_at", domain.TimestampColumn(domain.StatusDelivered))
	assert.Equal(t, "cancelled_at", domain.TimestampColumn(domain.StatusCancelled))
	assert.Equal(t, "", domain.TimestampColumn(domain.StatusPreparing))
}
