package laundry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDeliveryStatus(t *testing.T) {
	t.Run("Linear Chain", func(t *testing.T) {
		steps := []struct {
			from OrderStatus
			to   OrderStatus
		}{
			{StatusRequested, StatusPickedUp},
			{StatusPickedUp, StatusInLaundry},
			{StatusInLaundry, StatusOutForDelivery},
			{StatusOutForDelivery, StatusDelivered},
		}

		for _, step := range steps {
			next, ok := NextDeliveryStatus(step.from)
			assert.True(t, ok, "expected successor for %s", step.from)
			assert.Equal(t, step.to, next)
		}
	})

	t.Run("Terminal Statuses", func(t *testing.T) {
		for _, s := range []OrderStatus{StatusDelivered, StatusCancelled} {
			_, ok := NextDeliveryStatus(s)
			assert.False(t, ok, "%s must have no successor", s)
		}
	})

	t.Run("Total Over Enum", func(t *testing.T) {
		all := []OrderStatus{
			StatusRequested, StatusPickedUp, StatusInLaundry,
			StatusOutForDelivery, StatusDelivered, StatusCancelled,
		}

		withSuccessor := 0
		for _, s := range all {
			assert.True(t, ValidStatus(s))
			if _, ok := NextDeliveryStatus(s); ok {
				withSuccessor++
			} else {
				assert.True(t, Terminal(s))
			}
		}
		assert.Equal(t, 4, withSuccessor)
	})
}

func TestValidStatus(t *testing.T) {
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
	assert.True(t, ValidStatus(StatusInLaundry))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleCustomer))
	assert.True(t, ValidRole(RoleDelivery))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superuser"))
}
