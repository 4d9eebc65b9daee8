package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventRemainingCapacity(t *testing.T) {
	event := &Event{Capacity: 30}

	assert.Equal(t, 30, event.RemainingCapacity(0))
	assert.Equal(t, 1, event.RemainingCapacity(29))
	assert.Equal(t, 0, event.RemainingCapacity(30))

	// The enrollment flow stops at zero, but the arithmetic itself is plain.
	assert.Equal(t, -1, event.RemainingCapacity(31))
}
