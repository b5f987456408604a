package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Valid(t *testing.T) {
	for _, status := range TaskStatuses {
		assert.True(t, status.Valid(), string(status))
	}

	for _, status := range []TaskStatus{"", "archived", "Pending", "in_progress", "done"} {
		assert.False(t, status.Valid(), string(status))
	}
}
