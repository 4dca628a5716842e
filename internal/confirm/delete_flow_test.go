package confirm_test

import (
	"testing"

	"katalog/internal/confirm"
	"katalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFlow_StartsIdle(t *testing.T) {
	var flow confirm.Flow
	assert.Equal(t, confirm.Idle, flow.State())

	_, ok := flow.Pending()
	assert.False(t, ok)

	_, ok = flow.Confirm()
	assert.False(t, ok, "confirm from idle is a no-op")
	assert.False(t, flow.Cancel())
}

func TestFlow_RequestThenConfirm(t *testing.T) {
	var flow confirm.Flow
	laptop := models.Product{ID: "1", Name: "Laptop"}

	flow.Request(laptop)
	assert.Equal(t, confirm.PendingConfirm, flow.State())
	pending, ok := flow.Pending()
	assert.True(t, ok)
	assert.Equal(t, "1", pending.ID)

	removed, ok := flow.Confirm()
	assert.True(t, ok)
	assert.Equal(t, "1", removed.ID)
	assert.Equal(t, confirm.Idle, flow.State())
}

func TestFlow_RequestThenCancel(t *testing.T) {
	var flow confirm.Flow

	flow.Request(models.Product{ID: "1"})
	assert.True(t, flow.Cancel())
	assert.Equal(t, confirm.Idle, flow.State())

	_, ok := flow.Confirm()
	assert.False(t, ok)
}

func TestFlow_NewRequestReplacesPending(t *testing.T) {
	var flow confirm.Flow

	flow.Request(models.Product{ID: "1"})
	flow.Request(models.Product{ID: "2"})

	removed, ok := flow.Confirm()
	assert.True(t, ok)
	assert.Equal(t, "2", removed.ID)

	_, ok = flow.Confirm()
	assert.False(t, ok, "requests do not stack")
}
