package notify_test

import (
	"testing"
	"time"

	"katalog/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestToast_ShowThenAutoHide(t *testing.T) {
	toast := notify.NewToast(30 * time.Millisecond)
	assert.Equal(t, notify.Hidden, toast.State().Status)

	toast.Show("Product deleted")
	state := toast.State()
	assert.Equal(t, notify.Visible, state.Status)
	assert.Equal(t, "Product deleted", state.Message)
	assert.False(t, state.Expiry.IsZero())

	assert.Eventually(t, func() bool {
		return toast.State().Status == notify.Hidden
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, toast.State().Message)
}

func TestToast_SecondShowReschedules(t *testing.T) {
	toast := notify.NewToast(60 * time.Millisecond)

	toast.Show("first")
	time.Sleep(40 * time.Millisecond)
	toast.Show("second")

	// The first countdown would have expired by now.
	time.Sleep(35 * time.Millisecond)
	state := toast.State()
	assert.Equal(t, notify.Visible, state.Status)
	assert.Equal(t, "second", state.Message)

	assert.Eventually(t, func() bool {
		return toast.State().Status == notify.Hidden
	}, time.Second, 5*time.Millisecond)
}

func TestToast_ManualHide(t *testing.T) {
	toast := notify.NewToast(20 * time.Millisecond)

	toast.Show("saved")
	toast.Hide()
	assert.Equal(t, notify.Hidden, toast.State().Status)

	toast.Show("again")
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, "again", toast.State().Message)
}

func TestToast_DefaultDuration(t *testing.T) {
	assert.Equal(t, notify.DefaultDuration, notify.NewToast(0).Duration())
	assert.Equal(t, 2*time.Second, notify.DefaultDuration)
}
