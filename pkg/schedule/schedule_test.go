package schedule_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"katalog/pkg/schedule"

	"github.com/stretchr/testify/assert"
)

func TestTask_RunsOnce(t *testing.T) {
	var task schedule.Task
	var calls atomic.Int32

	task.Schedule(10*time.Millisecond, func() { calls.Add(1) })
	assert.True(t, task.Pending())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, task.Pending())
}

func TestTask_CancelPreventsRun(t *testing.T) {
	var task schedule.Task
	var calls atomic.Int32

	task.Schedule(20*time.Millisecond, func() { calls.Add(1) })
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestTask_RescheduleReplaces(t *testing.T) {
	var task schedule.Task
	var mu sync.Mutex
	var fired []string

	task.Schedule(20*time.Millisecond, func() {
		mu.Lock()
		fired = append(fired, "first")
		mu.Unlock()
	})
	task.Schedule(40*time.Millisecond, func() {
		mu.Lock()
		fired = append(fired, "second")
		mu.Unlock()
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(fired) == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"second"}, fired)
}

func TestTask_CancelRace(t *testing.T) {
	var task schedule.Task
	var calls atomic.Int32

	for i := 0; i < 200; i++ {
		task.Schedule(time.Microsecond, func() { calls.Add(1) })
		task.Cancel()
	}
	before := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, calls.Load(), "no callback may start after Cancel returns")
}

func TestDebouncer_EmitsLastValue(t *testing.T) {
	var mu sync.Mutex
	var got []string
	d := schedule.NewDebouncer(30*time.Millisecond, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})

	for _, v := range []string{"l", "la", "lap", "lapt"} {
		d.Push(v)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"lapt"}, got)
}

func TestDebouncer_FlushAndStop(t *testing.T) {
	var mu sync.Mutex
	var got []string
	d := schedule.NewDebouncer(time.Hour, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})

	assert.False(t, d.Flush())

	d.Push("mouse")
	assert.True(t, d.Flush())
	assert.False(t, d.Flush())

	d.Push("dropped")
	d.Stop()
	assert.False(t, d.Flush())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"mouse"}, got)
}
