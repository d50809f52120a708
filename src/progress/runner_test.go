package progress

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mosaicnetworks/fairshow/src/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextStatus(t *testing.T, ch <-chan Status) Status {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for progress update")
	}
	return Status{}
}

func TestRunnerCompletesDeterministically(t *testing.T) {
	mock := clock.NewMock()
	r := NewRunner(mock, DefaultStepInterval, DefaultSteps, common.NewTestEntry(t, "progress"))

	assert.Equal(t, 5*time.Second, r.Duration())
	assert.Equal(t, Status{Total: DefaultSteps}, r.Status())

	updates, unsubscribe := r.Subscribe()
	defer unsubscribe()

	require.NoError(t, r.Start(5))
	assert.True(t, r.Status().Running)

	for i := 1; i <= DefaultSteps; i++ {
		mock.Add(DefaultStepInterval)
		s := nextStatus(t, updates)
		require.Equal(t, i, s.Step)
		require.Equal(t, i == DefaultSteps, s.Done)
	}

	final := r.Status()
	assert.False(t, final.Running)
	assert.True(t, final.Done)
	assert.Equal(t, 100, final.Percent)
	assert.Equal(t, "VDF computation complete! All nodes finished together after 5 seconds.", final.Message)
}

func TestRunnerRejectsOverlap(t *testing.T) {
	mock := clock.NewMock()
	r := NewRunner(mock, 10*time.Millisecond, 2, common.NewTestEntry(t, "progress"))

	updates, unsubscribe := r.Subscribe()
	defer unsubscribe()

	require.NoError(t, r.Start(3))
	assert.Equal(t, ErrAlreadyRunning, r.Start(3))

	mock.Add(10 * time.Millisecond)
	nextStatus(t, updates)
	assert.Equal(t, ErrAlreadyRunning, r.Start(3))

	mock.Add(10 * time.Millisecond)
	s := nextStatus(t, updates)
	require.True(t, s.Done)

	// a finished run can be replayed from scratch
	require.NoError(t, r.Start(7))
	s = r.Status()
	assert.Equal(t, 0, s.Step)
	assert.True(t, s.Running)
}

func TestRunnerDefaults(t *testing.T) {
	r := NewRunner(clock.NewMock(), 0, 0, common.NewTestEntry(t, "progress"))
	assert.Equal(t, DefaultStepInterval*DefaultSteps, r.Duration())
}

func TestRunnerReset(t *testing.T) {
	mock := clock.NewMock()
	r := NewRunner(mock, 10*time.Millisecond, 1, common.NewTestEntry(t, "progress"))

	updates, unsubscribe := r.Subscribe()
	defer unsubscribe()

	require.NoError(t, r.Start(5))
	assert.False(t, r.Reset(), "an active run cannot be reset")

	mock.Add(10 * time.Millisecond)
	require.True(t, nextStatus(t, updates).Done)
	require.NotEmpty(t, r.Status().Message)

	assert.True(t, r.Reset())
	assert.Equal(t, Status{Total: 1}, r.Status())
}
