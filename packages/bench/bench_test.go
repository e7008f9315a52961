package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Summary(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 100; i++ {
		r.Record(time.Duration(i) * time.Millisecond)
	}

	s := r.Summary()

	assert.Equal(t, int64(100), s.Count)
	assert.InDelta(t, float64(time.Millisecond), float64(s.Min), float64(10*time.Microsecond))
	assert.InDelta(t, float64(100*time.Millisecond), float64(s.Max), float64(time.Millisecond))
	assert.InDelta(t, float64(50*time.Millisecond), float64(s.P50), float64(time.Millisecond))
	assert.InDelta(t, float64(95*time.Millisecond), float64(s.P95), float64(time.Millisecond))
	assert.True(t, s.P50 <= s.P95 && s.P95 <= s.P99 && s.P99 <= s.Max)
}

func TestRecorder_ClampsOutOfRange(t *testing.T) {
	r := NewRecorder()
	r.Record(0)
	r.Record(2 * time.Minute)

	s := r.Summary()

	assert.Equal(t, int64(2), s.Count)
	assert.Equal(t, time.Microsecond, s.Min)
	assert.InDelta(t, float64(time.Minute), float64(s.Max), float64(100*time.Millisecond))
}

func TestRun(t *testing.T) {
	s, err := Run(context.Background(), "A\n  K : V\n  L\n    x\n", Options{Iterations: 50, Workers: 4})

	require.NoError(t, err)
	assert.Equal(t, int64(50), s.Count)
	assert.True(t, s.Total > 0)
}

func TestRun_Defaults(t *testing.T) {
	s, err := Run(context.Background(), "", Options{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Count)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := Run(ctx, "A\n", Options{Iterations: 1000})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), s.Count)
}
