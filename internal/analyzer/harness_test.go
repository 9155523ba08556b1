package analyzer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"complexity-analyzer/internal/algorithm"
	"complexity-analyzer/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOf(fn algorithm.Func) algorithm.Entry {
	return algorithm.Entry{ID: "test_algo", Label: algorithm.Linear, Run: fn}
}

func TestMeasure_SingleInvocation(t *testing.T) {
	var calls int64
	var gotSize int
	e := entryOf(func(_ context.Context, size int) error {
		atomic.AddInt64(&calls, 1)
		gotSize = size
		time.Sleep(2 * time.Millisecond)
		return nil
	})

	s, err := NewHarness(0).Measure(context.Background(), e, 42)
	require.NoError(t, err)

	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))
	assert.Equal(t, 42, gotSize)
	assert.Equal(t, 42, s.InputSize)
	assert.GreaterOrEqual(t, s.ElapsedSeconds, 0.002)
}

func TestMeasure_WithTimeoutStillMeasures(t *testing.T) {
	e := entryOf(func(context.Context, int) error { return nil })

	s, err := NewHarness(time.Second).Measure(context.Background(), e, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, s.InputSize)
	assert.GreaterOrEqual(t, s.ElapsedSeconds, 0.0)
}

func TestMeasure_ImplementationError(t *testing.T) {
	e := entryOf(func(context.Context, int) error { return errors.New("boom") })

	_, err := NewHarness(0).Measure(context.Background(), e, 10)
	assert.ErrorIs(t, err, apperr.ErrExecution)
	assert.Contains(t, err.Error(), "boom")
}

func TestMeasure_Panic(t *testing.T) {
	e := entryOf(func(context.Context, int) error { panic("index out of range") })

	_, err := NewHarness(0).Measure(context.Background(), e, 10)
	assert.ErrorIs(t, err, apperr.ErrExecution)

	_, err = NewHarness(time.Second).Measure(context.Background(), e, 10)
	assert.ErrorIs(t, err, apperr.ErrExecution)
}

func TestMeasure_TimeoutCooperative(t *testing.T) {
	e := entryOf(func(ctx context.Context, _ int) error {
		<-ctx.Done()
		return ctx.Err()
	})

	_, err := NewHarness(20 * time.Millisecond).Measure(context.Background(), e, 10)
	assert.ErrorIs(t, err, apperr.ErrTimeout)
}

func TestMeasure_TimeoutIgnoredContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	e := entryOf(func(context.Context, int) error {
		<-release
		return nil
	})

	start := time.Now()
	_, err := NewHarness(20 * time.Millisecond).Measure(context.Background(), e, 10)
	assert.ErrorIs(t, err, apperr.ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestMeasure_CanceledBeforeStart(t *testing.T) {
	var calls int64
	e := entryOf(func(context.Context, int) error {
		atomic.AddInt64(&calls, 1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHarness(0).Measure(ctx, e, 10)
	assert.ErrorIs(t, err, apperr.ErrCanceled)
	assert.Zero(t, atomic.LoadInt64(&calls))
}
