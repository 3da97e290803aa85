package retry

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type testSleeper struct {
	sleepTimes []time.Duration
}

func (t *testSleeper) Sleep(ctx context.Context, d time.Duration) bool {
	t.sleepTimes = append(t.sleepTimes, d)
	return ctx.Err() == nil
}

func withTestSleeper(t *testing.T) *testSleeper {
	ts := &testSleeper{}
	sleeperImpl = ts
	t.Cleanup(func() {
		sleeperImpl = realSleeper{}
	})
	return ts
}

func TestRetrier(t *testing.T) {
	retriableErr := errors.New("retriable")
	r := NewRetrier(Limit(5), RetriableErrors(retriableErr))

	attempts, err := r.Retry(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, uint(1), attempts)

	attempts, err = r.Retry(context.Background(), func() error { return errors.New("unknown") })
	assert.Error(t, err)
	assert.Equal(t, uint(1), attempts)

	attempts, err = r.Retry(context.Background(), func() error { return errors.Wrap(retriableErr, "wrapped") })
	assert.ErrorIs(t, err, retriableErr)
	assert.Equal(t, uint(5), attempts)
}

func TestRetry_EventualSuccess(t *testing.T) {
	var calls int
	attempts, err := Retry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, Limit(10))

	assert.NoError(t, err)
	assert.EqualValues(t, 3, attempts)
}

func TestRetry_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts, err := Retry(ctx, func() error { return errors.New("err") })
	assert.Error(t, err)
	assert.EqualValues(t, 1, attempts)
}

func TestBackoffWithJitter(t *testing.T) {
	ts := withTestSleeper(t)

	delay := time.Millisecond
	strategy := BackoffWithJitter(Constant(delay), delay, 0.1)
	for i := 0; i < 1000; i++ {
		assert.True(t, strategy(context.Background(), 1, errors.New("err")))
	}

	for _, d := range ts.sleepTimes {
		assert.InDelta(t, float64(delay), float64(d), 0.1*float64(delay))
	}
}

func TestBackoffWithJitter_Capped(t *testing.T) {
	ts := withTestSleeper(t)

	strategy := BackoffWithJitter(BinaryExponential(time.Second), 10*time.Second, 0)
	for attempts := uint(1); attempts <= 6; attempts++ {
		strategy(context.Background(), attempts, errors.New("err"))
	}

	assert.Equal(t, []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second,
		10 * time.Second,
	}, ts.sleepTimes)
}

func TestRealSleeper_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.False(t, realSleeper{}.Sleep(ctx, time.Minute))
	assert.True(t, time.Since(start) < time.Second)

	assert.True(t, realSleeper{}.Sleep(context.Background(), time.Millisecond))
}

func TestExponential(t *testing.T) {
	s := Exponential(2*time.Second, 3.0)

	assert.Equal(t, 2*time.Second, s(1))
	assert.Equal(t, 6*time.Second, s(2))
	assert.Equal(t, 18*time.Second, s(3))
	assert.Equal(t, 54*time.Second, s(4))

	assert.Equal(t, Exponential(time.Second, 2)(5), BinaryExponential(time.Second)(5))
}
