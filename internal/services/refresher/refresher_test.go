package refresher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
)

type MockRefresher struct {
	mock.Mock
	calls atomic.Int32
}

func (m *MockRefresher) Refresh(ctx context.Context) (*analytics.Snapshot, error) {
	m.calls.Add(1)
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*analytics.Snapshot)
	return snap, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestNew_DefaultInterval(t *testing.T) {
	s := New(new(MockRefresher), 0, newNoopLogger())
	assert.Equal(t, DefaultInterval, s.interval)
}

func TestService_RunRefreshesUntilCanceled(t *testing.T) {
	r := new(MockRefresher)
	r.On("Refresh", mock.Anything).Return(&analytics.Snapshot{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(r, 10*time.Millisecond, newNoopLogger()).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
}

func TestService_RunSurvivesErrors(t *testing.T) {
	r := new(MockRefresher)
	r.On("Refresh", mock.Anything).Return(nil, errors.New("db down"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go New(r, 10*time.Millisecond, newNoopLogger()).Run(ctx)

	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}
