package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingLogs is a LoggingService that keeps every written entry.
type recordingLogs struct {
	mu      sync.Mutex
	entries []*model.LogEntry
	batches int
	err     error
	delay   time.Duration
}

func (r *recordingLogs) Record(_ context.Context, entries ...*model.LogEntry) error {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches++
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *recordingLogs) Query(context.Context, model.LogQuery) ([]model.LogEntry, error) {
	return nil, nil
}

func (r *recordingLogs) Count(context.Context, model.LogQuery) (int64, error) {
	return 0, nil
}

func (r *recordingLogs) Entries() []*model.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.LogEntry(nil), r.entries...)
}

func (r *recordingLogs) Batches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 2, cfg.NumWorkers)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.FlushInterval)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestAsyncLoggerConfig_withDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  AsyncLoggerConfig
		want AsyncLoggerConfig
	}{
		{
			name: "zero config gets defaults",
			cfg:  AsyncLoggerConfig{},
			want: DefaultAsyncLoggerConfig(),
		},
		{
			name: "explicit values are kept",
			cfg:  AsyncLoggerConfig{BufferSize: 5, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Millisecond, WriteTimeout: time.Second},
			want: AsyncLoggerConfig{BufferSize: 5, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Millisecond, WriteTimeout: time.Second},
		},
		{
			name: "negative values get defaults",
			cfg:  AsyncLoggerConfig{BufferSize: -1, NumWorkers: -1, BatchSize: 3},
			want: AsyncLoggerConfig{BufferSize: 1000, NumWorkers: 2, BatchSize: 3, FlushInterval: time.Second, WriteTimeout: 5 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.withDefaults())
		})
	}
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())

	assert.Nil(t, al)
	assert.False(t, al.Log(&model.LogEntry{Message: "ignored"}))
	assert.Equal(t, AsyncLoggerStats{}, al.Stats())
	al.Stop()
}

func TestAsyncLogger_FlushesOnBatchSize(t *testing.T) {
	sink := &recordingLogs{}
	al := NewAsyncLogger(sink, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     3,
		FlushInterval: time.Hour,
	})
	defer al.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, al.Log(&model.LogEntry{Message: "entry"}))
	}

	assert.Eventually(t, func() bool { return len(sink.Entries()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, sink.Batches())
	assert.Equal(t, int64(3), al.Stats().Written)
}

func TestAsyncLogger_FlushesOnInterval(t *testing.T) {
	sink := &recordingLogs{}
	al := NewAsyncLogger(sink, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     100,
		FlushInterval: 10 * time.Millisecond,
	})
	defer al.Stop()

	al.Log(&model.LogEntry{Message: "lonely"})

	assert.Eventually(t, func() bool { return len(sink.Entries()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestAsyncLogger_StopDrainsPending(t *testing.T) {
	sink := &recordingLogs{}
	al := NewAsyncLogger(sink, AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    2,
		BatchSize:     7,
		FlushInterval: time.Hour,
	})

	for i := 0; i < 20; i++ {
		require.True(t, al.Log(&model.LogEntry{Message: "entry"}))
	}
	al.Stop()

	assert.Len(t, sink.Entries(), 20)
	stats := al.Stats()
	assert.Equal(t, int64(20), stats.Enqueued)
	assert.Equal(t, int64(20), stats.Written)

	t.Run("stop is idempotent", func(t *testing.T) {
		al.Stop()
	})

	t.Run("log after stop is dropped", func(t *testing.T) {
		assert.False(t, al.Log(&model.LogEntry{Message: "late"}))
		assert.Equal(t, int64(1), al.Stats().Dropped)
	})
}

func TestAsyncLogger_DropsWhenBufferFull(t *testing.T) {
	sink := &recordingLogs{delay: 50 * time.Millisecond}
	al := NewAsyncLogger(sink, AsyncLoggerConfig{
		BufferSize:    1,
		NumWorkers:    1,
		BatchSize:     1,
		FlushInterval: time.Hour,
	})
	defer al.Stop()

	accepted := 0
	for i := 0; i < 20; i++ {
		if al.Log(&model.LogEntry{Message: "burst"}) {
			accepted++
		}
	}

	stats := al.Stats()
	assert.Less(t, accepted, 20)
	assert.Equal(t, int64(20-accepted), stats.Dropped)
}

func TestAsyncLogger_CountsFailures(t *testing.T) {
	mockLogs := &mocks.MockLoggingService{}
	mockLogs.On("Record", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	al := NewAsyncLogger(mockLogs, AsyncLoggerConfig{BatchSize: 2, NumWorkers: 1, FlushInterval: time.Hour})
	al.Log(&model.LogEntry{Message: "a"})
	al.Log(&model.LogEntry{Message: "b"})
	al.Stop()

	assert.Equal(t, int64(2), al.Stats().Failed)
	assert.Zero(t, al.Stats().Written)
	mockLogs.AssertCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestAsyncLogger_IgnoresNilEntry(t *testing.T) {
	sink := &recordingLogs{}
	al := NewAsyncLogger(sink, DefaultAsyncLoggerConfig())
	defer al.Stop()

	assert.False(t, al.Log(nil))
	assert.Zero(t, al.Stats().Enqueued)
}
