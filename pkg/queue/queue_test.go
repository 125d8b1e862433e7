package queue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/voltkart/pkg/queue"
)

var processed atomic.Int32

type confirmJob struct {
	OrderID string
}

func (j *confirmJob) Handle() error {
	processed.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	return errors.New("smtp unreachable")
}

func init() {
	queue.StartWorkers(context.Background(), 2)
	queue.Register("*queue_test.confirmJob", func() queue.Job { return &confirmJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
}

func TestDispatchAndProcess(t *testing.T) {
	before := processed.Load()
	require.NoError(t, queue.Dispatch(&confirmJob{OrderID: "ORD100"}))

	deadline := time.Now().Add(2 * time.Second)
	for processed.Load() == before && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	assert.Greater(t, processed.Load(), before)
}

func TestFailedJobRecorded(t *testing.T) {
	queue.SetMaxRetry(1)
	defer queue.SetMaxRetry(3)

	require.NoError(t, queue.Dispatch(&failJob{}))

	deadline := time.Now().Add(4 * time.Second)
	for len(queue.FailedJobs()) == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	assert.NotEmpty(t, queue.FailedJobs())
}

func TestDispatchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func() {
			defer wg.Done()
			queue.Dispatch(&confirmJob{OrderID: "ORD200"}) //nolint:errcheck
		}()
	}
	wg.Wait()
}
