package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dostext/internal/logger"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(&logger.NoOpLogger{})

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}
	m.Register("log file", record("log file"))
	m.Register("controller", record("controller"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"controller", "log file"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(&logger.NoOpLogger{})
	m.SetStepTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	ran := false
	m.Register("after", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}
