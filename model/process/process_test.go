package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New(3, 2, 9, 150, 1)
	assert.Equal(t, 3, p.PID)
	assert.Equal(t, 2, p.ArrivalTime)
	assert.Equal(t, 9, p.BurstTime)
	assert.Equal(t, 9, p.RemainingTime)
	assert.Equal(t, 150, p.MemoryRequired)
	assert.Equal(t, 1, p.Priority)
	assert.Equal(t, StateNew, p.State)
	assert.False(t, p.Started())
	assert.False(t, p.Terminated())
	assert.False(t, p.MemoryAllocated)
}

func TestStarted(t *testing.T) {
	p := New(1, 0, 5, 100, 0)
	assert.False(t, p.Started())
	start := 4
	p.StartTime = &start
	assert.True(t, p.Started())
}
