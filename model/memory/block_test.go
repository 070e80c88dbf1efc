package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockEnd(t *testing.T) {
	b := Block{Start: 100, Size: 50}
	assert.Equal(t, 149, b.End())
}

func TestBlockString(t *testing.T) {
	allocated := Block{Start: 0, Size: 100, Allocated: true, PID: 1}
	assert.Equal(t, "[0-99:P1,100MB]", allocated.String())

	free := Block{Start: 100, Size: 924}
	assert.Equal(t, "[100-1023:Free,924MB]", free.String())
}
