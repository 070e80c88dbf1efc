package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
processes:
  - arrival: 0
    burst: 8
    memory: 100
    priority: 2
  - arrival: 1
    burst: 4
    memory: 200
    priority: 1
  - pid: 9
    arrival: 2
    burst: 9
    memory: 150
    priority: 3
`)
	procs, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, procs, 3)

	assert.Equal(t, 1, procs[0].PID)
	assert.Equal(t, 2, procs[1].PID)
	assert.Equal(t, 9, procs[2].PID, "explicit pid wins")

	assert.Equal(t, 8, procs[0].BurstTime)
	assert.Equal(t, 8, procs[0].RemainingTime)
	assert.Equal(t, 200, procs[1].MemoryRequired)
	assert.Equal(t, 3, procs[2].Priority)
}

func TestParseYAMLSequenceSkipsTakenPID(t *testing.T) {
	data := []byte(`
processes:
  - pid: 1
    arrival: 0
    burst: 2
    memory: 10
  - arrival: 0
    burst: 2
    memory: 10
`)
	procs, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, 1, procs[0].PID)
	assert.Equal(t, 2, procs[1].PID)
}

func TestParseYAMLErrors(t *testing.T) {
	type testCase struct {
		name string
		data string
	}
	tests := []testCase{
		{name: "empty document", data: "processes: []\n"},
		{name: "negative arrival", data: "processes:\n  - arrival: -1\n    burst: 2\n    memory: 10\n"},
		{name: "zero burst", data: "processes:\n  - arrival: 0\n    burst: 0\n    memory: 10\n"},
		{name: "zero memory", data: "processes:\n  - arrival: 0\n    burst: 2\n    memory: 0\n"},
		{name: "duplicate pid", data: "processes:\n  - pid: 3\n    arrival: 0\n    burst: 2\n    memory: 10\n  - pid: 3\n    arrival: 0\n    burst: 2\n    memory: 10\n"},
		{name: "non positive pid", data: "processes:\n  - pid: 0\n    arrival: 0\n    burst: 2\n    memory: 10\n"},
		{name: "malformed yaml", data: "processes: ["},
	}
	for _, tc := range tests {
		_, err := ParseYAML([]byte(tc.data))
		assert.Error(t, err, tc.name)
	}
}

func TestParseText(t *testing.T) {
	data := []byte(`# arrival burst memory priority
0 8 100 2
1 4 200 1

2 9 150 3  # trailing comment
`)
	procs, err := ParseText(data)
	require.NoError(t, err)
	require.Len(t, procs, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{procs[0].PID, procs[1].PID, procs[2].PID})
	assert.Equal(t, 0, procs[0].ArrivalTime)
	assert.Equal(t, 8, procs[0].BurstTime)
	assert.Equal(t, 100, procs[0].MemoryRequired)
	assert.Equal(t, 2, procs[0].Priority)
	assert.Equal(t, 150, procs[2].MemoryRequired)
}

func TestParseTextErrors(t *testing.T) {
	type testCase struct {
		name string
		data string
	}
	tests := []testCase{
		{name: "short line", data: "0 8 100\n"},
		{name: "long line", data: "0 8 100 2 7\n"},
		{name: "garbage", data: "0 8 abc 2\n"},
		{name: "only comments", data: "# nothing here\n\n"},
		{name: "negative burst", data: "0 -8 100 2\n"},
	}
	for _, tc := range tests {
		_, err := ParseText([]byte(tc.data))
		assert.Error(t, err, tc.name)
	}
}

func TestParseTextWithoutTrailingNewline(t *testing.T) {
	procs, err := ParseText([]byte("0 5 64 1"))
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, 5, procs[0].BurstTime)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	tempDir := t.TempDir()
	service := New()

	yamlPath := filepath.Join(tempDir, "set.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("processes:\n  - arrival: 0\n    burst: 3\n    memory: 64\n"), 0o644))
	procs, err := service.Load(ctx, yamlPath)
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, 64, procs[0].MemoryRequired)

	textPath := filepath.Join(tempDir, "set.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("0 3 64 0\n1 2 32 1\n"), 0o644))
	procs, err = service.Load(ctx, textPath)
	require.NoError(t, err)
	assert.Len(t, procs, 2)

	_, err = service.Load(ctx, filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
}
