package policy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestParsePolicy(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		expect Policy
		hasErr bool
	}

	tests := []testCase{
		{name: "short form", input: "fcfs", expect: FCFS},
		{name: "spelled out", input: "First-Come-First-Serve", expect: FCFS},
		{name: "sjf", input: "Shortest Job First", expect: SJF},
		{name: "priority", input: "priority", expect: Priority},
		{name: "round robin with space", input: "round robin", expect: RoundRobin},
		{name: "round robin short", input: "RR", expect: RoundRobin},
		{name: "unknown", input: "lottery", hasErr: true},
		{name: "empty", input: "", hasErr: true},
	}

	for _, tc := range tests {
		actual, err := ParsePolicy(tc.input)
		if tc.hasErr {
			assert.Error(t, err, tc.name)
			continue
		}
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.expect, actual, tc.name)
	}
}

func TestParseStrategy(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		expect Strategy
		hasErr bool
	}

	tests := []testCase{
		{name: "canonical", input: "First-Fit", expect: FirstFit},
		{name: "lower with space", input: "best fit", expect: BestFit},
		{name: "single word", input: "worst", expect: WorstFit},
		{name: "underscored", input: "first_fit", expect: FirstFit},
		{name: "unknown", input: "next-fit", hasErr: true},
	}

	for _, tc := range tests {
		actual, err := ParseStrategy(tc.input)
		if tc.hasErr {
			assert.Error(t, err, tc.name)
			continue
		}
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.expect, actual, tc.name)
	}
}

func TestPolicyUnmarshal(t *testing.T) {
	var fromJSON struct {
		Policy   Policy   `json:"policy"`
		Strategy Strategy `json:"strategy"`
	}
	err := json.Unmarshal([]byte(`{"policy":"round-robin","strategy":"best fit"}`), &fromJSON)
	assert.NoError(t, err)
	assert.Equal(t, RoundRobin, fromJSON.Policy)
	assert.Equal(t, BestFit, fromJSON.Strategy)

	var fromYAML struct {
		Policy   Policy   `yaml:"policy"`
		Strategy Strategy `yaml:"strategy"`
	}
	err = yaml.Unmarshal([]byte("policy: sjf\nstrategy: worst-fit\n"), &fromYAML)
	assert.NoError(t, err)
	assert.Equal(t, SJF, fromYAML.Policy)
	assert.Equal(t, WorstFit, fromYAML.Strategy)

	err = json.Unmarshal([]byte(`{"policy":"bogus"}`), &fromJSON)
	assert.Error(t, err)
}

func TestPolicyValid(t *testing.T) {
	for _, p := range Policies() {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, Policy("MLFQ").Valid())
	for _, s := range Strategies() {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Strategy("Next-Fit").Valid())
	assert.True(t, RoundRobin.Preemptive())
	assert.False(t, FCFS.Preemptive())
}
