package policy

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scheduling policies recognised by the engine.
const (
	FCFS       Policy = "FCFS"     // first-come-first-serve, non-preemptive
	SJF        Policy = "SJF"      // shortest job first, non-preemptive
	Priority   Policy = "Priority" // lower priority value runs first, non-preemptive
	RoundRobin Policy = "RR"       // time-quantum slicing
)

// Memory allocation strategies recognised by the allocator.
const (
	FirstFit Strategy = "First-Fit"
	BestFit  Strategy = "Best-Fit"
	WorstFit Strategy = "Worst-Fit"
)

// Policy identifies a CPU scheduling discipline.
type Policy string

// Strategy identifies a contiguous memory placement discipline.
type Strategy string

// Policies lists all supported scheduling policies in menu order.
func Policies() []Policy {
	return []Policy{FCFS, SJF, Priority, RoundRobin}
}

// Strategies lists all supported allocation strategies in menu order.
func Strategies() []Strategy {
	return []Strategy{FirstFit, BestFit, WorstFit}
}

// Valid reports whether p is one of the supported policies.
func (p Policy) Valid() bool {
	switch p {
	case FCFS, SJF, Priority, RoundRobin:
		return true
	}
	return false
}

// Preemptive reports whether the policy slices execution rather than running
// each dispatched process to completion.
func (p Policy) Preemptive() bool {
	return p == RoundRobin
}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	switch s {
	case FirstFit, BestFit, WorstFit:
		return true
	}
	return false
}

// ParsePolicy converts user input into a Policy.  Matching ignores case and
// separator characters, and accepts both the short and the spelled-out names.
func ParsePolicy(text string) (Policy, error) {
	switch normalize(text) {
	case "fcfs", "firstcomefirstserve", "firstcomefirstserved":
		return FCFS, nil
	case "sjf", "shortestjobfirst":
		return SJF, nil
	case "priority":
		return Priority, nil
	case "rr", "roundrobin":
		return RoundRobin, nil
	}
	return "", fmt.Errorf("unknown scheduling policy: %q", text)
}

// ParseStrategy converts user input into a Strategy, with the same tolerance
// as ParsePolicy.
func ParseStrategy(text string) (Strategy, error) {
	switch normalize(text) {
	case "firstfit", "first":
		return FirstFit, nil
	case "bestfit", "best":
		return BestFit, nil
	case "worstfit", "worst":
		return WorstFit, nil
	}
	return "", fmt.Errorf("unknown allocation strategy: %q", text)
}

// normalize lowers the input and strips the separators commonly used between
// the words ("Round-Robin", "round robin", "round_robin" all normalise the
// same way).
func normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UnmarshalJSON parses a policy from its JSON string form.
func (p *Policy) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParsePolicy(text)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML parses a policy from its YAML scalar form.
func (p *Policy) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParsePolicy(text)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalJSON parses a strategy from its JSON string form.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseStrategy(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalYAML parses a strategy from its YAML scalar form.
func (s *Strategy) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseStrategy(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
