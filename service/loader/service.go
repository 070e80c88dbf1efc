package loader

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/osimkit/osim/internal/idgen"
	"github.com/osimkit/osim/model/process"
)

// Service loads process sets from storage.
type Service struct {
	fs afs.Service
}

// New creates a loader backed by the default afs service.
func New() *Service {
	return &Service{fs: afs.New()}
}

// Load reads the resource at URL and parses it according to its extension:
// .yaml/.yml as a YAML document, anything else as the legacy text format.
func (s *Service) Load(ctx context.Context, URL string) ([]*process.Process, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load process set %v: %w", URL, err)
	}
	switch strings.ToLower(path.Ext(URL)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(data)
	}
}

// document mirrors the YAML process-set layout.
type document struct {
	Processes []entry `yaml:"processes"`
}

type entry struct {
	PID      *int `yaml:"pid"`
	Arrival  int  `yaml:"arrival"`
	Burst    int  `yaml:"burst"`
	Memory   int  `yaml:"memory"`
	Priority int  `yaml:"priority"`
}

// ParseYAML decodes a YAML process-set document.
func ParseYAML(data []byte) ([]*process.Process, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse process set: %w", err)
	}
	if len(doc.Processes) == 0 {
		return nil, fmt.Errorf("process set defines no processes")
	}
	return materialize(doc.Processes)
}

// materialize validates the entries and assigns missing PIDs from a
// sequential source, skipping any explicitly taken value.
func materialize(entries []entry) ([]*process.Process, error) {
	used := make(map[int]bool)
	for i, e := range entries {
		if e.PID == nil {
			continue
		}
		if *e.PID < 1 {
			return nil, fmt.Errorf("process #%d: pid must be positive, got %d", i+1, *e.PID)
		}
		if used[*e.PID] {
			return nil, fmt.Errorf("process #%d: duplicate pid %d", i+1, *e.PID)
		}
		used[*e.PID] = true
	}

	var seq idgen.PIDSequence
	result := make([]*process.Process, 0, len(entries))
	for i, e := range entries {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("process #%d: %w", i+1, err)
		}
		pid := 0
		if e.PID != nil {
			pid = *e.PID
		} else {
			for pid = seq.Next(); used[pid]; pid = seq.Next() {
			}
			used[pid] = true
		}
		result = append(result, process.New(pid, e.Arrival, e.Burst, e.Memory, e.Priority))
	}
	return result, nil
}

func validate(e entry) error {
	if e.Arrival < 0 {
		return fmt.Errorf("arrival time must not be negative, got %d", e.Arrival)
	}
	if e.Burst < 1 {
		return fmt.Errorf("burst time must be positive, got %d", e.Burst)
	}
	if e.Memory < 1 {
		return fmt.Errorf("memory requirement must be positive, got %d", e.Memory)
	}
	return nil
}
