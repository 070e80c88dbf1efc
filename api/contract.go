package api

// ProcessInput describes one process of a simulation request.  PID is
// optional; missing PIDs are assigned in submission order.
type ProcessInput struct {
	PID      *int `json:"pid,omitempty"`
	Arrival  int  `json:"arrival"`
	Burst    int  `json:"burst"`
	Memory   int  `json:"memory"`
	Priority int  `json:"priority"`
}

// SimulateRequest is the body of a simulation request.  Config carries
// loosely typed overrides (policy, timeQuantum, totalMemory, strategy);
// values may arrive as strings or numbers and are coerced before use.
type SimulateRequest struct {
	Processes []ProcessInput         `json:"processes"`
	Config    map[string]interface{} `json:"config,omitempty"`
}

// overrides is the typed form of SimulateRequest.Config.
type overrides struct {
	Policy      string `json:"policy,omitempty"`
	TimeQuantum *int   `json:"timeQuantum,omitempty"`
	TotalMemory *int   `json:"totalMemory,omitempty"`
	Strategy    string `json:"strategy,omitempty"`
}

// CatalogResponse lists the supported scheduling policies and allocation
// strategies.
type CatalogResponse struct {
	Policies   []string `json:"policies"`
	Strategies []string `json:"strategies"`
}
