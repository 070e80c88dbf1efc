package api

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/viant/toolbox"

	"github.com/osimkit/osim"
	"github.com/osimkit/osim/internal/idgen"
	ilog "github.com/osimkit/osim/internal/log"
	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/policy"
	"github.com/osimkit/osim/tracing"
)

// Handler serves the simulation API.
type Handler struct {
	defaults *osim.Config
	logger   *slog.Logger
}

// NewHandler creates an API handler; defaults fills the settings a request
// does not override.
func NewHandler(defaults *osim.Config, logger *slog.Logger) *Handler {
	if defaults == nil {
		defaults = osim.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{defaults: defaults, logger: logger}
}

// Register mounts the API routes on the supplied application.
func (h *Handler) Register(app *fiber.App) {
	v1 := app.Group("/api/v1")
	v1.Get("/catalog", h.Catalog)
	v1.Post("/simulate", h.Simulate)
	v1.Post("/simulate/:policy", h.Simulate)
}

// Catalog lists the supported policies and strategies.
func (h *Handler) Catalog(ctx *fiber.Ctx) error {
	response := CatalogResponse{}
	for _, p := range policy.Policies() {
		response.Policies = append(response.Policies, string(p))
	}
	for _, s := range policy.Strategies() {
		response.Strategies = append(response.Strategies, string(s))
	}
	return ctx.JSON(response)
}

// Simulate runs one simulation for the submitted process set and returns the
// full report.  The scheduling policy can come from the URL, the request
// config, or the server defaults, in that order of precedence.
func (h *Handler) Simulate(ctx *fiber.Ctx) error {
	runCtx, span := tracing.StartSpan(ctx.UserContext(), "api.simulate", "SERVER")
	defer func() {
		span.SetStatusFromHTTPCode(ctx.Response().StatusCode())
		span.End()
	}()

	var request SimulateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "invalid request format"})
	}

	config, err := h.buildConfig(ctx.Params("policy"), request.Config)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"error": err.Error()})
	}
	processes, err := buildProcesses(request.Processes)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"error": err.Error()})
	}

	service, err := osim.New(osim.WithConfig(config))
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).
			JSON(fiber.Map{"error": err.Error()})
	}
	report, err := service.Run(runCtx, processes)
	if err != nil {
		h.logger.Error("simulation failed", ilog.ErrAttr(err))
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "simulation failed"})
	}

	h.logger.Info("simulation completed",
		"runId", report.RunID,
		"policy", report.Policy,
		"processes", len(processes),
		"rejected", len(report.Unallocated),
		"totalTime", report.TotalTime)
	return ctx.JSON(report)
}

// buildConfig merges the server defaults with the request overrides.
func (h *Handler) buildConfig(policyParam string, raw map[string]interface{}) (*osim.Config, error) {
	config := *h.defaults

	var over overrides
	if len(raw) > 0 {
		raw = toolbox.DeleteEmptyKeys(raw)
		if err := toolbox.DefaultConverter.AssignConverted(&over, raw); err != nil {
			return nil, fmt.Errorf("invalid config overrides: %w", err)
		}
	}

	policyText := policyParam
	if policyText == "" {
		policyText = over.Policy
	}
	if policyText != "" {
		p, err := policy.ParsePolicy(policyText)
		if err != nil {
			return nil, err
		}
		config.Scheduler.Policy = p
	}
	if over.TimeQuantum != nil {
		config.Scheduler.TimeQuantum = *over.TimeQuantum
	}
	if over.TotalMemory != nil {
		config.Memory.TotalMemory = *over.TotalMemory
	}
	if over.Strategy != "" {
		s, err := policy.ParseStrategy(over.Strategy)
		if err != nil {
			return nil, err
		}
		config.Memory.Strategy = s
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// buildProcesses validates the submitted set and assigns missing PIDs.
func buildProcesses(inputs []ProcessInput) ([]*process.Process, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("request defines no processes")
	}
	used := map[int]bool{}
	for i, input := range inputs {
		if input.PID == nil {
			continue
		}
		if *input.PID < 1 {
			return nil, fmt.Errorf("process %d: pid must be positive, had: %d", i+1, *input.PID)
		}
		if used[*input.PID] {
			return nil, fmt.Errorf("process %d: duplicate pid %d", i+1, *input.PID)
		}
		used[*input.PID] = true
	}

	var sequence idgen.PIDSequence
	result := make([]*process.Process, 0, len(inputs))
	for i, input := range inputs {
		if input.Arrival < 0 {
			return nil, fmt.Errorf("process %d: arrival must not be negative, had: %d", i+1, input.Arrival)
		}
		if input.Burst < 1 {
			return nil, fmt.Errorf("process %d: burst must be at least 1, had: %d", i+1, input.Burst)
		}
		if input.Memory < 1 {
			return nil, fmt.Errorf("process %d: memory must be at least 1, had: %d", i+1, input.Memory)
		}
		pid := 0
		if input.PID != nil {
			pid = *input.PID
		} else {
			for {
				pid = sequence.Next()
				if !used[pid] {
					break
				}
			}
			used[pid] = true
		}
		result = append(result, process.New(pid, input.Arrival, input.Burst, input.Memory, input.Priority))
	}
	return result, nil
}
