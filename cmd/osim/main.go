// Command osim is an interactive terminal front end for the simulator.  It
// runs CPU scheduling and contiguous memory allocation over a predefined, a
// manually entered or a file based process set and prints the resulting
// Gantt chart, process table, memory map and metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/osimkit/osim"
	"github.com/osimkit/osim/internal/log"
	"github.com/osimkit/osim/internal/menu"
	"github.com/osimkit/osim/internal/render"
	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/policy"
	"github.com/osimkit/osim/service/loader"
	"github.com/osimkit/osim/tracing"
)

var (
	logLevel  = flag.String("log", "info", "log level: debug, info, warn, error")
	traceFile = flag.String("trace", "", "write trace spans to this file")
)

func main() {
	flag.Parse()

	logger := log.BuildLogger(*logLevel)
	if *traceFile != "" {
		if err := tracing.Init("osim", "1.0", *traceFile); err != nil {
			logger.Error("failed to initialise tracing", log.ErrAttr(err))
			os.Exit(1)
		}
	}

	app := &cli{
		menu:   menu.New(os.Stdin, os.Stdout),
		logger: logger,
	}
	app.run()
}

type cli struct {
	menu   *menu.Menu
	logger *slog.Logger
}

func (c *cli) run() {
	fmt.Println(render.Header("OS Scheduling & Memory Simulator"))
	c.menu.Add("Run predefined process set", c.runPredefined)
	c.menu.Add("Run custom process set", c.runCustom)
	c.menu.Add("Load process set from file", c.runFromFile)
	c.menu.Add("About the simulator", c.about)
	c.menu.Add("Exit", c.menu.Stop)
	c.menu.Run()
}

// predefinedProcesses returns the built-in reference workload.
func predefinedProcesses() []*process.Process {
	return []*process.Process{
		process.New(1, 0, 8, 100, 2),
		process.New(2, 1, 4, 200, 1),
		process.New(3, 2, 9, 150, 3),
		process.New(4, 3, 5, 250, 2),
		process.New(5, 4, 3, 100, 1),
	}
}

func (c *cli) runPredefined() {
	c.simulate(predefinedProcesses())
}

func (c *cli) runCustom() {
	count, ok := c.menu.PromptInt("Number of processes: ")
	if !ok || count < 1 {
		fmt.Println("Nothing to simulate.")
		return
	}
	var processes []*process.Process
	for i := 1; i <= count; i++ {
		fmt.Printf("Process %d\n", i)
		arrival, ok := c.menu.PromptIntDefault("  arrival time [0]: ", 0)
		if !ok {
			return
		}
		burst, ok := c.menu.PromptInt("  burst time: ")
		if !ok {
			return
		}
		mem, ok := c.menu.PromptInt("  memory (MB): ")
		if !ok {
			return
		}
		priority, ok := c.menu.PromptIntDefault("  priority [0]: ", 0)
		if !ok {
			return
		}
		processes = append(processes, process.New(i, arrival, burst, mem, priority))
	}
	c.simulate(processes)
}

func (c *cli) runFromFile() {
	location, ok := c.menu.PromptLine("Process set file (.yaml or .txt): ")
	if !ok || location == "" {
		return
	}
	processes, err := loader.New().Load(context.Background(), location)
	if err != nil {
		fmt.Printf("Failed to load %v: %v\n", location, err)
		return
	}
	fmt.Printf("Loaded %d processes.\n", len(processes))
	c.simulate(processes)
}

// simulate asks for the run settings, executes the run and renders the
// report.
func (c *cli) simulate(processes []*process.Process) {
	options, ok := c.promptOptions()
	if !ok {
		return
	}
	service, err := osim.New(options...)
	if err != nil {
		fmt.Printf("Invalid settings: %v\n", err)
		return
	}

	report, err := service.Run(context.Background(), processes)
	if err != nil {
		c.logger.Error("simulation failed", log.ErrAttr(err))
		fmt.Printf("Simulation failed: %v\n", err)
		return
	}
	c.render(report)
}

func (c *cli) promptOptions() ([]osim.Option, bool) {
	policies := policy.Policies()
	labels := make([]string, len(policies))
	for i, p := range policies {
		labels[i] = string(p)
	}
	fmt.Println("Scheduling policy:")
	choice, ok := c.menu.Select("Select policy: ", labels)
	if !ok {
		return nil, false
	}
	options := []osim.Option{osim.WithPolicy(policies[choice])}

	if policies[choice] == policy.RoundRobin {
		quantum, ok := c.menu.PromptIntDefault("Time quantum [2]: ", 2)
		if !ok {
			return nil, false
		}
		options = append(options, osim.WithTimeQuantum(quantum))
	}

	strategies := policy.Strategies()
	labels = make([]string, len(strategies))
	for i, s := range strategies {
		labels[i] = string(s)
	}
	fmt.Println("Allocation strategy:")
	choice, ok = c.menu.Select("Select strategy: ", labels)
	if !ok {
		return nil, false
	}
	options = append(options, osim.WithStrategy(strategies[choice]))

	totalMemory, ok := c.menu.PromptIntDefault("Total memory MB [1024]: ", 1024)
	if !ok {
		return nil, false
	}
	options = append(options, osim.WithTotalMemory(totalMemory))
	return options, true
}

func (c *cli) render(report *osim.Report) {
	fmt.Println(render.Header(fmt.Sprintf("%s simulation %s", report.Policy, report.RunID)))

	if len(report.Unallocated) > 0 {
		fmt.Printf("Rejected for lack of memory:")
		for _, p := range report.Unallocated {
			fmt.Printf(" P%d(%dMB)", p.PID, p.MemoryRequired)
		}
		fmt.Println()
	}

	fmt.Println(render.Header("Memory map during run"))
	fmt.Println(render.MemoryMap(report.Blocks))

	fmt.Println(render.Header("Gantt chart"))
	fmt.Println(render.GanttChart(report.Gantt))

	fmt.Println(render.Header("Processes"))
	fmt.Println(render.ProcessTable(report.Completed))

	fmt.Println(render.Header("Metrics"))
	fmt.Println(render.Summary(report.Summary, report.MemoryUtilization, report.Fragmentation))

	fmt.Println(render.Header("Memory map after release"))
	fmt.Println(render.MemoryMap(report.FinalBlocks))
}

func (c *cli) about() {
	fmt.Println(render.Header("About"))
	fmt.Println(`Simulates a single CPU and a contiguous memory pool with a
deterministic logical clock.

Scheduling policies:
  FCFS      first come first served, non-preemptive
  SJF       shortest job first, non-preemptive
  Priority  lowest priority value first, non-preemptive
  RR        round robin with a configurable time quantum

Allocation strategies:
  First-Fit  first free block large enough
  Best-Fit   smallest free block large enough
  Worst-Fit  largest free block

Process files are YAML documents or whitespace separated text lines
(arrival burst memory priority), see the examples directory.`)
}
