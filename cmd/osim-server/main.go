// Command osim-server exposes the simulator over HTTP.  Settings come from
// an optional osim-server.yaml in the working directory; every value has a
// default so the server also starts without one.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	"github.com/osimkit/osim"
	"github.com/osimkit/osim/api"
	"github.com/osimkit/osim/internal/log"
	"github.com/osimkit/osim/policy"
	"github.com/osimkit/osim/tracing"
)

type serverConfig struct {
	Port      int
	LogLevel  string
	TraceFile string
	Defaults  *osim.Config
}

func loadConfig() (*serverConfig, error) {
	viper.SetConfigName("osim-server")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")

	viper.SetDefault("port", 9095)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("trace.file", "")
	viper.SetDefault("scheduler.policy", string(policy.FCFS))
	viper.SetDefault("scheduler.time_quantum", 2)
	viper.SetDefault("memory.total", 1024)
	viper.SetDefault("memory.strategy", string(policy.FirstFit))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	defaults := osim.DefaultConfig()
	p, err := policy.ParsePolicy(viper.GetString("scheduler.policy"))
	if err != nil {
		return nil, err
	}
	s, err := policy.ParseStrategy(viper.GetString("memory.strategy"))
	if err != nil {
		return nil, err
	}
	defaults.Scheduler.Policy = p
	defaults.Scheduler.TimeQuantum = viper.GetInt("scheduler.time_quantum")
	defaults.Memory.TotalMemory = viper.GetInt("memory.total")
	defaults.Memory.Strategy = s
	if err := defaults.Validate(); err != nil {
		return nil, err
	}

	return &serverConfig{
		Port:      viper.GetInt("port"),
		LogLevel:  viper.GetString("log.level"),
		TraceFile: viper.GetString("trace.file"),
		Defaults:  defaults,
	}, nil
}

func main() {
	config, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := log.BuildLogger(config.LogLevel)
	if config.TraceFile != "" {
		if err := tracing.Init("osim-server", "1.0", config.TraceFile); err != nil {
			logger.Error("failed to initialise tracing", log.ErrAttr(err))
			os.Exit(1)
		}
	}

	app := fiber.New(fiber.Config{AppName: "osim-server"})
	api.NewHandler(config.Defaults, logger).Register(app)

	logger.Info("listening",
		"port", config.Port,
		"policy", config.Defaults.Scheduler.Policy,
		"strategy", config.Defaults.Memory.Strategy)
	if err := app.Listen(fmt.Sprintf(":%d", config.Port)); err != nil {
		logger.Error("server stopped", log.ErrAttr(err))
		os.Exit(1)
	}
}
