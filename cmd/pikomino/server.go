package main

import (
	"github.com/coder/quartz"

	"github.com/mtruel/pikomino/cmd/pikomino/shared"
	"github.com/mtruel/pikomino/internal/server"
)

type ServerCmd struct {
	Config  string `default:"pikomino.hcl" help:"HCL configuration file"`
	Verbose bool   `help:"Verbose logging"`
}

func (c *ServerCmd) Run() error {
	config, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := shared.SetupLogger(c.Verbose || config.Server.LogLevel == "debug")
	events := shared.SetupEventLogger(config.Server.LogFormat, c.Verbose)

	srv := server.NewServer(config, logger, events, quartz.NewReal())
	return srv.Start()
}
