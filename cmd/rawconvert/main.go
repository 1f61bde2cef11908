package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saransh1220/rawconvert/internal/gateway"
	"github.com/saransh1220/rawconvert/internal/modules/conversion"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/application"
	conversion_http "github.com/saransh1220/rawconvert/internal/modules/conversion/interfaces/http"
	"github.com/saransh1220/rawconvert/internal/shared/infrastructure/config"
	"github.com/saransh1220/rawconvert/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("rawconvert failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "rawconvert",
		Usage: "Develop the bucket's raw file to JPEG outside of Lambda",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "dotenv file loaded before reading the environment",
				Value:   ".env",
				EnvVars: []string{"ENV_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "zerolog level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "invoke",
				Usage:  "Run one download, convert, upload round trip and print the converter output",
				Action: invoke,
			},
			{
				Name:   "serve",
				Usage:  "Serve POST /invoke, /health and /metrics over HTTP",
				Action: serve,
			},
		},
	}
}

func loadModule(c *cli.Context) (config.Config, *conversion.Module, error) {
	cfg := config.Load(c.String("env-file"))
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	logger.SetLevel(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	module, err := conversion.NewModule(c.Context, cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, module, nil
}

func invoke(c *cli.Context) error {
	_, module, err := loadModule(c)
	if err != nil {
		return err
	}

	out, err := module.Service().Run(application.WithInvocationID(c.Context, "cli"))
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, out)
	return nil
}

func serve(c *cli.Context) error {
	cfg, module, err := loadModule(c)
	if err != nil {
		return err
	}

	routes := gateway.SetupRoutes(gateway.RouterConfig{
		ConversionHandler: conversion_http.NewConversionHandler(module.Service()),
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return gateway.NewServer(cfg.Server.Port, routes).Start(ctx)
}

