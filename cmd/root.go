package main

import (
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
)

// cli holds the state shared by the subcommands.
type cli struct {
	cfgFile   string
	addr      string
	logLevel  string
	logFormat string
	events    string
	regions   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "podium",
		Short:         "Summer Games medal and participation analytics",
		Long:          `podium loads the historical athlete_events and noc_regions datasets and answers medal tally, country, athlete and participation queries over HTTP or from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&c.cfgFile, "config", "", "config file (default is $"+config.EnvConfigFile+")")
	f.StringVar(&c.addr, "addr", "", "HTTP listen address (overrides config)")
	f.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	f.StringVar(&c.logFormat, "log-format", "", "log format: text or json (overrides config)")
	f.StringVar(&c.events, "events", "", "athlete_events.csv path (overrides config)")
	f.StringVar(&c.regions, "regions", "", "noc_regions.csv path (overrides config)")

	root.AddCommand(c.serveCmd(), c.queryCmd(), c.probeCmd())
	return root
}

// load layers flags over the file and environment configuration and
// initialises logging.
func (c *cli) load(cmd *cobra.Command) error {
	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("addr") {
		cfg.Addr = c.addr
	}
	if f.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = c.logFormat
	}
	if f.Changed("events") {
		cfg.EventsPath = c.events
	}
	if f.Changed("regions") {
		cfg.RegionsPath = c.regions
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Init(
		logger.WithFormat(cfg.LogFormat),
		logger.WithLevel(cfg.LogLevel),
		logger.WithOutput(cmd.ErrOrStderr()),
	); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	c.cfg = cfg
	return nil
}

// newService builds the analytics service from the loaded configuration.
func (c *cli) newService() *service.Service {
	return service.New(
		service.WithLogger(logger.Get()),
		service.WithEventsPath(c.cfg.EventsPath),
		service.WithRegionsPath(c.cfg.RegionsPath),
		service.WithSeason(model.Season(c.cfg.Season)),
		service.WithNOCAliases(c.cfg.NOCAliases),
		service.WithTopAthletes(c.cfg.TopAthletes),
		service.WithTopCountryAthletes(c.cfg.TopCountryAthletes),
		service.WithMaxLimit(c.cfg.MaxLimit),
		service.WithAgeSports(c.cfg.AgeSports),
	)
}
