// Command tm1628d exposes a TM1628 7-segment display over HTTP.
//
// The daemon opens the SPI bus, initializes the display and serves text and
// indicator endpoints plus Prometheus metrics. Wiring, indicators and the
// listen address come from a TOML configuration file; a handful of flags
// override the common settings.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/flavioheleno/tm1628"
	"github.com/flavioheleno/tm1628/internal/api"
	"github.com/flavioheleno/tm1628/internal/config"
	"github.com/flavioheleno/tm1628/internal/logging"
	"github.com/flavioheleno/tm1628/internal/metrics"
)

// Options for the CLI. The configuration file carries the full setup; flags
// override the settings worth changing from the command line.
type Options struct {
	Config    string `help:"Path to configuration file" short:"c"`
	Listen    string `help:"HTTP listen address (overrides the config file)" short:"l"`
	SpiPort   string `help:"SPI port name (overrides the config file)"`
	LogLevel  string `help:"Global logging level: debug, info, warn, error (overrides the config file)"`
	LogFormat string `help:"Logging format: text, json (overrides the config file)"`
	Metrics   bool   `help:"Serve Prometheus metrics on /metrics" default:"true"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		cfg, err := config.Load(opts.Config)
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}
		if opts.Listen != "" {
			cfg.API.Listen = opts.Listen
		}
		if opts.SpiPort != "" {
			cfg.SPI.Port = opts.SpiPort
		}
		if opts.LogLevel != "" {
			cfg.Logging.Level = opts.LogLevel
		}
		if opts.LogFormat != "" {
			cfg.Logging.Format = opts.LogFormat
		}

		logging.Initialize(cfg.Logging)
		logger := logging.GetLogger("main")

		if _, err := host.Init(); err != nil {
			logger.Error("Failed to initialize periph.io", "error", err)
			os.Exit(1)
		}

		port, err := spireg.Open(cfg.SPI.Port)
		if err != nil {
			logger.Error("Failed to open SPI bus", "port", cfg.SPI.Port, "error", err)
			os.Exit(1)
		}

		var counted spi.PortCloser = port
		if opts.Metrics {
			counted = metrics.WrapPort(port)
		}

		displayOpts := cfg.DisplayOpts()
		if cfg.SPI.STB != "" {
			pin := gpioreg.ByName(cfg.SPI.STB)
			if pin == nil {
				logger.Error("Strobe pin not found", "pin", cfg.SPI.STB)
				os.Exit(1)
			}
			displayOpts.STB = pin
		}

		dev, err := tm1628.NewSPI(counted, displayOpts)
		if err != nil {
			logger.Error("Failed to initialize display", "error", err)
			os.Exit(1)
		}

		leds := cfg.ValidLEDs(logging.GetLogger("config"))
		logger.Info("Display ready",
			"digits", dev.Digits(),
			"indicators", len(leds),
			"spi", cfg.SPI.Port,
		)

		apiOpts := &api.Options{
			Display: dev,
			LEDs:    leds,
		}
		if opts.Metrics {
			apiOpts.PrometheusHandler = metrics.HTTPHandler()
		}
		server := api.NewServer(apiOpts)

		hooks.OnStart(func() {
			if err := server.Start(cfg.API.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", err)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down")
			if err := server.Stop(); err != nil {
				logger.Error("Error stopping HTTP server", "error", err)
			}
			// Blank the display before the bus goes away.
			if err := dev.Halt(); err != nil {
				logger.Error("Error halting display", "error", err)
			}
			if err := port.Close(); err != nil {
				logger.Error("Error closing SPI bus", "error", err)
			}
		})
	})

	cli.Root().Use = "tm1628d"
	cli.Root().AddCommand(validateCmd)

	cli.Run()
}
