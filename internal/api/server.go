// Package api exposes the display over HTTP using Huma v2.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/flavioheleno/tm1628/internal/config"
	"github.com/flavioheleno/tm1628/internal/logging"
)

// Display is the slice of the driver the handlers need.
// Satisfied by *tm1628.Dev.
type Display interface {
	Text() string
	SetText(text string) error
	SetLED(grid, segment int, on bool) error
	LED(grid, segment int) (bool, error)
	Digits() int
}

// Options represents the API server options.
type Options struct {
	Display Display
	// LEDs are the named indicators from the configuration, already
	// validated against the display wiring.
	LEDs []config.LED
	// PrometheusHandler optionally serves GET /metrics.
	PrometheusHandler http.Handler
}

// Server represents the Huma v2 API server.
type Server struct {
	api        huma.API
	mux        *http.ServeMux
	httpServer *http.Server
	display    Display
	leds       []config.LED
	ledIndex   map[string]config.LED
	logger     *slog.Logger
}

// NewServer creates a new API server with Huma v2 using Go 1.22+ native routing.
func NewServer(opts *Options) *Server {
	mux := http.NewServeMux()

	cfg := huma.DefaultConfig("TM1628 Display API", "1.0.0")
	cfg.Info.Description = "Text and indicator control for a TM1628 7-segment display"
	// Empty servers list makes OpenAPI use relative paths, working with any host
	cfg.Servers = []*huma.Server{}

	api := humago.New(mux, cfg)

	server := &Server{
		api:      api,
		mux:      mux,
		display:  opts.Display,
		leds:     opts.LEDs,
		ledIndex: make(map[string]config.LED, len(opts.LEDs)),
		logger:   logging.GetLogger("api"),
	}
	for _, led := range opts.LEDs {
		server.ledIndex[led.Name] = led
	}

	api.UseMiddleware(HTTPLoggingMiddleware)

	if opts.PrometheusHandler != nil {
		mux.Handle("GET /metrics", opts.PrometheusHandler)
	}

	server.registerRoutes()

	return server
}

// Start starts the HTTP server on the specified address. It blocks until the
// server stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting display API server", "addr", addr)
	s.logger.Info("OpenAPI documentation available", "url", "http://"+addr+"/docs")

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	return s.httpServer.ListenAndServe()
}

// Stop shuts down the server without waiting for open connections.
func (s *Server) Stop() error {
	s.logger.Info("Stopping API server")
	if s.httpServer != nil {
		return s.httpServer.Close()
	}
	return nil
}

// HealthResponse reports API health.
type HealthResponse struct {
	Body struct {
		Status string `json:"status" example:"ok" doc:"Health status"`
		Digits int    `json:"digits" example:"4" doc:"Number of digits on the display"`
	}
}

// registerRoutes sets up all API endpoints.
func (s *Server) registerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health",
		Description: "Check API health status",
		Tags:        []string{"health"},
	}, func(ctx context.Context, input *struct{}) (*HealthResponse, error) {
		resp := &HealthResponse{}
		resp.Body.Status = "ok"
		resp.Body.Digits = s.display.Digits()
		return resp, nil
	})

	s.registerTextRoutes()
	s.registerLEDRoutes()
}
