// Package logging provides structured logging with per-module log level configuration.
//
// # Overview
//
// The logging system uses Go's slog package with automatic output routing:
//   - Logs to systemd journal when available (Linux systems with journald)
//   - Logs to stdout when a terminal, pipe, or file is connected
//   - Logs to both when both are available
//
// # Usage
//
// Initialize the logging system once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",      // Global log level: debug, info, warn, error
//		Format: "text",      // Output format: text or json
//		Modules: map[string]string{
//			"display": "debug",  // Per-module overrides
//			"api":     "warn",
//		},
//	})
//
// Get a logger for your module:
//
//	logger := logging.GetLogger("display")
//	logger.Info("Display ready", "digits", 4)
//
// # Viewing Logs
//
// When running as a systemd service or on a system with journald:
//
//	journalctl -t tm1628d              # All daemon logs
//	journalctl -t tm1628d -f           # Follow live
//	journalctl -t tm1628d -p err       # Errors only
//
// Filter by structured fields:
//
//	journalctl -t tm1628d MODULE=display
//
// # Configuration
//
// Log levels can be set globally or per-module. Module-specific levels
// override the global level for that module only.
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//
//	[logging.modules]
//	display = "debug"
//	api = "warn"
package logging
