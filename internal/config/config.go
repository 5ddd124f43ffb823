// Package config loads the daemon configuration from a TOML file.
//
// Example:
//
//	[display]
//	grid = [1, 2, 3, 4]
//	segment_mapping = [1, 2, 3, 4, 5, 6, 7]
//
//	[spi]
//	port = "SPI0.0"
//	stb = ""
//
//	[api]
//	listen = ":8628"
//
//	[logging]
//	level = "info"
//	format = "text"
//
//	[[leds]]
//	name = "power"
//	grid = 1
//	segment = 8
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/flavioheleno/tm1628"
	"github.com/flavioheleno/tm1628/internal/logging"
)

// Display describes how the board is wired to the controller.
type Display struct {
	// Grid assigns a 1-based grid line to each digit, leftmost first.
	Grid []int `toml:"grid"`
	// SegmentMapping assigns a 1-based output line to each of the seven
	// logical segments a..g. Omitted means straight-through wiring.
	SegmentMapping []int `toml:"segment_mapping"`
}

// SPI names the bus the controller hangs off.
type SPI struct {
	Port string `toml:"port"`
	// STB optionally names a GPIO pin driving the strobe line manually,
	// for boards not wired to the bus chip select.
	STB string `toml:"stb"`
}

// API configures the HTTP endpoint.
type API struct {
	Listen string `toml:"listen"`
}

// LED names an indicator and the grid/segment pair it is wired to.
type LED struct {
	Name    string `toml:"name"`
	Grid    int    `toml:"grid"`
	Segment int    `toml:"segment"`
}

// Config is the full daemon configuration.
type Config struct {
	Display Display        `toml:"display"`
	SPI     SPI            `toml:"spi"`
	API     API            `toml:"api"`
	Logging logging.Config `toml:"logging"`
	LEDs    []LED          `toml:"leds"`
}

// Default returns the configuration used when no file is given: a 4-digit
// board with straight-through wiring on the default SPI bus.
func Default() Config {
	return Config{
		Display: Display{
			Grid:           []int{1, 2, 3, 4},
			SegmentMapping: []int{1, 2, 3, 4, 5, 6, 7},
		},
		API: API{Listen: ":8628"},
		Logging: logging.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a TOML configuration file on top of the defaults. An empty path
// returns the defaults untouched. A broken display section is fatal here;
// broken indicator entries are left for ValidLEDs to skip.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse TOML config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Display.Grid) == 0 || len(c.Display.Grid) > tm1628.MaxGridSize {
		return fmt.Errorf("config: display.grid has %d entries, want 1 to %d", len(c.Display.Grid), tm1628.MaxGridSize)
	}
	for i, g := range c.Display.Grid {
		if g < 1 || g > len(c.Display.Grid) {
			return fmt.Errorf("config: display.grid[%d] = %d out of range [1, %d]", i, g, len(c.Display.Grid))
		}
	}

	if c.Display.SegmentMapping == nil {
		c.Display.SegmentMapping = []int{1, 2, 3, 4, 5, 6, 7}
	}
	if len(c.Display.SegmentMapping) != 7 {
		return fmt.Errorf("config: display.segment_mapping has %d entries, want 7", len(c.Display.SegmentMapping))
	}
	for i, s := range c.Display.SegmentMapping {
		if s < 1 || s > tm1628.MaxSegments {
			return fmt.Errorf("config: display.segment_mapping[%d] = %d out of range [1, %d]", i, s, tm1628.MaxSegments)
		}
	}
	return nil
}

// DisplayOpts converts the display section into driver options.
func (c Config) DisplayOpts() *tm1628.Opts {
	opts := &tm1628.Opts{
		Grid: append([]int(nil), c.Display.Grid...),
	}
	copy(opts.SegmentMapping[:], c.Display.SegmentMapping)
	return opts
}

// ValidLEDs filters the configured indicators down to the ones that point at
// a real grid/segment pair. Invalid entries are logged and skipped so a typo
// in one indicator does not take the whole daemon down.
func (c Config) ValidLEDs(logger logging.Logger) []LED {
	var leds []LED
	seen := make(map[string]bool)
	for _, led := range c.LEDs {
		switch {
		case led.Name == "":
			logger.Warn("Skipping indicator without a name", "grid", led.Grid, "segment", led.Segment)
		case seen[led.Name]:
			logger.Warn("Skipping indicator with duplicate name", "name", led.Name)
		case led.Grid < 1 || led.Grid > len(c.Display.Grid):
			logger.Warn("Skipping indicator with bad grid", "name", led.Name, "grid", led.Grid)
		case led.Segment < 1 || led.Segment > tm1628.MaxSegments:
			logger.Warn("Skipping indicator with bad segment", "name", led.Name, "segment", led.Segment)
		default:
			seen[led.Name] = true
			leds = append(leds, led)
		}
	}
	return leds
}
