package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flavioheleno/tm1628/internal/config"
	"github.com/flavioheleno/tm1628/internal/logging"
)

// validateCmd represents the validate command. It checks a configuration
// file without opening the SPI bus.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long:  `Parses the configuration file, checks the display wiring and reports indicators that would be skipped, without touching the hardware.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
			os.Exit(1)
		}

		logging.Initialize(cfg.Logging)
		leds := cfg.ValidLEDs(logging.GetLogger("config"))

		fmt.Printf("configuration ok: %d digits, %d indicators\n", len(cfg.Display.Grid), len(leds))
		if skipped := len(cfg.LEDs) - len(leds); skipped > 0 {
			fmt.Fprintf(os.Stderr, "%d indicator(s) would be skipped\n", skipped)
			os.Exit(1)
		}
	},
}

func init() {
	validateCmd.Flags().StringP("config", "c", "", "Path to configuration file")
}
