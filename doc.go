// Package tm1628 controls a Titan Micro TM1628 LED display controller via SPI.
//
// The TM1628 multiplexes up to 7 grids of 16 segments and is the chip behind
// most set-top-box front panels: a few 7-segment digits plus standalone
// indicator LEDs (power, colon, wifi, play). Close siblings such as the
// FD628 answer the same command set.
//
// # Display Characteristics
//
// - up to 7 grid words of 16 segment bits each
// - fixed 6-grid/12-segment multiplexing mode (the 7x11 mode is not selected)
// - driven at the maximum duty cycle; no intermediate brightness levels
// - text rendering via the 7-segment encoding in the seg7 subpackage
// - per-board segment remapping, so arbitrary wiring orders are supported
//
// # Hardware Connection
//
// Connect the TM1628 to your system via SPI. The chip speaks a half-duplex
// 3-wire protocol, LSB first, at up to 500kHz:
//
//	Chip Pin → System Pin
//	GND      → GND
//	VDD      → 5V
//	CLK      → SPI Clock (SCLK)
//	DIO      → SPI Data (MOSI)
//	STB      → SPI Chip Select (or any GPIO, see Opts.STB)
//
// # Board Wiring Configuration
//
// Boards route the chip's outputs to their digits and LEDs in arbitrary
// order, so the driver needs two wiring tables. Opts.Grid lists, per digit of
// the readout (left to right), which grid word drives it. Opts.SegmentMapping
// lists, per logical segment a..g, the 1-based bit position wired to it.
// Both usually come straight from the board's device tree.
//
// # Basic Usage
//
// Example of creating the device and writing text:
//
//	package main
//
//	import (
//		"github.com/flavioheleno/tm1628"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		p, _ := spireg.Open("")
//
//		// Create device for a 4-digit panel with straight-through wiring
//		dev, _ := tm1628.NewSPI(p, &tm1628.Opts{
//			Grid:           []int{1, 2, 3, 4},
//			SegmentMapping: [7]int{1, 2, 3, 4, 5, 6, 7},
//		})
//		defer dev.Halt()
//
//		// Show something
//		dev.SetText("1234")
//	}
//
// # Indicator LEDs
//
// Standalone LEDs hang off spare (grid, segment) outputs, often on a grid
// that has no digit. They are addressed directly by that pair:
//
//	// colon LED wired to grid 5, segment 1
//	dev.SetLED(5, 1, true)
//
//	on, _ := dev.LED(5, 1)
//
// SetLED flushes only the word holding the bit; SetText always rewrites the
// whole digit range.
//
// # Using a GPIO Strobe Pin (Optional)
//
// If the board wires STB to a plain GPIO instead of the SPI chip select,
// hand the pin to the driver and it frames each transaction itself:
//
//	stb := gpioreg.ByName("GPIO24")
//
//	dev, _ := tm1628.NewSPI(p, &tm1628.Opts{
//		Grid:           []int{1, 2, 3, 4},
//		SegmentMapping: [7]int{1, 2, 3, 4, 5, 6, 7},
//		STB:            stb,
//	})
//
// # Concurrency
//
// All methods are safe for concurrent use. One mutex serializes every
// mutation together with its bus flush, so callers never observe a torn
// word. Calls block for the duration of the transfer; there is no queueing
// and no retry.
//
// # Startup and Shutdown
//
// NewSPI waits the 200ms power-up settle time, clears the display memory,
// selects the multiplexing mode and switches the display on. A transport
// failure during the clear aborts construction: a bus that fails its first
// transfer is treated as broken, not busy. Halt switches the display off and
// rejects all further writes.
//
// # Datasheet
//
// https://www.titanmec.com/index.php/en/project/download/id/302.html
//
// # Compatibility with periph.io
//
// Dev implements the conn.Resource interface from periph.io and follows the
// periph device-driver conventions; any spi.Port (hardware or test fake)
// can back it.
package tm1628
