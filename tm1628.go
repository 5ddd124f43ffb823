// Package tm1628 controls a Titan Micro TM1628 LED display controller via SPI.
//
// The TM1628 drives up to 7 grids of 16 segments each, typically the 7-segment
// front panel of a set-top box, plus a few standalone indicator LEDs.
//
// See the examples for how to use this package.
package tm1628

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flavioheleno/tm1628/seg7"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Display memory geometry of the chip.
const (
	// MaxGridSize is the number of addressable grid words.
	MaxGridSize = 7
	// MaxSegments is the number of segment outputs per grid word.
	MaxSegments = 16
)

// Command bytes. Every transaction starts with one command byte whose two
// high bits select the command type.
const (
	cmdDisplayMode = 0x00 // 00 xxxxxx
	cmdData        = 0x40 // 01 xxxxxx
	cmdDisplayCtrl = 0x80 // 10 xxxxxx
	cmdSetAddress  = 0xC0 // 11 xxxxxx

	// Display mode settings (low two bits of cmdDisplayMode).
	displayMode6x12 = 0x02 // 6 grids, 12 segments
	displayMode7x11 = 0x03 // 7 grids, 11 segments

	// Data command settings.
	dataTestMode  = 1 << 3 // test mode (normal mode when clear)
	dataFixedAddr = 1 << 2 // fixed address (auto-increment when clear)
	dataWrite     = 0x00   // write display data
	dataRead      = 0x02   // read key scan data

	// Display control settings (low three bits are the duty cycle).
	displayCtrlOn = 1 << 3
	brightnessMax = 7
)

// Errors returned by display operations.
var (
	// ErrRange reports a word write that falls outside display memory.
	ErrRange = errors.New("tm1628: display memory range exceeded")
	// ErrTextTooLong reports text input beyond the digit capacity.
	ErrTextTooLong = errors.New("tm1628: text exceeds display capacity")
)

var errHalted = errors.New("tm1628: halted")

// settleDelay is the power-up settle time the datasheet requires before the
// first bus transaction.
var settleDelay = 200 * time.Millisecond

// Opts describes how the display board is wired to the chip.
type Opts struct {
	// Grid assigns a physical grid (a 1-based chip memory word) to each
	// logical digit position. Its length is the number of digits shown.
	// Values may repeat; positions sharing a grid alias the same digit.
	Grid []int

	// SegmentMapping gives the physical segment output (1-based bit
	// position within a grid word) wired to each of the seven logical
	// segments a through g.
	SegmentMapping [7]int

	// Optional strobe pin. Most boards drive STB from the SPI chip
	// select; when it is wired to a plain GPIO instead, set STB and the
	// driver frames each transaction itself, opening the port with
	// spi.NoCS.
	STB gpio.PinOut
}

// Dev is the device handle for a TM1628 display.
type Dev struct {
	// Communication
	c   conn.Conn
	stb gpio.PinOut // nil when the port's chip select does the framing

	// Board wiring, frozen at construction
	grid     []int
	segments [7]int

	// Display memory mirror
	mu     sync.Mutex
	words  [MaxGridSize]uint16
	text   string
	halted bool
}

// NewSPI creates a TM1628 device connected via SPI.
//
// The port is configured for 500kHz, Mode0, LSB-first 8-bit transfers on the
// chip's half-duplex 3-wire bus. opts can be nil to drive all seven grids in
// order with the identity segment mapping.
//
// Construction waits out the chip's power-up settle time, clears the display
// memory, selects the 6-grid/12-segment mode and switches the output on at
// full brightness.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{
			Grid:           []int{1, 2, 3, 4, 5, 6, 7},
			SegmentMapping: [7]int{1, 2, 3, 4, 5, 6, 7},
		}
	}

	if len(opts.Grid) < 1 || len(opts.Grid) > MaxGridSize {
		return nil, fmt.Errorf("tm1628: grid size %d out of range [1, %d]", len(opts.Grid), MaxGridSize)
	}
	for i, g := range opts.Grid {
		if g < 1 || g > len(opts.Grid) {
			return nil, fmt.Errorf("tm1628: grid[%d] = %d out of range [1, %d]", i, g, len(opts.Grid))
		}
	}
	for i, s := range opts.SegmentMapping {
		if s < 1 || s > MaxSegments {
			return nil, fmt.Errorf("tm1628: segment mapping[%d] = %d out of range [1, %d]", i, s, MaxSegments)
		}
	}

	mode := spi.Mode0 | spi.HalfDuplex | spi.LSBFirst
	if opts.STB != nil {
		mode |= spi.NoCS
	}
	c, err := p.Connect(500*physic.KiloHertz, mode, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:        c,
		stb:      opts.STB,
		grid:     append([]int(nil), opts.Grid...),
		segments: opts.SegmentMapping,
	}

	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

// init powers the display up: settle, clear the display memory, select the
// multiplexing mode and switch the output on.
func (d *Dev) init() error {
	time.Sleep(settleDelay)

	if err := d.writeData(0, MaxGridSize); err != nil {
		return err
	}

	// Transfers after a successful clear are assumed to go through.
	_ = d.setDisplayMode(displayMode6x12)
	_ = d.setDisplayControl(true)

	return nil
}

// setDisplayMode selects the grid/segment multiplexing layout.
func (d *Dev) setDisplayMode(mode byte) error {
	return d.sendCommand(cmdDisplayMode | mode)
}

// setDisplayControl switches the output on or off. The duty cycle is always
// the maximum; the chip's intermediate brightness levels are not used.
func (d *Dev) setDisplayControl(on bool) error {
	cmd := byte(cmdDisplayCtrl | brightnessMax)
	if on {
		cmd |= displayCtrlOn
	}
	return d.sendCommand(cmd)
}

// setAddress selects the display memory address the next data burst starts
// at. Word addressing, 2 bytes per grid. Only writeData issues it.
func (d *Dev) setAddress(offset int) error {
	return d.sendCommand(cmdSetAddress | byte(offset*2))
}

// writeData pushes words[offset:offset+n] of the mirror into display memory:
// an address select, then a single burst carrying the write command and the
// words in little-endian order.
func (d *Dev) writeData(offset, n int) error {
	if offset+n > MaxGridSize {
		return ErrRange
	}

	if err := d.setAddress(offset); err != nil {
		return err
	}

	buf := make([]byte, 1+2*n)
	buf[0] = cmdData | dataWrite
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[1+2*i:], d.words[offset+i])
	}

	return d.tx(buf)
}

// sendCommand issues a single-byte command transaction.
func (d *Dev) sendCommand(cmd byte) error {
	return d.tx([]byte{cmd})
}

// tx runs one bus transaction, framed by the strobe pin when one is
// configured. Transport errors are returned as-is.
func (d *Dev) tx(w []byte) error {
	if d.stb != nil {
		if err := d.stb.Out(gpio.Low); err != nil {
			return fmt.Errorf("tm1628: failed to pull STB low: %w", err)
		}
	}
	err := d.c.Tx(w, nil)
	if d.stb != nil {
		if err2 := d.stb.Out(gpio.High); err == nil && err2 != nil {
			err = fmt.Errorf("tm1628: failed to release STB: %w", err2)
		}
	}
	return err
}

// SetText replaces the display text and renders it.
//
// Up to one byte more than the digit count is accepted so that a trailing
// newline from line-oriented callers still fits; longer input fails with
// ErrTextTooLong before anything changes. The stored text stops at the first
// non-printable byte. Characters without a 7-segment glyph show as blank
// digits.
//
// The mirror is flushed to the chip as part of the call; if the flush fails
// the mirror keeps the new text and runs ahead of the chip.
func (d *Dev) SetText(text string) error {
	if len(text) > len(d.grid)+1 {
		return ErrTextTooLong
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}

	end := 0
	for end < len(text) && text[end] >= ' ' && text[end] <= '~' {
		end++
	}
	d.text = text[:end]

	return d.refresh()
}

// Text returns the currently displayed text.
func (d *Dev) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// refresh renders the stored text into the mirror and flushes all digits in
// one burst, whether or not they changed.
func (d *Dev) refresh() error {
	for i, g := range d.grid {
		var w uint16
		if i < len(d.text) {
			w = d.remap(seg7.Char(d.text[i]))
		}
		d.words[g-1] = w
	}

	return d.writeData(0, len(d.grid))
}

// remap translates a logical segment code into the word bits of this board's
// wiring.
func (d *Dev) remap(code seg7.Code) uint16 {
	var w uint16
	for j := 0; j < 7; j++ {
		if code&(1<<j) != 0 {
			w |= 1 << (d.segments[j] - 1)
		}
	}
	return w
}

// SetLED switches a single indicator segment on or off, flushing only the
// word that holds it. grid and segment are the 1-based pair the indicator is
// wired to.
//
// If the flush fails the mirror keeps the new bit and runs ahead of the chip.
func (d *Dev) SetLED(grid, segment int, on bool) error {
	if err := d.checkLED(grid, segment); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}

	bit := uint16(1) << (segment - 1)
	if on {
		d.words[grid-1] |= bit
	} else {
		d.words[grid-1] &^= bit
	}

	return d.writeData(grid-1, 1)
}

// LED reports whether an indicator segment is set. It reads the mirror and
// performs no bus I/O; the mirror can disagree with the chip only after a
// failed flush.
func (d *Dev) LED(grid, segment int) (bool, error) {
	if err := d.checkLED(grid, segment); err != nil {
		return false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.words[grid-1]&(1<<(segment-1)) != 0, nil
}

func (d *Dev) checkLED(grid, segment int) error {
	if grid < 1 || grid > len(d.grid) {
		return fmt.Errorf("tm1628: grid %d out of range [1, %d]", grid, len(d.grid))
	}
	if segment < 1 || segment > MaxSegments {
		return fmt.Errorf("tm1628: segment %d out of range [1, %d]", segment, MaxSegments)
	}
	return nil
}

// Digits returns the number of digit positions the display is configured
// with.
func (d *Dev) Digits() int {
	return len(d.grid)
}

// Halt turns the display off. Subsequent writes fail until a new device is
// created; reads keep serving the mirror.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return nil
	}
	d.halted = true

	return d.setDisplayControl(false)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tm1628.Dev{%d digits}", len(d.grid))
}

var _ conn.Resource = &Dev{}
