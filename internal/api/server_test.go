package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/tm1628"
	"github.com/flavioheleno/tm1628/internal/config"
	"github.com/flavioheleno/tm1628/internal/logging"
)

// mockDisplay is a test implementation of Display with driver-shaped
// capacity semantics.
type mockDisplay struct {
	mu      sync.Mutex
	digits  int
	text    string
	leds    map[[2]int]bool
	textErr error
	ledErr  error
}

func newMockDisplay(digits int) *mockDisplay {
	return &mockDisplay{digits: digits, leds: make(map[[2]int]bool)}
}

func (m *mockDisplay) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *mockDisplay) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.textErr != nil {
		return m.textErr
	}
	if len(text) > m.digits+1 {
		return tm1628.ErrTextTooLong
	}
	m.text = text
	return nil
}

func (m *mockDisplay) SetLED(grid, segment int, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ledErr != nil {
		return m.ledErr
	}
	m.leds[[2]int{grid, segment}] = on
	return nil
}

func (m *mockDisplay) LED(grid, segment int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leds[[2]int{grid, segment}], nil
}

func (m *mockDisplay) Digits() int {
	return m.digits
}

func newTestServer(t *testing.T, display Display, leds []config.LED) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	s := &Server{
		api:      api,
		display:  display,
		leds:     leds,
		ledIndex: make(map[string]config.LED, len(leds)),
		logger:   logging.GetLogger("api"),
	}
	for _, led := range leds {
		s.ledIndex[led.Name] = led
	}
	s.registerRoutes()
	return api
}

func testLEDs() []config.LED {
	return []config.LED{
		{Name: "power", Grid: 1, Segment: 8},
		{Name: "wifi", Grid: 2, Segment: 8},
	}
}

func TestHealth(t *testing.T) {
	api := newTestServer(t, newMockDisplay(4), nil)

	resp := api.Get("/api/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Status string `json:"status"`
		Digits int    `json:"digits"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 4, body.Digits)
}

func TestGetText(t *testing.T) {
	display := newMockDisplay(4)
	display.text = "1234"
	api := newTestServer(t, display, nil)

	resp := api.Get("/api/text")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "1234", body.Text)
}

func TestSetText(t *testing.T) {
	display := newMockDisplay(4)
	api := newTestServer(t, display, nil)

	resp := api.Put("/api/text", map[string]any{"text": "57"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "57", body.Text)
	assert.Equal(t, "57", display.Text())
}

func TestSetTextTooLong(t *testing.T) {
	display := newMockDisplay(4)
	display.text = "keep"
	api := newTestServer(t, display, nil)

	resp := api.Put("/api/text", map[string]any{"text": "too long"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "keep", display.Text(), "rejected input must not change the display")
}

func TestSetTextBusFailure(t *testing.T) {
	display := newMockDisplay(4)
	display.textErr = errors.New("tm1628: halted")
	api := newTestServer(t, display, nil)

	resp := api.Put("/api/text", map[string]any{"text": "12"})
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestListLEDs(t *testing.T) {
	display := newMockDisplay(4)
	require.NoError(t, display.SetLED(1, 8, true))
	api := newTestServer(t, display, testLEDs())

	resp := api.Get("/api/leds")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		LEDs []LEDState `json:"leds"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.LEDs, 2)
	// Configuration order is preserved.
	assert.Equal(t, "power", body.LEDs[0].Name)
	assert.True(t, body.LEDs[0].On)
	assert.Equal(t, "wifi", body.LEDs[1].Name)
	assert.False(t, body.LEDs[1].On)
}

func TestGetLED(t *testing.T) {
	display := newMockDisplay(4)
	require.NoError(t, display.SetLED(2, 8, true))
	api := newTestServer(t, display, testLEDs())

	resp := api.Get("/api/leds/wifi")
	require.Equal(t, http.StatusOK, resp.Code)

	var body LEDState
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "wifi", body.Name)
	assert.Equal(t, 2, body.Grid)
	assert.Equal(t, 8, body.Segment)
	assert.True(t, body.On)
}

func TestGetLEDUnknown(t *testing.T) {
	api := newTestServer(t, newMockDisplay(4), testLEDs())

	resp := api.Get("/api/leds/ghost")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSetLED(t *testing.T) {
	display := newMockDisplay(4)
	api := newTestServer(t, display, testLEDs())

	resp := api.Put("/api/leds/power", map[string]any{"on": true})
	require.Equal(t, http.StatusOK, resp.Code)

	on, err := display.LED(1, 8)
	require.NoError(t, err)
	assert.True(t, on)

	resp = api.Put("/api/leds/power", map[string]any{"on": false})
	require.Equal(t, http.StatusOK, resp.Code)

	on, err = display.LED(1, 8)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestSetLEDUnknown(t *testing.T) {
	api := newTestServer(t, newMockDisplay(4), testLEDs())

	resp := api.Put("/api/leds/ghost", map[string]any{"on": true})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSetLEDBusFailure(t *testing.T) {
	display := newMockDisplay(4)
	display.ledErr = errors.New("tm1628: write failed")
	api := newTestServer(t, display, testLEDs())

	resp := api.Put("/api/leds/power", map[string]any{"on": true})
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestNoLEDRoutesWithoutIndicators(t *testing.T) {
	api := newTestServer(t, newMockDisplay(4), nil)

	resp := api.Get("/api/leds")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
