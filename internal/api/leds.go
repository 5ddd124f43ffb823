package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// LEDState describes one named indicator and whether it is lit.
type LEDState struct {
	Name    string `json:"name" example:"power" doc:"Indicator name from the configuration"`
	Grid    int    `json:"grid" example:"1" doc:"Grid line the indicator is wired to"`
	Segment int    `json:"segment" example:"8" doc:"Segment line the indicator is wired to"`
	On      bool   `json:"on" example:"true" doc:"Whether the indicator is lit"`
}

// LEDListResponse lists all configured indicators.
type LEDListResponse struct {
	Body struct {
		LEDs []LEDState `json:"leds" doc:"All configured indicators"`
	}
}

// LEDResponse reports a single indicator.
type LEDResponse struct {
	Body LEDState
}

// LEDSetRequest switches a named indicator.
type LEDSetRequest struct {
	Name string `path:"name" example:"power" doc:"Indicator name from the configuration"`
	Body struct {
		On bool `json:"on" example:"true" doc:"Whether the indicator should be lit"`
	}
}

// LEDGetRequest names an indicator.
type LEDGetRequest struct {
	Name string `path:"name" example:"power" doc:"Indicator name from the configuration"`
}

// registerLEDRoutes registers indicator control endpoints.
func (s *Server) registerLEDRoutes() {
	if len(s.leds) == 0 {
		s.logger.Debug("No indicators configured, skipping LED routes")
		return
	}

	huma.Register(s.api, huma.Operation{
		OperationID: "list-leds",
		Method:      http.MethodGet,
		Path:        "/api/leds",
		Summary:     "List LEDs",
		Description: "List all configured indicators and their state",
		Tags:        []string{"leds"},
		Errors:      []int{500},
	}, func(ctx context.Context, input *struct{}) (*LEDListResponse, error) {
		resp := &LEDListResponse{}
		resp.Body.LEDs = make([]LEDState, 0, len(s.leds))
		for _, led := range s.leds {
			on, err := s.display.LED(led.Grid, led.Segment)
			if err != nil {
				return nil, huma.Error500InternalServerError("Failed to read indicator", err)
			}
			resp.Body.LEDs = append(resp.Body.LEDs, LEDState{
				Name:    led.Name,
				Grid:    led.Grid,
				Segment: led.Segment,
				On:      on,
			})
		}
		return resp, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "get-led",
		Method:      http.MethodGet,
		Path:        "/api/leds/{name}",
		Summary:     "Get LED",
		Description: "Get the state of one indicator",
		Tags:        []string{"leds"},
		Errors:      []int{404, 500},
	}, func(ctx context.Context, input *LEDGetRequest) (*LEDResponse, error) {
		led, ok := s.ledIndex[input.Name]
		if !ok {
			return nil, huma.Error404NotFound("Unknown indicator: " + input.Name)
		}

		on, err := s.display.LED(led.Grid, led.Segment)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to read indicator", err)
		}
		return &LEDResponse{Body: LEDState{
			Name:    led.Name,
			Grid:    led.Grid,
			Segment: led.Segment,
			On:      on,
		}}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-led",
		Method:      http.MethodPut,
		Path:        "/api/leds/{name}",
		Summary:     "Set LED",
		Description: "Switch one indicator on or off",
		Tags:        []string{"leds"},
		Errors:      []int{404, 500},
	}, func(ctx context.Context, input *LEDSetRequest) (*LEDResponse, error) {
		led, ok := s.ledIndex[input.Name]
		if !ok {
			return nil, huma.Error404NotFound("Unknown indicator: " + input.Name)
		}

		if err := s.display.SetLED(led.Grid, led.Segment, input.Body.On); err != nil {
			return nil, huma.Error500InternalServerError("Failed to switch indicator", err)
		}
		return &LEDResponse{Body: LEDState{
			Name:    led.Name,
			Grid:    led.Grid,
			Segment: led.Segment,
			On:      input.Body.On,
		}}, nil
	})

	s.logger.Info("LED routes registered", "count", len(s.leds))
}
