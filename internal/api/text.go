package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flavioheleno/tm1628"
)

// TextRequest carries the text to display.
type TextRequest struct {
	Body struct {
		Text string `json:"text" example:"1234" doc:"Text to render on the 7-segment digits"`
	}
}

// TextResponse reports the text the display holds. It can be shorter than
// what was submitted: input stops at the first non-printable byte.
type TextResponse struct {
	Body struct {
		Text string `json:"text" example:"1234" doc:"Text currently on the display"`
	}
}

// registerTextRoutes registers the display text endpoints.
func (s *Server) registerTextRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-text",
		Method:      http.MethodGet,
		Path:        "/api/text",
		Summary:     "Get Text",
		Description: "Get the text currently on the display",
		Tags:        []string{"text"},
	}, func(ctx context.Context, input *struct{}) (*TextResponse, error) {
		resp := &TextResponse{}
		resp.Body.Text = s.display.Text()
		return resp, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-text",
		Method:      http.MethodPut,
		Path:        "/api/text",
		Summary:     "Set Text",
		Description: "Replace the text on the display",
		Tags:        []string{"text"},
		Errors:      []int{400, 500},
	}, func(ctx context.Context, input *TextRequest) (*TextResponse, error) {
		if err := s.display.SetText(input.Body.Text); err != nil {
			if errors.Is(err, tm1628.ErrTextTooLong) {
				return nil, huma.Error400BadRequest("Text does not fit the display", err)
			}
			return nil, huma.Error500InternalServerError("Failed to update the display", err)
		}

		resp := &TextResponse{}
		resp.Body.Text = s.display.Text()
		return resp, nil
	})
}
