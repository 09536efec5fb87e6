package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vancomm/minefield-annotator/internal/handlers"
	"github.com/vancomm/minefield-annotator/internal/mines"
)

// Client annotates minefields through a running annotator service.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

type ServiceError struct {
	StatusCode int
	Message    string
}

// [ServiceError] implements [error]
func (e *ServiceError) Error() string {
	return fmt.Sprintf("annotator responded %d: %s", e.StatusCode, e.Message)
}

func (c *Client) Annotate(ctx context.Context, a *mines.Annotator, rows []string) (*handlers.AnnotatedDTO, error) {
	var (
		out    handlers.AnnotatedDTO
		failed map[string]string
	)
	params := map[string]string{
		"strict": strconv.FormatBool(a.Strict),
	}
	if a.Markers != (mines.Markers{}) {
		params["mine"] = string(a.Markers.Mine)
		params["empty"] = string(a.Markers.Empty)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetBody(handlers.MinefieldDTO{Rows: rows}).
		SetResult(&out).
		SetError(&failed).
		Post("/annotate")
	if err != nil {
		return nil, fmt.Errorf("unable to reach annotator: %w", err)
	}
	if resp.IsError() {
		msg := failed["error"]
		if msg == "" {
			msg = resp.Status()
		}
		return nil, &ServiceError{StatusCode: resp.StatusCode(), Message: msg}
	}
	if out.Rows == nil {
		return nil, errors.New("annotator response has no rows")
	}
	return &out, nil
}
