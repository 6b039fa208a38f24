package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/mkyte/paddock/internal/event"
	"github.com/mkyte/paddock/internal/setup"
)

// Client talks to the bot agent process over plain JSON HTTP. The agent is
// an external collaborator: it owns decision-making, we only push config and
// pull datasets.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient creates a client for the agent listening at base (no trailing
// slash required).
func NewClient(base string) *Client {
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// PushSetup sends the serialized event setup to the agent's save endpoint.
func (c *Client) PushSetup(ctx context.Context, s setup.Setup) error {
	body, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshal setup")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/config/event_setup", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return errors.Wrap(err, "push setup")
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("agent rejected setup: %s", resp.Status)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// FetchCatalog retrieves the raw entity dataset from the agent.
func (c *Client) FetchCatalog(ctx context.Context) ([]event.RawSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/datasets/events", nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch catalog")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent catalog fetch: %s", resp.Status)
	}
	var sets []event.RawSet
	if err := json.NewDecoder(resp.Body).Decode(&sets); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	return sets, nil
}
