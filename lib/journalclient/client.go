// Package journalclient talks to a techo server's entries API. It satisfies
// journal.EntryAPI so a view model can run against a remote store.
package journalclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"techo/types"
)

type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
}

func New(endpoint string) (*Client, error) {
	endpointURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "Parsing techo endpoint")
	}
	if endpointURL.Scheme == "" {
		endpointURL.Scheme = "http"
	}

	return &Client{
		endpoint:   endpointURL,
		httpClient: http.DefaultClient,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	reqURL := *c.endpoint
	reqURL.Path = path

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "Encoding request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return errors.Wrap(err, "Building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "Failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Wrap(err, "Decoding response body")
		}
	}

	return nil
}

func (c *Client) ListEntries(ctx context.Context) ([]types.Entry, error) {
	ret := []types.Entry{}
	if err := c.do(ctx, http.MethodGet, "/api/entries", nil, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Client) CreateEntry(ctx context.Context, in types.EntryInput) (uint, error) {
	var created struct {
		ID uint `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/entries", in, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id uint, in types.EntryInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/entries/%d", id), in, nil)
}

func (c *Client) DeleteEntry(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/entries/%d", id), nil, nil)
}
