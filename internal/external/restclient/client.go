// Package restclient implements the external collaborator interfaces over
// plain REST endpoints configured by base URL.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bid-tracking-api/internal/external"
)

const defaultTimeout = 30 * time.Second

type restClient struct {
	baseUrl string
	client  *http.Client
}

func newRestClient(baseUrl string) restClient {
	return restClient{
		baseUrl: baseUrl,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// doJson sends an optional JSON body and decodes an optional JSON reply.
// A 404 maps to external.ErrNotFound so upsert callers can fall through to
// create.
func (c *restClient) doJson(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return external.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status code %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type refResponse struct {
	Ref string `json:"ref"`
}

type idResponse struct {
	Id string `json:"id"`
}
