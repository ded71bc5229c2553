// Package backend talks to the theater backend REST API that owns shows, movies and screens.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"theater-console/internal/infra"
	"theater-console/internal/pkg/config"
	"theater-console/internal/pkg/requestid"
)

const maxErrorBody = 4 << 10

type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, loc *time.Location, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		loc:    loc,
		logger: logger,
	}
}

// do sends one JSON request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return infra.WrapRepoErr(c.logger, infra.KindDecode, "failed to encode request for "+path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindUpstream, "failed to build request for "+path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.From(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// cancellation by a newer console request is not an upstream failure
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return infra.WrapRepoErr(c.logger, infra.KindUpstream, method+" "+path+" failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(method, path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindDecode, "failed to decode response of "+path, err)
	}
	return nil
}

func (c *Client) statusError(method, path string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	cause := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))

	kind := infra.KindUpstream
	switch resp.StatusCode {
	case http.StatusNotFound:
		kind = infra.KindNotFound
	case http.StatusConflict:
		kind = infra.KindConflict
	}
	return infra.WrapRepoErr(c.logger, kind, method+" "+path, cause)
}
