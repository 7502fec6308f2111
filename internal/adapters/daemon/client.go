package daemon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ServerClient = (*Client)(nil)

// Client speaks a workspace server's loopback HTTP surface.
type Client struct {
	baseURL string
	http    *http.Client
}

// Dial creates a client for the server on the given loopback port. No
// connection is made until the first call.
func Dial(port int) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		http:    &http.Client{},
	}
}

// errorBody is the server's JSON error shape.
type errorBody struct {
	Error string `json:"error"`
}

// do runs one round trip. Transport failures map to ErrServerUnreachable so
// the coordinator can tell a dead server from a request the server rejected.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return zerr.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return zerr.Wrap(err, "failed to build request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Joined so the coordinator can match the sentinel with errors.Is.
		return errors.Join(domain.ErrServerUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Error != "" {
			return zerr.With(zerr.New(eb.Error), "status", fmt.Sprintf("%d", resp.StatusCode))
		}
		return zerr.New(fmt.Sprintf("server returned status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.Wrap(err, "failed to decode response")
	}
	return nil
}

// Health implements ports.ServerClient.
func (c *Client) Health(ctx context.Context) (*ports.HealthInfo, error) {
	var info ports.HealthInfo
	if err := c.do(ctx, http.MethodGet, "/health", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Definitions implements ports.ServerClient.
func (c *Client) Definitions(ctx context.Context, req ports.QueryRequest) (*ports.LocationsResult, error) {
	return c.locations(ctx, "/defs", req)
}

// References implements ports.ServerClient.
func (c *Client) References(ctx context.Context, req ports.QueryRequest) (*ports.LocationsResult, error) {
	return c.locations(ctx, "/refs", req)
}

// Occurrences implements ports.ServerClient.
func (c *Client) Occurrences(ctx context.Context, req ports.QueryRequest) (*ports.LocationsResult, error) {
	return c.locations(ctx, "/occurrences", req)
}

func (c *Client) locations(ctx context.Context, path string, req ports.QueryRequest) (*ports.LocationsResult, error) {
	var result ports.LocationsResult
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Hover implements ports.ServerClient.
func (c *Client) Hover(ctx context.Context, req ports.QueryRequest) (*ports.Hover, error) {
	var hover ports.Hover
	if err := c.do(ctx, http.MethodPost, "/hover", req, &hover); err != nil {
		return nil, err
	}
	return &hover, nil
}

// Rename implements ports.ServerClient.
func (c *Client) Rename(ctx context.Context, req ports.RenameRequest) (*ports.PatchSet, error) {
	return c.patches(ctx, "/rename", req)
}

// ExtractMethod implements ports.ServerClient.
func (c *Client) ExtractMethod(ctx context.Context, req ports.ExtractMethodRequest) (*ports.PatchSet, error) {
	return c.patches(ctx, "/extract-method", req)
}

// ExtractVariable implements ports.ServerClient.
func (c *Client) ExtractVariable(ctx context.Context, req ports.ExtractVarRequest) (*ports.PatchSet, error) {
	return c.patches(ctx, "/extract-var", req)
}

// OrganizeImports implements ports.ServerClient.
func (c *Client) OrganizeImports(ctx context.Context, req ports.OrganizeImportsRequest) (*ports.PatchSet, error) {
	return c.patches(ctx, "/organize-imports", req)
}

// Move implements ports.ServerClient.
func (c *Client) Move(ctx context.Context, req ports.MoveRequest) (*ports.PatchSet, error) {
	return c.patches(ctx, "/move", req)
}

func (c *Client) patches(ctx context.Context, path string, req any) (*ports.PatchSet, error) {
	var set ports.PatchSet
	if err := c.do(ctx, http.MethodPost, path, req, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// List implements ports.ServerClient.
func (c *Client) List(ctx context.Context, req ports.ListRequest) (*ports.SymbolsResult, error) {
	var result ports.SymbolsResult
	if err := c.do(ctx, http.MethodPost, "/list", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Shutdown implements ports.ServerClient.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/shutdown", nil, nil)
}
