// Package client is the HTTP client used by the terminal front end and the
// admin console. It talks to the portfolio API and carries the admin bearer
// token once the user has logged in.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"termfolio/internal/portfolio"
)

// ErrUnauthorized is returned when the API rejects the token or password.
// The admin console reacts by dropping the stored token and re-prompting.
var ErrUnauthorized = errors.New("unauthorized")

// Client wraps the portfolio API. Not safe for concurrent token updates;
// the terminal programs are single-goroutine by construction.
type Client struct {
	base  string
	http  *http.Client
	token string
}

// New builds a client for the given base URL. The "/api" prefix is appended
// when missing so callers can pass either "http://host:5000" or the full
// API root.
func New(base string) *Client {
	base = strings.TrimRight(base, "/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}
	return &Client{base: base, http: &http.Client{}}
}

// SetToken installs a previously issued bearer token.
func (c *Client) SetToken(tok string) { c.token = tok }

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string { return c.token }

// Login exchanges the admin password for a bearer token and installs it on
// the client.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{"password": password}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success || resp.Token == "" {
		return "", ErrUnauthorized
	}
	c.token = resp.Token
	return resp.Token, nil
}

// ListKind fetches the records of one kind as generic maps. The resume
// endpoint returns a single object; it is wrapped in a one-element slice so
// the admin console can treat all five tabs uniformly.
func (c *Client) ListKind(ctx context.Context, kind string) ([]map[string]interface{}, error) {
	if kind == "resume" {
		var rec map[string]interface{}
		if err := c.do(ctx, http.MethodGet, "/resume", nil, &rec); err != nil {
			return nil, err
		}
		if link, _ := rec["link"].(string); link == "#" && rec["_id"] == nil {
			return []map[string]interface{}{}, nil
		}
		return []map[string]interface{}{rec}, nil
	}
	var list []map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/"+kind, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateKind posts a new record of the given kind.
func (c *Client) CreateKind(ctx context.Context, kind string, fields map[string]interface{}) (map[string]interface{}, error) {
	var rec map[string]interface{}
	if err := c.do(ctx, http.MethodPost, "/"+kind, fields, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateKind sends a partial update for one record. Resume has no per-id
// route; updates go through CreateKind (replace).
func (c *Client) UpdateKind(ctx context.Context, kind, id string, fields map[string]interface{}) (map[string]interface{}, error) {
	if kind == "resume" {
		return c.CreateKind(ctx, kind, fields)
	}
	var rec map[string]interface{}
	if err := c.do(ctx, http.MethodPut, "/"+kind+"/"+id, fields, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteKind removes one record by id.
func (c *Client) DeleteKind(ctx context.Context, kind, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+kind+"/"+id, nil, nil)
}

// Seed resets the server content to the demo fixture.
func (c *Client) Seed(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/seed", nil, nil)
}

// Projects fetches the typed project list for the visitor terminal.
func (c *Client) Projects(ctx context.Context) ([]portfolio.Project, error) {
	var out []portfolio.Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &out)
	return out, err
}

func (c *Client) Education(ctx context.Context) ([]portfolio.Education, error) {
	var out []portfolio.Education
	err := c.do(ctx, http.MethodGet, "/education", nil, &out)
	return out, err
}

func (c *Client) Experience(ctx context.Context) ([]portfolio.Experience, error) {
	var out []portfolio.Experience
	err := c.do(ctx, http.MethodGet, "/experience", nil, &out)
	return out, err
}

func (c *Client) TechStack(ctx context.Context) ([]portfolio.TechStack, error) {
	var out []portfolio.TechStack
	err := c.do(ctx, http.MethodGet, "/techstack", nil, &out)
	return out, err
}

// Resume fetches the singleton resume record. When none is configured the
// server answers {link:"#"}, which decodes into a Resume with Link "#".
func (c *Client) Resume(ctx context.Context) (portfolio.Resume, error) {
	var out portfolio.Resume
	err := c.do(ctx, http.MethodGet, "/resume", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Message)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
