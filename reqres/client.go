package reqres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/deathrjj/userhub-tui/models"
)

// ErrRequestFailed is returned for any transport error or non-2xx response.
// Callers get no finer failure classification than this.
var ErrRequestFailed = errors.New("request failed")

// Client handles reqres API interactions
type Client struct {
	BaseURL string
	client  *http.Client
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
	// Transport is the base round tripper; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// NewClient creates a new reqres API client
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("reqres base URL not set")
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "dev"
	}
	transport := NewTransport(opts.Transport,
		UserAgent("userhub-tui", ua),
		APIKey(opts.APIKey),
		RequestID(),
		Logging(),
	)
	return &Client{
		BaseURL: opts.BaseURL,
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
	}, nil
}

// ListUsers retrieves one page of users.
func (c *Client) ListUsers(ctx context.Context, page int) (models.Page, error) {
	var p models.Page
	url := fmt.Sprintf("%s/users?page=%d", c.BaseURL, page)
	if err := c.do(ctx, http.MethodGet, url, nil, &p); err != nil {
		return models.Page{}, fmt.Errorf("failed to fetch users: %w", err)
	}
	return p, nil
}

// UpdateUser sends the set fields of patch and returns the updated user.
// Fields the server does not echo back are filled from the patch.
func (c *Client) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (models.User, error) {
	url := c.userURL(id)
	var updated models.User
	if err := c.do(ctx, http.MethodPut, url, patch, &updated); err != nil {
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	updated.ID = id
	if updated.FirstName == "" && patch.FirstName != nil {
		updated.FirstName = *patch.FirstName
	}
	if updated.LastName == "" && patch.LastName != nil {
		updated.LastName = *patch.LastName
	}
	if updated.Email == "" && patch.Email != nil {
		updated.Email = *patch.Email
	}
	return updated, nil
}

// DeleteUser removes the user with the given id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, c.userURL(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, c.BaseURL+"/login", body, &resp); err != nil {
		return "", fmt.Errorf("failed to log in: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("failed to log in: %w: empty token", ErrRequestFailed)
	}
	return resp.Token, nil
}

func (c *Client) userURL(id int) string {
	return c.BaseURL + "/users/" + strconv.Itoa(id)
}

// do issues exactly one request. in is JSON-encoded when non-nil; out is
// decoded from the body when non-nil and the body is not empty.
func (c *Client) do(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned %d%s", ErrRequestFailed, method, req.URL.Path, resp.StatusCode, serverMessage(data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: invalid response body: %v", ErrRequestFailed, err)
	}
	return nil
}

// serverMessage extracts reqres' {"error": "..."} text for the error message.
func serverMessage(data []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return ": " + e.Error
	}
	return ""
}
