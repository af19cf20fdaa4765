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
	"sync"
	"time"

	"cucharon/internal/menu"

	"go.uber.org/zap"
)

var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client talks to the cucharon HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
}

func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// --------------------------------------------------
// Menu
// --------------------------------------------------

func (c *Client) FetchMenu(ctx context.Context) (*menu.Document, error) {
	var doc menu.Document
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &doc); err != nil {
		return nil, err
	}
	if doc.Days == nil {
		doc.Days = map[string]menu.DayMenu{}
	}
	return &doc, nil
}

// DayCatalog fetches the menu and builds one weekday's catalog. Any
// failure falls back to the built-in catalog with fallback set.
func (c *Client) DayCatalog(ctx context.Context, day string) (*menu.Catalog, bool, error) {
	if !menu.IsWeekday(day) {
		return nil, false, fmt.Errorf("%w: %q", menu.ErrUnknownDay, day)
	}

	doc, err := c.FetchMenu(ctx)
	if err != nil {
		c.logger.Warn("menu fetch failed, using default catalog",
			zap.String("day", day),
			zap.Error(err),
		)
		return menu.DefaultDayCatalog(day), true, nil
	}

	daily, ok := doc.Day(day)
	if !ok || len(daily) == 0 {
		return menu.DefaultDayCatalog(day), true, nil
	}
	return menu.NewCatalog(day, daily), false, nil
}

// SaveMenu validates every item locally, then replaces the stored menu.
func (c *Client) SaveMenu(ctx context.Context, doc *menu.Document) (*menu.Document, error) {
	if err := menu.ValidateItems(doc); err != nil {
		return nil, err
	}

	token := c.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	var saved menu.Document
	if err := c.do(ctx, http.MethodPost, "/api/menu", doc, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// --------------------------------------------------
// Auth
// --------------------------------------------------

func (c *Client) Login(ctx context.Context, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth", map[string]string{"password": password}, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return errors.New("api: empty token")
	}

	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if c.Token() == "" {
		return nil
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return err
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// --------------------------------------------------
// Transport
// --------------------------------------------------

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		if res.StatusCode >= 300 {
			return &APIError{Status: res.StatusCode}
		}
		return fmt.Errorf("api: decode %s: %w", path, err)
	}

	if res.StatusCode >= 300 || !env.Success {
		return &APIError{Status: res.StatusCode, Message: env.Error}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
