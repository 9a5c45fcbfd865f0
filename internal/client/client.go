// Package client is a typed wrapper around the catalog HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"steelcatalog/internal/model"
	"steelcatalog/internal/service"
	"steelcatalog/internal/websocket"
	"steelcatalog/pkg/response"
)

// APIError is returned for every non-2xx response
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	firebaseUID string
	idToken     string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAdmin sets the firebase-uid header sent on /admin calls
func WithAdmin(firebaseUID string) Option {
	return func(c *Client) { c.firebaseUID = firebaseUID }
}

// WithIDToken adds a bearer Firebase ID token to admin calls
func WithIDToken(token string) Option {
	return func(c *Client) { c.idToken = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Public ---

func (c *Client) ListProducts(ctx context.Context) ([]service.ProductResponse, error) {
	var out []service.ProductResponse
	return out, c.do(ctx, http.MethodGet, "/products", nil, nil, &out)
}

func (c *Client) ListCategories(ctx context.Context) ([]service.CategoryResponse, error) {
	var out []service.CategoryResponse
	return out, c.do(ctx, http.MethodGet, "/categories", nil, nil, &out)
}

func (c *Client) RegisterUser(ctx context.Context, req service.RegisterUserRequest) (service.UserResponse, error) {
	var out service.UserResponse
	return out, c.do(ctx, http.MethodPost, "/users", nil, req, &out)
}

func (c *Client) UserExists(ctx context.Context, firebaseUID string) (bool, error) {
	var out struct {
		Found bool `json:"found"`
	}
	err := c.do(ctx, http.MethodGet, "/users/check/"+url.PathEscape(firebaseUID), nil, nil, &out)
	return out.Found, err
}

func (c *Client) CheckAdmin(ctx context.Context, firebaseUID string) (service.CheckAdminResponse, error) {
	var out service.CheckAdminResponse
	return out, c.do(ctx, http.MethodPost, "/auth/check-admin", nil, service.CheckAdminRequest{FirebaseUID: firebaseUID}, &out)
}

// --- Admin products ---

func (c *Client) AdminListProducts(ctx context.Context) ([]service.ProductResponse, error) {
	var out []service.ProductResponse
	return out, c.do(ctx, http.MethodGet, "/admin/products", nil, nil, &out)
}

func (c *Client) GetProduct(ctx context.Context, id uint) (service.ProductResponse, error) {
	var out service.ProductResponse
	return out, c.do(ctx, http.MethodGet, "/admin/products/"+idPath(id), nil, nil, &out)
}

func (c *Client) CreateProduct(ctx context.Context, req service.ProductRequest) (service.ProductResponse, error) {
	var out service.ProductResponse
	return out, c.do(ctx, http.MethodPost, "/admin/products", nil, req, &out)
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, req service.ProductRequest) (service.ProductResponse, error) {
	var out service.ProductResponse
	return out, c.do(ctx, http.MethodPatch, "/admin/products/"+idPath(id), nil, req, &out)
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/admin/products/"+idPath(id), nil, nil, nil)
}

// ExportProducts returns the raw .xlsx workbook
func (c *Client) ExportProducts(ctx context.Context) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/admin/products/export", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// --- Admin categories ---

func (c *Client) AdminListCategories(ctx context.Context) ([]service.CategoryResponse, error) {
	var out []service.CategoryResponse
	return out, c.do(ctx, http.MethodGet, "/admin/categories", nil, nil, &out)
}

func (c *Client) CreateCategory(ctx context.Context, req service.CategoryRequest) (service.CategoryResponse, error) {
	var out service.CategoryResponse
	return out, c.do(ctx, http.MethodPost, "/admin/categories", nil, req, &out)
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, req service.CategoryRequest) (service.CategoryResponse, error) {
	var out service.CategoryResponse
	return out, c.do(ctx, http.MethodPatch, "/admin/categories/"+idPath(id), nil, req, &out)
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+idPath(id), nil, nil, nil)
}

// --- Admin users ---

// ListUsersParams mirrors the /admin/users query string; zero values are omitted
type ListUsersParams struct {
	Status    string
	Role      string
	Timeframe string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

func (p ListUsersParams) values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("status", p.Status)
	set("role", p.Role)
	set("timeframe", p.Timeframe)
	set("sortBy", p.SortBy)
	set("order", p.Order)
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return q
}

func (c *Client) ListUsers(ctx context.Context, params ListUsersParams) ([]service.UserResponse, error) {
	var out []service.UserResponse
	return out, c.do(ctx, http.MethodGet, "/admin/users", params.values(), nil, &out)
}

func (c *Client) ToggleUserStatus(ctx context.Context, id uint) (service.ToggleStatusResponse, error) {
	var out service.ToggleStatusResponse
	return out, c.do(ctx, http.MethodPatch, "/admin/users/"+idPath(id)+"/toggle-status", nil, nil, &out)
}

func (c *Client) UpdateUserRole(ctx context.Context, id uint, role string) (service.UpdateRoleResponse, error) {
	var out service.UpdateRoleResponse
	return out, c.do(ctx, http.MethodPatch, "/admin/users/"+idPath(id)+"/role", nil, service.UpdateRoleRequest{Role: role}, &out)
}

func (c *Client) UserStats(ctx context.Context) (model.UserStats, error) {
	var out model.UserStats
	return out, c.do(ctx, http.MethodGet, "/admin/users/stats", nil, nil, &out)
}

func (c *Client) AuditLogs(ctx context.Context, page, limit int, entityType string) (service.AuditLogPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if entityType != "" {
		q.Set("entity_type", entityType)
	}
	var out service.AuditLogPage
	return out, c.do(ctx, http.MethodGet, "/admin/audit-logs", q, nil, &out)
}

func (c *Client) WsTicket(ctx context.Context) (websocket.Ticket, error) {
	var out websocket.Ticket
	return out, c.do(ctx, http.MethodGet, "/admin/ws-ticket", nil, nil, &out)
}

// --- transport ---

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// send performs one request; non-2xx responses are turned into *APIError
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.HasPrefix(path, "/admin/") {
		if c.firebaseUID != "" {
			req.Header.Set("firebase-uid", c.firebaseUID)
		}
		if c.idToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.idToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb response.ErrorBody
		if data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); readErr == nil && json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			apiErr.Message = eb.Error
			apiErr.Details = eb.Details
		}
		return nil, apiErr
	}
	return resp, nil
}

func idPath(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
