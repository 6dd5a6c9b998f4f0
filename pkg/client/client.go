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
	"time"

	"github.com/campushr/letters-backend-go/pkg/letters"
)

// AdminUser mirrors the backend's user resource representation.
type AdminUser struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	EmployeeID  *string   `json:"employee_id,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Designation *string   `json:"designation,omitempty"`
	JoiningDate *string   `json:"joining_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateUser struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FullName    string  `json:"full_name"`
	Role        string  `json:"role,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	JoiningDate *string `json:"joining_date,omitempty"`
}

type UpdateUser struct {
	Email       *string `json:"email,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	Role        *string `json:"role,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	JoiningDate *string `json:"joining_date,omitempty"`
}

type Template struct {
	ID           int64     `json:"id"`
	LetterType   string    `json:"letter_type"`
	TemplateName string    `json:"template_name"`
	TemplatePath string    `json:"template_path"`
	CreatedBy    *int64    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateTemplate struct {
	LetterType   string `json:"letter_type"`
	TemplateName string `json:"template_name"`
	TemplatePath string `json:"template_path"`
}

type Letter struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	LetterType   string            `json:"letter_type"`
	LetterData   map[string]string `json:"letter_data,omitempty"`
	Status       string            `json:"status"`
	DocumentPath *string           `json:"document_path,omitempty"`
	DocumentURL  *string           `json:"document_url,omitempty"`
	GeneratedBy  *int64            `json:"generated_by,omitempty"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

// GenerateLetter composes a generation request: the subject, the letter
// type, and whatever field values were collected for that type.
type GenerateLetter struct {
	UserID     int64
	LetterType letters.Type
	Fields     map[string]string
}

// MarshalJSON spreads the collected field values as top-level keys next
// to user_id and letter_type, the shape the generation endpoint
// validates against.
func (g GenerateLetter) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(g.Fields)+2)
	for k, v := range g.Fields {
		payload[k] = v
	}
	payload["user_id"] = g.UserID
	payload["letter_type"] = g.LetterType
	return json.Marshal(payload)
}

type Stats struct {
	TotalUsers     int64    `json:"total_users"`
	TotalLetters   int64    `json:"total_letters"`
	TotalTemplates int64    `json:"total_templates"`
	RecentLetters  []Letter `json:"recent_letters"`
}

type loginResult struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      SessionUser `json:"user"`
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithExpiryHook registers a callback fired after any unauthorized
// response, once the session has already been cleared. The front-end uses
// it to navigate to the login route.
func WithExpiryHook(fn func()) Option {
	return func(c *Client) { c.onExpire = fn }
}

// Client wraps the REST contract one call per operation. It attaches the
// bearer token from the session store and surfaces backend errors without
// reinterpreting them; normalization happens at display time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *SessionStore
	onExpire   func()
}

func New(baseURL string, session *SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session exposes the store so guards and views share the same state.
func (c *Client) Session() *SessionStore {
	return c.session
}

// Login authenticates and, on success, installs the token and user into
// the session store. On rejection the session is left unchanged.
func (c *Client) Login(ctx context.Context, username, password string) (SessionUser, error) {
	body := map[string]string{"username": username, "password": password}

	var result loginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, body, &result); err != nil {
		return SessionUser{}, err
	}

	c.session.Login(result.Token, result.User)
	return result.User, nil
}

// Logout clears the session locally; no backend call is made.
func (c *Client) Logout() {
	c.session.Logout()
}

func (c *Client) Me(ctx context.Context) (AdminUser, error) {
	var u AdminUser
	err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, nil, &u)
	return u, err
}

// VerifyToken checks the stored token. A nil error means the token is
// still good; an unauthorized response will have expired the session.
func (c *Client) VerifyToken(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/v1/auth/verify-token", nil, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context, skip, limit int) ([]AdminUser, error) {
	var users []AdminUser
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/users", pageQuery(skip, limit), nil, &users)
	return users, err
}

func (c *Client) CreateUser(ctx context.Context, req CreateUser) (AdminUser, error) {
	var u AdminUser
	err := c.do(ctx, http.MethodPost, "/api/v1/admin/users", nil, req, &u)
	return u, err
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUser) (AdminUser, error) {
	var u AdminUser
	err := c.do(ctx, http.MethodPut, "/api/v1/admin/users/"+strconv.FormatInt(id, 10), nil, req, &u)
	return u, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/admin/users/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	var templates []Template
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/templates", nil, nil, &templates)
	return templates, err
}

func (c *Client) CreateTemplate(ctx context.Context, req CreateTemplate) (Template, error) {
	var t Template
	err := c.do(ctx, http.MethodPost, "/api/v1/admin/templates", nil, req, &t)
	return t, err
}

func (c *Client) ListLetters(ctx context.Context, skip, limit int) ([]Letter, error) {
	var list []Letter
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/letters", pageQuery(skip, limit), nil, &list)
	return list, err
}

func (c *Client) GenerateLetter(ctx context.Context, req GenerateLetter) (Letter, error) {
	var l Letter
	err := c.do(ctx, http.MethodPost, "/api/v1/admin/letters/generate", nil, req, &l)
	return l, err
}

func (c *Client) GetStats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/stats", nil, nil, &s)
	return s, err
}

// SpliceUser removes the row with the given id from a displayed user
// list. Call it only after DeleteUser confirmed; on a failed delete the
// list stays as fetched. The input slice is not modified.
func SpliceUser(list []AdminUser, id int64) []AdminUser {
	out := make([]AdminUser, 0, len(list))
	for _, u := range list {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

func pageQuery(skip, limit int) url.Values {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	// An unauthorized response always expires the session, no matter
	// which call produced it.
	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Expire()
		if c.onExpire != nil {
			c.onExpire()
		}
		return &AuthError{Message: FormatErrorMessage(errorDetail(raw))}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// errorDetail pulls the most specific error payload out of a failed
// response body, leaving its shape intact for FormatErrorMessage.
func errorDetail(raw []byte) any {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return string(raw)
	}

	m, ok := body.(map[string]any)
	if !ok {
		return body
	}
	if detail, ok := m["detail"]; ok {
		return detail
	}
	if e, ok := m["error"].(map[string]any); ok {
		if details, ok := e["details"]; ok && details != nil {
			return details
		}
		if msg, ok := e["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if msg, ok := m["message"].(string); ok && msg != "" {
		return msg
	}
	return body
}
