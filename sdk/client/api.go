package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIError is a non-2xx response from the server, carrying the decoded
// error envelope when one was present.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d type=%s message=%s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("api error: status=%d", e.StatusCode)
}

// IsClientError reports whether err is a 4xx response. Client errors
// are the caller's fault and are never eligible for offline fallback.
func IsClientError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
	}
	return false
}

// APIClient is the Fixdesk REST API client.
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the APIClient.
type Option func(*APIClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *APIClient) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *APIClient) {
		client.httpClient.Timeout = d
	}
}

// NewAPIClient creates a new Fixdesk API client.
//
// Parameters:
//   - baseURL: the API base URL including the version prefix
//     (e.g., "http://localhost:8080/api/v1")
func NewAPIClient(baseURL string, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token used on subsequent requests.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

// Login authenticates with username and password.
func (c *APIClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var result LoginResult
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/auth/login", body, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &result, nil
}

// Register creates a new account.
func (c *APIClient) Register(ctx context.Context, input RegisterUserInput) (*User, error) {
	var user User
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/auth/register", input, &user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &user, nil
}

// ListTickets retrieves all tickets, newest first.
func (c *APIClient) ListTickets(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/tickets", nil, &tickets); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// GetTicket retrieves a single ticket with its history.
func (c *APIClient) GetTicket(ctx context.Context, ticketID string) (*Ticket, error) {
	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodGet, c.ticketURL(ticketID), nil, &ticket); err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &ticket, nil
}

// CreateTicket creates a ticket and returns the server's record.
func (c *APIClient) CreateTicket(ctx context.Context, input CreateTicketInput) (*Ticket, error) {
	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/tickets", input, &ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &ticket, nil
}

// UpdateTicket applies a partial update and returns the updated record.
func (c *APIClient) UpdateTicket(ctx context.Context, ticketID string, input UpdateTicketInput) (*Ticket, error) {
	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPut, c.ticketURL(ticketID), input, &ticket); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return &ticket, nil
}

// ToggleTicketStatus flips a ticket between active and closed.
func (c *APIClient) ToggleTicketStatus(ctx context.Context, ticketID string) (*Ticket, error) {
	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodPatch, c.ticketURL(ticketID)+"/status", nil, &ticket); err != nil {
		return nil, fmt.Errorf("toggle ticket status: %w", err)
	}
	return &ticket, nil
}

// DeleteTicket deletes a ticket.
func (c *APIClient) DeleteTicket(ctx context.Context, ticketID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, c.ticketURL(ticketID), nil, nil); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

// AddHistoryEntry appends a note to a ticket.
func (c *APIClient) AddHistoryEntry(ctx context.Context, ticketID, description string) (*HistoryEntry, error) {
	body := map[string]string{"description": description}

	var entry HistoryEntry
	if err := c.doRequest(ctx, http.MethodPost, c.ticketURL(ticketID)+"/history", body, &entry); err != nil {
		return nil, fmt.Errorf("add history entry: %w", err)
	}
	return &entry, nil
}

// UpdateHistoryEntry edits the description of a note.
func (c *APIClient) UpdateHistoryEntry(ctx context.Context, ticketID, entryID, description string) (*HistoryEntry, error) {
	body := map[string]string{"description": description}

	var entry HistoryEntry
	if err := c.doRequest(ctx, http.MethodPut, c.historyURL(ticketID, entryID), body, &entry); err != nil {
		return nil, fmt.Errorf("update history entry: %w", err)
	}
	return &entry, nil
}

// DeleteHistoryEntry removes a note from a ticket.
func (c *APIClient) DeleteHistoryEntry(ctx context.Context, ticketID, entryID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, c.historyURL(ticketID, entryID), nil, nil); err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	return nil
}

// ListUsers retrieves all accounts.
func (c *APIClient) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser deletes an account. Requires an admin token.
func (c *APIClient) DeleteUser(ctx context.Context, userID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, c.baseURL+"/users/"+url.PathEscape(userID), nil, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (c *APIClient) ticketURL(ticketID string) string {
	return c.baseURL + "/tickets/" + url.PathEscape(ticketID)
}

func (c *APIClient) historyURL(ticketID, entryID string) string {
	return c.ticketURL(ticketID) + "/history/" + url.PathEscape(entryID)
}

// apiResponse mirrors the server's response envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *apiErrorInfo   `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type apiErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// doRequest performs an HTTP request and decodes the response envelope.
func (c *APIClient) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope apiResponse
		if jsonErr := json.Unmarshal(respBody, &envelope); jsonErr == nil && envelope.Error != nil {
			apiErr.Type = envelope.Error.Type
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if result == nil {
		return nil
	}

	var envelope apiResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if envelope.Data == nil {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
