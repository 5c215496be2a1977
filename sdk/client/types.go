// Package client provides a Go SDK for the Fixdesk API with a hybrid
// online/offline data layer: collections are kept in memory, mirrored
// to disk, and mutations fall back to the local mirror when the server
// is unreachable.
package client

import "time"

// Actor identifies the user who created a ticket or wrote a note, as
// captured at the time of the action.
type Actor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// User represents a Fixdesk account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is a timestamped note on a ticket.
type HistoryEntry struct {
	ID          string    `json:"id"`
	TicketID    string    `json:"ticket_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	Author      Actor     `json:"author"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Ticket represents a maintenance ticket with its full history.
type Ticket struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Priority    string         `json:"priority"`
	Status      string         `json:"status"`
	ReportedAt  time.Time      `json:"reported_at"`
	Creator     Actor          `json:"creator"`
	ImageData   string         `json:"image_data,omitempty"`
	History     []HistoryEntry `json:"history"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Ticket status and type values as the server spells them.
const (
	StatusActive = "active"
	StatusClosed = "closed"

	TypeRepair                = "repair"
	TypePreventiveMaintenance = "preventive_maintenance"
)

// CreateTicketInput carries the fields for a new ticket.
type CreateTicketInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	ImageData   string `json:"image_data,omitempty"`
}

// UpdateTicketInput carries a partial ticket update. Nil fields are
// left unchanged.
type UpdateTicketInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	ImageData   *string `json:"image_data,omitempty"`
}

// RegisterUserInput carries the fields for a new account.
type RegisterUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
