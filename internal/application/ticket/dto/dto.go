package dto

import (
	"time"

	"fixdesk/internal/domain/ticket"
)

// ActorDTO identifies the user who created a ticket or wrote a note, as
// captured at the time of the action.
type ActorDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type HistoryEntryDTO struct {
	ID          string    `json:"id"`
	TicketID    string    `json:"ticket_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	Author      ActorDTO  `json:"author"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TicketDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	ReportedAt  time.Time         `json:"reported_at"`
	Creator     ActorDTO          `json:"creator"`
	ImageData   string            `json:"image_data,omitempty"`
	History     []HistoryEntryDTO `json:"history"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func ToActorDTO(a ticket.ActorSnapshot) ActorDTO {
	return ActorDTO{
		ID:       a.UserSID,
		Username: a.Username,
		Role:     a.Role.String(),
	}
}

func ToHistoryEntryDTO(e *ticket.HistoryEntry, ticketSID string) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:          e.SID(),
		TicketID:    ticketSID,
		OccurredAt:  e.OccurredAt(),
		Description: e.Description(),
		Author:      ToActorDTO(e.Author()),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	history := make([]HistoryEntryDTO, 0, len(t.History()))
	for _, e := range t.History() {
		history = append(history, ToHistoryEntryDTO(e, t.SID()))
	}

	return &TicketDTO{
		ID:          t.SID(),
		Title:       t.Title(),
		Description: t.Description(),
		Type:        t.Type().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		ReportedAt:  t.ReportedAt(),
		Creator:     ToActorDTO(t.Creator()),
		ImageData:   t.ImageData(),
		History:     history,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = ToTicketDTO(t)
	}
	return dtos
}
