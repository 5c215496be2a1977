package ticket

import (
	"context"

	vo "fixdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetBySID(ctx context.Context, sid string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

// TicketFilter narrows List results. The zero value lists everything,
// sorted by report date descending.
type TicketFilter struct {
	Status     *vo.TicketStatus
	Type       *vo.TicketType
	Priority   *vo.Priority
	CreatorSID *string
}

type HistoryRepository interface {
	Save(ctx context.Context, entry *HistoryEntry) error
	Update(ctx context.Context, entry *HistoryEntry) error
	Delete(ctx context.Context, entryID uint) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}
