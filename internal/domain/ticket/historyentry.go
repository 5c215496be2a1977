package ticket

import (
	"fmt"
	"time"

	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/id"
)

const maxHistoryDescriptionLength = 5000

// HistoryEntry is a timestamped free-text note on a ticket. Entries are
// append-only; only the description of an existing entry may change, and
// only its author or an admin may change or remove it.
type HistoryEntry struct {
	id         uint
	sid        string
	ticketID   uint
	occurredAt time.Time
	desc       string
	author     ActorSnapshot
	updatedAt  time.Time
}

func NewHistoryEntry(
	ticketID uint,
	description string,
	author ActorSnapshot,
) (*HistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description cannot be empty")
	}
	if len(description) > maxHistoryDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxHistoryDescriptionLength)
	}
	if author.IsZero() {
		return nil, fmt.Errorf("author is required")
	}

	now := biztime.NowUTC()
	return &HistoryEntry{
		sid:        id.MustGenerateWithPrefix(id.PrefixHistory, id.DefaultLength),
		ticketID:   ticketID,
		occurredAt: now,
		desc:       description,
		author:     author,
		updatedAt:  now,
	}, nil
}

func ReconstructHistoryEntry(
	entryID uint,
	sid string,
	ticketID uint,
	occurredAt time.Time,
	description string,
	author ActorSnapshot,
	updatedAt time.Time,
) (*HistoryEntry, error) {
	if entryID == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("history entry public ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &HistoryEntry{
		id:         entryID,
		sid:        sid,
		ticketID:   ticketID,
		occurredAt: occurredAt,
		desc:       description,
		author:     author,
		updatedAt:  updatedAt,
	}, nil
}

func (e *HistoryEntry) ID() uint {
	return e.id
}

func (e *HistoryEntry) SID() string {
	return e.sid
}

func (e *HistoryEntry) TicketID() uint {
	return e.ticketID
}

func (e *HistoryEntry) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *HistoryEntry) Description() string {
	return e.desc
}

func (e *HistoryEntry) Author() ActorSnapshot {
	return e.author
}

func (e *HistoryEntry) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *HistoryEntry) SetID(entryID uint) error {
	if e.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if entryID == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	e.id = entryID
	return nil
}

func (e *HistoryEntry) SetTicketID(ticketID uint) error {
	if e.ticketID != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	e.ticketID = ticketID
	return nil
}

// UpdateDescription edits the note text. Identifier, timestamp, and
// author snapshot never change.
func (e *HistoryEntry) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	if len(description) > maxHistoryDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxHistoryDescriptionLength)
	}

	e.desc = description
	e.updatedAt = biztime.NowUTC()
	return nil
}

// CanBeModifiedBy reports whether the user may edit or delete this entry:
// its author or an admin.
func (e *HistoryEntry) CanBeModifiedBy(userSID string, role authorization.UserRole) bool {
	return authorization.CanAccessResourceByOwnerID(userSID, role, e.author.UserSID)
}
