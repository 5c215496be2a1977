package ticket

import (
	"fmt"
	"time"

	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/id"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type Ticket struct {
	id         uint
	sid        string
	title      string
	desc       string
	ticketType vo.TicketType
	priority   vo.Priority
	status     vo.TicketStatus
	reportedAt time.Time
	creator    ActorSnapshot
	imageData  string
	history    []*HistoryEntry
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTicket(
	title string,
	description string,
	ticketType vo.TicketType,
	priority vo.Priority,
	creator ActorSnapshot,
	imageData string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creator.IsZero() {
		return nil, fmt.Errorf("creator is required")
	}

	now := biztime.NowUTC()

	return &Ticket{
		sid:        id.MustGenerateWithPrefix(id.PrefixTicket, id.DefaultLength),
		title:      title,
		desc:       description,
		ticketType: ticketType,
		priority:   priority,
		status:     vo.StatusActive,
		reportedAt: now,
		creator:    creator,
		imageData:  imageData,
		history:    []*HistoryEntry{},
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTicket(
	ticketID uint,
	sid string,
	title string,
	description string,
	ticketType vo.TicketType,
	priority vo.Priority,
	status vo.TicketStatus,
	reportedAt time.Time,
	creator ActorSnapshot,
	imageData string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("ticket public ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:         ticketID,
		sid:        sid,
		title:      title,
		desc:       description,
		ticketType: ticketType,
		priority:   priority,
		status:     status,
		reportedAt: reportedAt,
		creator:    creator,
		imageData:  imageData,
		history:    []*HistoryEntry{},
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) SID() string {
	return t.sid
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.desc
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) ReportedAt() time.Time {
	return t.reportedAt
}

func (t *Ticket) Creator() ActorSnapshot {
	return t.creator
}

func (t *Ticket) ImageData() string {
	return t.imageData
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) History() []*HistoryEntry {
	historyCopy := make([]*HistoryEntry, len(t.history))
	copy(historyCopy, t.history)
	return historyCopy
}

func (t *Ticket) SetID(ticketID uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = ticketID
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	t.title = title
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	t.desc = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) ChangeType(newType vo.TicketType) error {
	if !newType.IsValid() {
		return fmt.Errorf("invalid ticket type: %s", newType)
	}
	t.ticketType = newType
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ToggleStatus flips active to closed and back.
func (t *Ticket) ToggleStatus() {
	t.status = t.status.Toggled()
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) SetImage(imageData string) {
	t.imageData = imageData
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) AddHistoryEntry(entry *HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("history entry cannot be nil")
	}

	if t.id != 0 && entry.TicketID() != t.id {
		return fmt.Errorf("history entry ticket ID mismatch")
	}

	t.history = append(t.history, entry)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AttachHistory installs already-persisted entries during reconstruction
// without touching the update timestamp.
func (t *Ticket) AttachHistory(entries []*HistoryEntry) {
	t.history = append(t.history, entries...)
}

// FindHistoryEntry returns the entry with the given public ID, or nil.
func (t *Ticket) FindHistoryEntry(entrySID string) *HistoryEntry {
	for _, e := range t.history {
		if e.SID() == entrySID {
			return e
		}
	}
	return nil
}

// RemoveHistoryEntry detaches the entry with the given public ID.
func (t *Ticket) RemoveHistoryEntry(entrySID string) error {
	for i, e := range t.history {
		if e.SID() == entrySID {
			t.history = append(t.history[:i], t.history[i+1:]...)
			t.updatedAt = biztime.NowUTC()
			return nil
		}
	}
	return fmt.Errorf("history entry not found")
}

// CanBeDeletedBy reports whether the user may delete this ticket:
// the creator or an admin.
func (t *Ticket) CanBeDeletedBy(userSID string, role authorization.UserRole) bool {
	return authorization.CanAccessResourceByOwnerID(userSID, role, t.creator.UserSID)
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.desc) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.ticketType.IsValid() {
		return fmt.Errorf("invalid ticket type")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.creator.IsZero() {
		return fmt.Errorf("creator is required")
	}
	return nil
}
