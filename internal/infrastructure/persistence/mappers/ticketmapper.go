package mappers

import (
	"fmt"

	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// HistoryToModel converts a history entry domain entity to a persistence model.
	HistoryToModel(e *ticket.HistoryEntry) *models.HistoryEntryModel

	// HistoryToDomain converts a history entry persistence model to a domain entity.
	HistoryToDomain(model *models.HistoryEntryModel) (*ticket.HistoryEntry, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	creator := t.Creator()
	return &models.TicketModel{
		ID:              t.ID(),
		SID:             t.SID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Type:            t.Type().String(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		ReportedAt:      t.ReportedAt().UnixMilli(),
		CreatorSID:      creator.UserSID,
		CreatorUsername: creator.Username,
		CreatorRole:     creator.Role.String(),
		ImageData:       t.ImageData(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts the ticket fields only. History entries are loaded
// separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	ticketType, err := vo.NewTicketType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	creatorRole, err := authorization.ParseUserRole(model.CreatorRole)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: invalid creator: %w", model.ID, err)
	}
	creator, err := ticket.NewActorSnapshot(model.CreatorSID, model.CreatorUsername, creatorRole)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: invalid creator: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.SID,
		model.Title,
		model.Description,
		ticketType,
		priority,
		status,
		biztime.FromUnixMilli(model.ReportedAt),
		creator,
		model.ImageData,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) HistoryToModel(e *ticket.HistoryEntry) *models.HistoryEntryModel {
	author := e.Author()
	return &models.HistoryEntryModel{
		ID:             e.ID(),
		SID:            e.SID(),
		TicketID:       e.TicketID(),
		OccurredAt:     e.OccurredAt().UnixMilli(),
		Description:    e.Description(),
		AuthorSID:      author.UserSID,
		AuthorUsername: author.Username,
		AuthorRole:     author.Role.String(),
		UpdatedAt:      e.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.HistoryEntryModel) (*ticket.HistoryEntry, error) {
	authorRole, err := authorization.ParseUserRole(model.AuthorRole)
	if err != nil {
		return nil, fmt.Errorf("history entry %d: invalid author: %w", model.ID, err)
	}
	author, err := ticket.NewActorSnapshot(model.AuthorSID, model.AuthorUsername, authorRole)
	if err != nil {
		return nil, fmt.Errorf("history entry %d: invalid author: %w", model.ID, err)
	}

	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.SID,
		model.TicketID,
		biztime.FromUnixMilli(model.OccurredAt),
		model.Description,
		author,
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
