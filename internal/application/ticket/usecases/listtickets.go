package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

// ListTicketsQuery narrows the result set. Empty fields are ignored.
type ListTicketsQuery struct {
	Status     string
	Type       string
	Priority   string
	CreatorSID string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	var filter ticket.TicketFilter

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Type != "" {
		ticketType, err := vo.NewTicketType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &ticketType
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.CreatorSID != "" {
		creatorSID := query.CreatorSID
		filter.CreatorSID = &creatorSID
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
