package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketSID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetBySID(ctx, query.TicketSID)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t), nil
}
