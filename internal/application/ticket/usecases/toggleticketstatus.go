package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/logger"
)

type ToggleTicketStatusCommand struct {
	TicketSID string
	Actor     Actor
}

type ToggleTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewToggleTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ToggleTicketStatusUseCase {
	return &ToggleTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ToggleTicketStatusUseCase) Execute(ctx context.Context, cmd ToggleTicketStatusCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return nil, err
	}

	t.ToggleStatus()

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to toggle ticket status", "ticket_id", cmd.TicketSID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status toggled",
		"ticket_id", cmd.TicketSID,
		"status", t.Status().String())

	return dto.ToTicketDTO(t), nil
}
