package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/infrastructure/sanitize"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Type        string
	Priority    string
	ImageData   string
	Actor       Actor
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator", cmd.Actor.UserSID)

	creator, err := cmd.Actor.snapshot()
	if err != nil {
		return nil, err
	}

	ticketType, err := vo.NewTicketType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		sanitize.Text(cmd.Title),
		sanitize.Text(cmd.Description),
		ticketType,
		priority,
		creator,
		cmd.ImageData,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.SID())

	return dto.ToTicketDTO(newTicket), nil
}
