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

// UpdateTicketCommand carries partial updates; nil fields are left
// untouched.
type UpdateTicketCommand struct {
	TicketSID   string
	Title       *string
	Description *string
	Type        *string
	Priority    *string
	Status      *string
	ImageData   *string
	Actor       Actor
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketSID)

	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := t.UpdateTitle(sanitize.Text(*cmd.Title)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(sanitize.Text(*cmd.Description)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Type != nil {
		ticketType, err := vo.NewTicketType(*cmd.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeType(ticketType); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ImageData != nil {
		t.SetImage(*cmd.ImageData)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketSID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
