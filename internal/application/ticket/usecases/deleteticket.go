package usecases

import (
	"context"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketSID string
	Actor     Actor
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return err
	}

	role, err := authorization.ParseUserRole(cmd.Actor.Role)
	if err != nil {
		return errors.NewUnauthorizedError("invalid actor identity")
	}
	if !t.CanBeDeletedBy(cmd.Actor.UserSID, role) {
		uc.logger.Warnw("ticket deletion denied",
			"ticket_id", cmd.TicketSID,
			"user", cmd.Actor.UserSID)
		return errors.NewForbiddenError("only the ticket creator or an administrator may delete a ticket")
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketSID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketSID, "by", cmd.Actor.UserSID)
	return nil
}
