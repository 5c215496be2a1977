package usecases

import (
	"context"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeleteHistoryEntryCommand struct {
	TicketSID string
	EntrySID  string
	Actor     Actor
}

type DeleteHistoryEntryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewDeleteHistoryEntryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *DeleteHistoryEntryUseCase {
	return &DeleteHistoryEntryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *DeleteHistoryEntryUseCase) Execute(ctx context.Context, cmd DeleteHistoryEntryCommand) error {
	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return err
	}

	entry := t.FindHistoryEntry(cmd.EntrySID)
	if entry == nil {
		return errors.NewNotFoundError("history entry not found")
	}

	role, err := authorization.ParseUserRole(cmd.Actor.Role)
	if err != nil {
		return errors.NewUnauthorizedError("invalid actor identity")
	}
	if !entry.CanBeModifiedBy(cmd.Actor.UserSID, role) {
		uc.logger.Warnw("history entry deletion denied",
			"entry_id", cmd.EntrySID,
			"user", cmd.Actor.UserSID)
		return errors.NewForbiddenError("only the note author or an administrator may delete a note")
	}

	if err := uc.historyRepo.Delete(ctx, entry.ID()); err != nil {
		uc.logger.Errorw("failed to delete history entry",
			"entry_id", cmd.EntrySID, "error", err)
		return err
	}

	uc.logger.Infow("history entry deleted",
		"ticket_id", cmd.TicketSID,
		"entry_id", cmd.EntrySID,
		"by", cmd.Actor.UserSID)
	return nil
}
