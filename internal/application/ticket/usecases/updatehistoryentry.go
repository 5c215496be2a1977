package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/sanitize"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type UpdateHistoryEntryCommand struct {
	TicketSID   string
	EntrySID    string
	Description string
	Actor       Actor
}

type UpdateHistoryEntryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewUpdateHistoryEntryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *UpdateHistoryEntryUseCase {
	return &UpdateHistoryEntryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *UpdateHistoryEntryUseCase) Execute(ctx context.Context, cmd UpdateHistoryEntryCommand) (*dto.HistoryEntryDTO, error) {
	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return nil, err
	}

	entry := t.FindHistoryEntry(cmd.EntrySID)
	if entry == nil {
		return nil, errors.NewNotFoundError("history entry not found")
	}

	role, err := authorization.ParseUserRole(cmd.Actor.Role)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid actor identity")
	}
	if !entry.CanBeModifiedBy(cmd.Actor.UserSID, role) {
		uc.logger.Warnw("history entry edit denied",
			"entry_id", cmd.EntrySID,
			"user", cmd.Actor.UserSID)
		return nil, errors.NewForbiddenError("only the note author or an administrator may edit a note")
	}

	if err := entry.UpdateDescription(sanitize.Text(cmd.Description)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.historyRepo.Update(ctx, entry); err != nil {
		uc.logger.Errorw("failed to update history entry",
			"entry_id", cmd.EntrySID, "error", err)
		return nil, err
	}

	entryDTO := dto.ToHistoryEntryDTO(entry, t.SID())
	return &entryDTO, nil
}
