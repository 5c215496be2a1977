package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/sanitize"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type AddHistoryEntryCommand struct {
	TicketSID   string
	Description string
	Actor       Actor
}

type AddHistoryEntryUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewAddHistoryEntryUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *AddHistoryEntryUseCase {
	return &AddHistoryEntryUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *AddHistoryEntryUseCase) Execute(ctx context.Context, cmd AddHistoryEntryCommand) (*dto.HistoryEntryDTO, error) {
	author, err := cmd.Actor.snapshot()
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		return nil, err
	}

	entry, err := ticket.NewHistoryEntry(t.ID(), sanitize.Text(cmd.Description), author)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.historyRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to save history entry",
			"ticket_id", cmd.TicketSID, "error", err)
		return nil, err
	}

	uc.logger.Infow("history entry added",
		"ticket_id", cmd.TicketSID,
		"entry_id", entry.SID(),
		"author", cmd.Actor.UserSID)

	entryDTO := dto.ToHistoryEntryDTO(entry, t.SID())
	return &entryDTO, nil
}
