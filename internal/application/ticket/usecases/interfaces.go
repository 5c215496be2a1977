package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
)

// Actor is the authenticated user on whose behalf a command runs, as
// resolved by the HTTP middleware.
type Actor struct {
	UserSID  string
	Username string
	Role     string
}

func (a Actor) snapshot() (ticket.ActorSnapshot, error) {
	role, err := authorization.ParseUserRole(a.Role)
	if err != nil {
		return ticket.ActorSnapshot{}, errors.NewUnauthorizedError("invalid actor identity")
	}
	snap, err := ticket.NewActorSnapshot(a.UserSID, a.Username, role)
	if err != nil {
		return ticket.ActorSnapshot{}, errors.NewUnauthorizedError("invalid actor identity")
	}
	return snap, nil
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type ToggleTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ToggleTicketStatusCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type AddHistoryEntryExecutor interface {
	Execute(ctx context.Context, cmd AddHistoryEntryCommand) (*dto.HistoryEntryDTO, error)
}

type UpdateHistoryEntryExecutor interface {
	Execute(ctx context.Context, cmd UpdateHistoryEntryCommand) (*dto.HistoryEntryDTO, error)
}

type DeleteHistoryEntryExecutor interface {
	Execute(ctx context.Context, cmd DeleteHistoryEntryCommand) error
}
