package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	first := storedTicket(t)
	second := storedTicket(t)

	var gotFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			gotFilter = filter
			return []*ticket.Ticket{first, second}, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		Status: string(vo.StatusActive),
		Type:   string(vo.TypeRepair),
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first.SID(), result[0].ID)
	assert.Equal(t, second.SID(), result[1].ID)

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusActive, *gotFilter.Status)
	require.NotNil(t, gotFilter.Type)
	assert.Equal(t, vo.TypeRepair, *gotFilter.Type)
	assert.Nil(t, gotFilter.Priority)
	assert.Nil(t, gotFilter.CreatorSID)
}

func TestListTicketsUseCase_Execute_EmptyQueryListsAll(t *testing.T) {
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			assert.Nil(t, filter.Status)
			assert.Nil(t, filter.Type)
			assert.Nil(t, filter.Priority)
			assert.Nil(t, filter.CreatorSID)
			return nil, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListTicketsUseCase_Execute_InvalidFilter(t *testing.T) {
	useCase := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ListTicketsQuery{Status: "archived"})
	require.Error(t, err)

	_, err = useCase.Execute(context.Background(), ListTicketsQuery{Priority: "urgent"})
	require.Error(t, err)
}
