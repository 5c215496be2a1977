package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	apperrors "fixdesk/internal/shared/errors"
)

var testActor = Actor{UserSID: "usr_abc123", Username: "prod_lead", Role: "production"}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "repair ticket with high priority",
			command: CreateTicketCommand{
				Title:       "Press line 2 down",
				Description: "Hydraulic press not building pressure",
				Type:        string(vo.TypeRepair),
				Priority:    string(vo.PriorityHigh),
				Actor:       testActor,
			},
		},
		{
			name: "preventive ticket with image",
			command: CreateTicketCommand{
				Title:       "Monthly lubrication round",
				Description: "Lubricate conveyor bearings",
				Type:        string(vo.TypePreventive),
				Priority:    string(vo.PriorityLow),
				ImageData:   "data:image/png;base64,iVBORw0KGgo=",
				Actor:       testActor,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					if err := tkt.SetID(100); err != nil {
						return err
					}
					savedTicket = tkt
					return nil
				},
			}
			mockLog := &mockLogger{}

			useCase := NewCreateTicketUseCase(mockRepo, mockLog)
			result, err := useCase.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, strings.HasPrefix(result.ID, "tk_"))
			assert.Equal(t, vo.StatusActive.String(), result.Status)
			assert.Equal(t, testActor.UserSID, result.Creator.ID)
			assert.Equal(t, testActor.Username, result.Creator.Username)
			assert.NotZero(t, result.ReportedAt)
			assert.Empty(t, result.History)

			require.NotNil(t, savedTicket)
			assert.Equal(t, tt.command.Title, savedTicket.Title())
			assert.Equal(t, tt.command.Description, savedTicket.Description())
			assert.Equal(t, vo.TicketType(tt.command.Type), savedTicket.Type())
			assert.Equal(t, vo.Priority(tt.command.Priority), savedTicket.Priority())
			assert.Equal(t, tt.command.ImageData, savedTicket.ImageData())
		})
	}
}

func TestCreateTicketUseCase_Execute_SanitizesInput(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			savedTicket = tkt
			return nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "Broken <script>alert(1)</script> valve",
		Description: "Leaking <b>badly</b>",
		Type:        string(vo.TypeRepair),
		Priority:    string(vo.PriorityMedium),
		Actor:       testActor,
	})

	require.NoError(t, err)
	require.NotNil(t, savedTicket)
	assert.NotContains(t, savedTicket.Title(), "<script>")
	assert.NotContains(t, savedTicket.Description(), "<b>")
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "empty title",
			command: CreateTicketCommand{
				Title: "", Description: "desc",
				Type: string(vo.TypeRepair), Priority: string(vo.PriorityMedium),
				Actor: testActor,
			},
		},
		{
			name: "invalid type",
			command: CreateTicketCommand{
				Title: "Title", Description: "desc",
				Type: "inspection", Priority: string(vo.PriorityMedium),
				Actor: testActor,
			},
		},
		{
			name: "invalid priority",
			command: CreateTicketCommand{
				Title: "Title", Description: "desc",
				Type: string(vo.TypeRepair), Priority: "urgent",
				Actor: testActor,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveCalled := false
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					saveCalled = true
					return nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.False(t, saveCalled, "save must not be called on validation failure")

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("database unavailable")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title: "Title", Description: "desc",
		Type: string(vo.TypeRepair), Priority: string(vo.PriorityMedium),
		Actor: testActor,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "database unavailable")
}
