package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatus_Toggle(t *testing.T) {
	assert.Equal(t, StatusClosed, StatusActive.Toggled())
	assert.Equal(t, StatusActive, StatusClosed.Toggled())
}

func TestTicketStatus_Transitions(t *testing.T) {
	assert.True(t, StatusActive.CanTransitionTo(StatusClosed))
	assert.True(t, StatusClosed.CanTransitionTo(StatusActive))
	assert.False(t, StatusActive.CanTransitionTo(StatusActive))
	assert.False(t, StatusClosed.CanTransitionTo(StatusClosed))
	assert.False(t, TicketStatus("archived").CanTransitionTo(StatusActive))
}

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus("active")
	require.NoError(t, err)
	assert.True(t, s.IsActive())

	s, err = NewTicketStatus("closed")
	require.NoError(t, err)
	assert.True(t, s.IsClosed())

	_, err = NewTicketStatus("ACTIVE")
	assert.Error(t, err, "statuses are lowercase")

	_, err = NewTicketStatus("")
	assert.Error(t, err)
}

func TestNewTicketType(t *testing.T) {
	tt, err := NewTicketType("repair")
	require.NoError(t, err)
	assert.True(t, tt.IsRepair())

	tt, err = NewTicketType("preventive_maintenance")
	require.NoError(t, err)
	assert.True(t, tt.IsPreventive())

	_, err = NewTicketType("inspection")
	assert.Error(t, err)
}

func TestNewPriority(t *testing.T) {
	for _, s := range []string{"low", "medium", "high", "critical"} {
		p, err := NewPriority(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}

	_, err := NewPriority("urgent")
	assert.Error(t, err)
}

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Zero(t, Priority("unknown").Rank())
}
