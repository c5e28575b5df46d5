package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arfurnish/internal/domain/entity"
	"arfurnish/pkg/errors"
)

func TestCreateTicketDefaultsPriority(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())

	ticket, err := uc.CreateTicket(context.Background(), "client-1", CreateTicketInput{
		Subject:  "Model does not load",
		Message:  "The sofa model renders as a grey box in AR view.",
		Category: "technical",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TicketPriorityMedium, ticket.Priority)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
	assert.Empty(t, ticket.Responses)
}

func TestCreateTicketInvalidPriority(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())

	_, err := uc.CreateTicket(context.Background(), "client-1", CreateTicketInput{
		Subject:  "Help",
		Message:  "Something is wrong with my order.",
		Category: "orders",
		Priority: "urgent",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestGetTicketOwnerOrAdminOnly(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())

	ticket, err := uc.CreateTicket(context.Background(), "client-1", CreateTicketInput{
		Subject:  "Help",
		Message:  "Something is wrong with my order.",
		Category: "orders",
	})
	require.NoError(t, err)

	_, err = uc.GetTicket(context.Background(), ticket.ID, "client-2", entity.RoleClient)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.GetTicket(context.Background(), ticket.ID, "admin-1", entity.RoleAdmin)
	assert.NoError(t, err)

	_, err = uc.GetTicket(context.Background(), ticket.ID, "client-1", entity.RoleClient)
	assert.NoError(t, err)
}

func TestRespondAppendsAndRejectsClosed(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())

	ticket, err := uc.CreateTicket(context.Background(), "client-1", CreateTicketInput{
		Subject:  "Help",
		Message:  "Something is wrong with my order.",
		Category: "orders",
	})
	require.NoError(t, err)

	updated, err := uc.Respond(context.Background(), ticket.ID, "admin-1", entity.RoleAdmin, "Looking into it.")
	require.NoError(t, err)
	require.Len(t, updated.Responses, 1)
	assert.Equal(t, entity.RoleAdmin, updated.Responses[0].AuthorRole)

	_, err = uc.UpdateTicket(context.Background(), ticket.ID, entity.RoleAdmin, entity.TicketStatusClosed, "")
	require.NoError(t, err)

	_, err = uc.Respond(context.Background(), ticket.ID, "client-1", entity.RoleClient, "Any update?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestUpdateTicketAdminOnly(t *testing.T) {
	uc := NewTicketUseCase(newFakeTicketRepo())

	ticket, err := uc.CreateTicket(context.Background(), "client-1", CreateTicketInput{
		Subject:  "Help",
		Message:  "Something is wrong with my order.",
		Category: "orders",
	})
	require.NoError(t, err)

	_, err = uc.UpdateTicket(context.Background(), ticket.ID, entity.RoleCompany, entity.TicketStatusResolved, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.UpdateTicket(context.Background(), ticket.ID, entity.RoleAdmin, entity.TicketStatusResolved, entity.TicketPriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusResolved, updated.Status)
	assert.Equal(t, entity.TicketPriorityHigh, updated.Priority)
}
