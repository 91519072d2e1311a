package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

func TestTicketLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(repository.NewTicketRepository(db))
	ctx := context.Background()

	ticket, err := svc.Create(ctx, "user-1", "Order never arrived", "It has been two weeks.")
	require.NoError(t, err)
	assert.Equal(t, model.TicketOpen, ticket.Status)

	require.NoError(t, svc.AddMessage(ctx, "agent-1", true, ticket.ID, "Looking into it."))
	require.NoError(t, svc.SetStatus(ctx, ticket.ID, model.TicketInProgress))

	loaded, err := svc.Get(ctx, "user-1", false, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TicketInProgress, loaded.Status)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, "It has been two weeks.", loaded.Messages[0].Body)
	assert.Equal(t, "agent-1", loaded.Messages[1].AuthorID)

	require.NoError(t, svc.SetStatus(ctx, ticket.ID, model.TicketClosed))
	err = svc.AddMessage(ctx, "user-1", false, ticket.ID, "Any update?")
	assert.ErrorIs(t, err, ErrTicketClosed)
}

func TestTicketOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(repository.NewTicketRepository(db))
	ctx := context.Background()

	ticket, err := svc.Create(ctx, "user-1", "Subject", "Body")
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-2", false, ticket.ID)
	assert.ErrorIs(t, err, ErrTicketForbidden)

	// Staff can read anyone's ticket.
	_, err = svc.Get(ctx, "agent-1", true, ticket.ID)
	assert.NoError(t, err)
}

func TestTicketValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(repository.NewTicketRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", "", "")
	assert.Error(t, err)

	_, err = svc.Get(ctx, "user-1", false, "missing")
	assert.ErrorIs(t, err, ErrTicketNotFound)

	err = svc.SetStatus(ctx, "missing", model.TicketStatus("NONSENSE"))
	assert.ErrorIs(t, err, ErrBadTicketStatus)
}
