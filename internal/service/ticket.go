package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrTicketForbidden = errors.New("ticket belongs to another user")
	ErrBadTicketStatus = errors.New("invalid ticket status")
	ErrTicketClosed    = errors.New("ticket is closed")
)

type TicketService interface {
	Create(ctx context.Context, userID string, subject, body string) (*model.SupportTicket, error)
	Get(ctx context.Context, userID string, staff bool, ticketID string) (*model.SupportTicket, error)
	ListForUser(ctx context.Context, userID string) ([]*model.SupportTicket, error)
	ListAll(ctx context.Context) ([]*model.SupportTicket, error)
	AddMessage(ctx context.Context, userID string, staff bool, ticketID, body string) error
	SetStatus(ctx context.Context, ticketID string, status model.TicketStatus) error
}

type ticketServiceImpl struct {
	ticketRepo repository.TicketRepository
}

func NewTicketService(ticketRepo repository.TicketRepository) TicketService {
	return &ticketServiceImpl{
		ticketRepo: ticketRepo,
	}
}

func (s *ticketServiceImpl) Create(ctx context.Context, userID, subject, body string) (*model.SupportTicket, error) {
	if subject == "" || body == "" {
		return nil, fmt.Errorf("subject and body are required")
	}

	ticket := &model.SupportTicket{
		ID:      uuid.NewString(),
		UserID:  userID,
		Subject: subject,
		Status:  model.TicketOpen,
		Messages: []model.TicketMessage{
			{AuthorID: userID, Body: body},
		},
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("store ticket: %w", err)
	}

	return ticket, nil
}

func (s *ticketServiceImpl) Get(ctx context.Context, userID string, staff bool, ticketID string) (*model.SupportTicket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if !staff && ticket.UserID != userID {
		return nil, ErrTicketForbidden
	}

	return ticket, nil
}

func (s *ticketServiceImpl) ListForUser(ctx context.Context, userID string) ([]*model.SupportTicket, error) {
	return s.ticketRepo.ListByUser(ctx, userID)
}

func (s *ticketServiceImpl) ListAll(ctx context.Context) ([]*model.SupportTicket, error) {
	return s.ticketRepo.ListAll(ctx)
}

func (s *ticketServiceImpl) AddMessage(ctx context.Context, userID string, staff bool, ticketID, body string) error {
	if body == "" {
		return fmt.Errorf("message body is required")
	}

	ticket, err := s.Get(ctx, userID, staff, ticketID)
	if err != nil {
		return err
	}
	if ticket.Status == model.TicketClosed {
		return ErrTicketClosed
	}

	return s.ticketRepo.AddMessage(ctx, &model.TicketMessage{
		TicketID: ticketID,
		AuthorID: userID,
		Body:     body,
	})
}

func (s *ticketServiceImpl) SetStatus(ctx context.Context, ticketID string, status model.TicketStatus) error {
	switch status {
	case model.TicketOpen, model.TicketInProgress, model.TicketClosed:
	default:
		return ErrBadTicketStatus
	}

	err := s.ticketRepo.UpdateStatus(ctx, ticketID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTicketNotFound
	}
	return err
}
