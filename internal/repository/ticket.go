package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.SupportTicket) error
	FindByID(ctx context.Context, ticketID string) (*model.SupportTicket, error)
	ListByUser(ctx context.Context, userID string) ([]*model.SupportTicket, error)
	ListAll(ctx context.Context) ([]*model.SupportTicket, error)
	AddMessage(ctx context.Context, message *model.TicketMessage) error
	UpdateStatus(ctx context.Context, ticketID string, status model.TicketStatus) error
}

type ticketRepoImpl struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepoImpl{
		db: db,
	}
}

func (r *ticketRepoImpl) Create(ctx context.Context, ticket *model.SupportTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepoImpl) FindByID(ctx context.Context, ticketID string) (*model.SupportTicket, error) {
	var ticket model.SupportTicket
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", ticketID).
		First(&ticket).Error

	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *ticketRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.SupportTicket, error) {
	var tickets []*model.SupportTicket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&tickets).Error

	if err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *ticketRepoImpl) ListAll(ctx context.Context) ([]*model.SupportTicket, error) {
	var tickets []*model.SupportTicket
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&tickets).Error

	if err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *ticketRepoImpl) AddMessage(ctx context.Context, message *model.TicketMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}

		return tx.Model(&model.SupportTicket{}).
			Where("id = ?", message.TicketID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *ticketRepoImpl) UpdateStatus(ctx context.Context, ticketID string, status model.TicketStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.SupportTicket{}).
		Where("id = ?", ticketID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
