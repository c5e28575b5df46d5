package repository

import (
	"context"

	"arfurnish/internal/domain/entity"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	GetByID(ctx context.Context, id string) (*entity.SupportTicket, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.SupportTicket, int64, error)
	ListAll(ctx context.Context, status string, limit, offset int) ([]*entity.SupportTicket, int64, error)
	Update(ctx context.Context, ticket *entity.SupportTicket) error
}
