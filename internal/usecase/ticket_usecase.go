package usecase

import (
	"context"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
)

type TicketUseCase struct {
	ticketRepo repository.TicketRepository
}

func NewTicketUseCase(ticketRepo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{
		ticketRepo: ticketRepo,
	}
}

type CreateTicketInput struct {
	Subject  string
	Message  string
	Category string
	Priority string
}

func (uc *TicketUseCase) CreateTicket(ctx context.Context, userID string, input CreateTicketInput) (*entity.SupportTicket, error) {
	priority := input.Priority
	if priority == "" {
		priority = entity.TicketPriorityMedium
	}
	if !entity.ValidTicketPriority(priority) {
		return nil, errors.BadRequest("Invalid ticket priority", nil)
	}

	now := time.Now()
	ticket := &entity.SupportTicket{
		UserID:    userID,
		Subject:   input.Subject,
		Message:   input.Message,
		Category:  input.Category,
		Priority:  priority,
		Status:    entity.TicketStatusOpen,
		Responses: []entity.TicketResponse{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// GetTicket enforces that only the owner or an admin can read a ticket.
func (uc *TicketUseCase) GetTicket(ctx context.Context, ticketID, actorID string, actorRole entity.Role) (*entity.SupportTicket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.UserID != actorID && actorRole != entity.RoleAdmin {
		return nil, errors.Forbidden("You don't have permission to view this ticket", nil)
	}

	return ticket, nil
}

func (uc *TicketUseCase) ListMyTickets(ctx context.Context, userID string, limit, offset int) ([]*entity.SupportTicket, int64, error) {
	return uc.ticketRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *TicketUseCase) ListAllTickets(ctx context.Context, status string, limit, offset int) ([]*entity.SupportTicket, int64, error) {
	if status != "" && !entity.ValidTicketStatus(status) {
		return nil, 0, errors.BadRequest("Invalid ticket status filter", nil)
	}
	return uc.ticketRepo.ListAll(ctx, status, limit, offset)
}

func (uc *TicketUseCase) Respond(ctx context.Context, ticketID, actorID string, actorRole entity.Role, message string) (*entity.SupportTicket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.UserID != actorID && actorRole != entity.RoleAdmin {
		return nil, errors.Forbidden("You don't have permission to respond to this ticket", nil)
	}

	if ticket.Status == entity.TicketStatusClosed {
		return nil, errors.BadRequest("Ticket is closed", nil)
	}

	ticket.Responses = append(ticket.Responses, entity.TicketResponse{
		AuthorID:   actorID,
		AuthorRole: actorRole,
		Message:    message,
		CreatedAt:  time.Now(),
	})

	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// UpdateTicket changes status and/or priority; admin only, enforced at
// the route level and re-checked here.
func (uc *TicketUseCase) UpdateTicket(ctx context.Context, ticketID string, actorRole entity.Role, status, priority string) (*entity.SupportTicket, error) {
	if actorRole != entity.RoleAdmin {
		return nil, errors.Forbidden("Only admins can update ticket status or priority", nil)
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if status != "" {
		if !entity.ValidTicketStatus(status) {
			return nil, errors.BadRequest("Invalid ticket status", nil)
		}
		ticket.Status = status
	}

	if priority != "" {
		if !entity.ValidTicketPriority(priority) {
			return nil, errors.BadRequest("Invalid ticket priority", nil)
		}
		ticket.Priority = priority
	}

	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}
