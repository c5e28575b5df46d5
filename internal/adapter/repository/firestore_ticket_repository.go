package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
)

type firestoreTicketRepository struct {
	client *firestore.Client
}

func NewFirestoreTicketRepository(client *firestore.Client) repository.TicketRepository {
	return &firestoreTicketRepository{client: client}
}

func (r *firestoreTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	if ticket.ID == "" {
		doc := r.client.Collection("supportTickets").NewDoc()
		ticket.ID = doc.ID
	}

	now := time.Now()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	ticket.UpdatedAt = now

	_, err := r.client.Collection("supportTickets").Doc(ticket.ID).Set(ctx, ticket)
	if err != nil {
		return errors.Internal("Failed to create support ticket", err)
	}

	return nil
}

func (r *firestoreTicketRepository) GetByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	doc, err := r.client.Collection("supportTickets").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Support ticket", err)
		}
		return nil, errors.Internal("Failed to get support ticket", err)
	}

	var ticket entity.SupportTicket
	if err := doc.DataTo(&ticket); err != nil {
		return nil, errors.Internal("Failed to parse support ticket data", err)
	}

	return &ticket, nil
}

func (r *firestoreTicketRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.SupportTicket, int64, error) {
	query := r.client.Collection("supportTickets").Query.Where("userId", "==", userID)
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreTicketRepository) ListAll(ctx context.Context, status string, limit, offset int) ([]*entity.SupportTicket, int64, error) {
	query := r.client.Collection("supportTickets").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}
	return r.list(ctx, query, limit, offset)
}

func (r *firestoreTicketRepository) list(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.SupportTicket, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count support tickets", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var tickets []*entity.SupportTicket
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate support tickets", err)
		}
		var ticket entity.SupportTicket
		if err := doc.DataTo(&ticket); err != nil {
			return nil, 0, errors.Internal("Failed to parse support ticket data", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, total, nil
}

func (r *firestoreTicketRepository) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	ticket.UpdatedAt = time.Now()

	_, err := r.client.Collection("supportTickets").Doc(ticket.ID).Set(ctx, ticket)
	if err != nil {
		return errors.Internal("Failed to update support ticket", err)
	}

	return nil
}
