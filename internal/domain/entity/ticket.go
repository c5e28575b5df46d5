package entity

import (
	"time"
)

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
)

type TicketResponse struct {
	AuthorID   string    `json:"author_id" firestore:"authorId"`
	AuthorRole Role      `json:"author_role" firestore:"authorRole"`
	Message    string    `json:"message" firestore:"message"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

type SupportTicket struct {
	ID        string           `json:"id" firestore:"id"`
	UserID    string           `json:"user_id" firestore:"userId"`
	Subject   string           `json:"subject" firestore:"subject"`
	Message   string           `json:"message" firestore:"message"`
	Category  string           `json:"category" firestore:"category"`
	Priority  string           `json:"priority" firestore:"priority"`
	Status    string           `json:"status" firestore:"status"`
	Responses []TicketResponse `json:"responses" firestore:"responses"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidTicketStatus(s string) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

func ValidTicketPriority(p string) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}
