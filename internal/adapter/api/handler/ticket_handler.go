package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/usecase"
	"arfurnish/pkg/response"
	"arfurnish/pkg/utils"
)

type TicketHandler struct {
	ticketUseCase *usecase.TicketUseCase
}

func NewTicketHandler(ticketUseCase *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{
		ticketUseCase: ticketUseCase,
	}
}

func (h *TicketHandler) CreateTicket(c echo.Context) error {
	var req struct {
		Subject  string `json:"subject" validate:"required,min=3"`
		Message  string `json:"message" validate:"required,min=10"`
		Category string `json:"category" validate:"required"`
		Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.ticketUseCase.CreateTicket(c.Request().Context(), currentUID(c), usecase.CreateTicketInput{
		Subject:  req.Subject,
		Message:  req.Message,
		Category: req.Category,
		Priority: req.Priority,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ticket)
}

func (h *TicketHandler) GetTicket(c echo.Context) error {
	ticket, err := h.ticketUseCase.GetTicket(c.Request().Context(), c.Param("ticketId"), currentUID(c), currentRole(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}

func (h *TicketHandler) ListMyTickets(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	tickets, total, err := h.ticketUseCase.ListMyTickets(c.Request().Context(), currentUID(c), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, tickets, total, params.Limit, params.Offset)
}

func (h *TicketHandler) ListAllTickets(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	tickets, total, err := h.ticketUseCase.ListAllTickets(c.Request().Context(), c.QueryParam("status"), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, tickets, total, params.Limit, params.Offset)
}

func (h *TicketHandler) Respond(c echo.Context) error {
	var req struct {
		Message string `json:"message" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.ticketUseCase.Respond(c.Request().Context(), c.Param("ticketId"), currentUID(c), currentRole(c), req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}

func (h *TicketHandler) UpdateTicket(c echo.Context) error {
	var req struct {
		Status   string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
		Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.ticketUseCase.UpdateTicket(c.Request().Context(), c.Param("ticketId"), currentRole(c), req.Status, req.Priority)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}
