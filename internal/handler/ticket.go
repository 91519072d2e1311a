package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/model"
	"storefront-backend/internal/service"
)

type TicketHandler struct {
	ticketService service.TicketService
}

func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

func (h *TicketHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	claims := middleware.ClaimsFrom(c)

	var req dto.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	ticket, err := h.ticketService.Create(ctx, claims.UserID, req.Subject, req.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	claims := middleware.ClaimsFrom(c)

	if middleware.IsStaff(claims) {
		tickets, err := h.ticketService.ListAll(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, tickets)
	}

	tickets, err := h.ticketService.ListForUser(ctx, claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	claims := middleware.ClaimsFrom(c)

	ticket, err := h.ticketService.Get(ctx, claims.UserID, middleware.IsStaff(claims), c.Param("id"))
	if err != nil {
		return ticketError(err)
	}

	return c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) AddMessage(c echo.Context) error {
	ctx := c.Request().Context()
	claims := middleware.ClaimsFrom(c)

	var req dto.TicketMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	err := h.ticketService.AddMessage(ctx, claims.UserID, middleware.IsStaff(claims), c.Param("id"), req.Body)
	if err != nil {
		if errors.Is(err, service.ErrTicketClosed) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return ticketError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TicketHandler) SetStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.TicketStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	err := h.ticketService.SetStatus(ctx, c.Param("id"), model.TicketStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrBadTicketStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return ticketError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func ticketError(err error) error {
	switch {
	case errors.Is(err, service.ErrTicketNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTicketForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return err
	}
}
