package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// TicketHandler handles ticket endpoints
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// GetTickets godoc
// @Summary      List tickets in a column
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        columnId query string true "Column ID"
// @Success      200 {array} dto.TicketResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /ticket [get]
func (h *TicketHandler) GetTickets(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	columnID, ok := parseScopeQuery(c, "columnId", "Column ID missing")
	if !ok {
		return
	}

	tickets, err := h.ticketService.GetTickets(c.Request.Context(), userID, columnID)
	if err != nil {
		handleServiceError(c, err, "Error in ticket handler")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// GetTicketByID godoc
// @Summary      Get one ticket
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ticket ID"
// @Success      200 {object} dto.TicketResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /ticket/{id} [get]
func (h *TicketHandler) GetTicketByID(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicketByID(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Error in ticket handler")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// CreateTicket godoc
// @Summary      Create a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateTicketRequest true "Ticket data"
// @Success      201 {object} dto.TicketResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /ticket [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "Error in ticket handler")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// UpdateTicket godoc
// @Summary      Update a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ticket ID"
// @Param        request body dto.UpdateTicketRequest true "Fields to update"
// @Success      200 {object} dto.TicketResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /ticket/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), userID, id, &req)
	if err != nil {
		handleServiceError(c, err, "Error in ticket handler")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// SoftDeleteTicket godoc
// @Summary      Soft delete a ticket
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ticket ID"
// @Success      200 {object} response.MessageResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /ticket/soft-delete/{id} [put]
func (h *TicketHandler) SoftDeleteTicket(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ticketService.SoftDeleteTicket(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in ticket handler")
		return
	}

	response.SendMessage(c, http.StatusOK, "Ticket soft deleted")
}

// HardDeleteTicket godoc
// @Summary      Permanently delete a ticket
// @Tags         tickets
// @Security     BearerAuth
// @Param        id path string true "Ticket ID"
// @Success      204 "No Content"
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /ticket/hard-delete/{id} [delete]
func (h *TicketHandler) HardDeleteTicket(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ticketService.HardDeleteTicket(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in ticket handler")
		return
	}

	c.Status(http.StatusNoContent)
}
