package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// ColumnHandler handles column endpoints
type ColumnHandler struct {
	columnService service.ColumnService
}

// NewColumnHandler creates a new column handler
func NewColumnHandler(columnService service.ColumnService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService}
}

// GetColumns godoc
// @Summary      List columns on a board
// @Tags         columns
// @Produce      json
// @Security     BearerAuth
// @Param        boardId query string true "Board ID"
// @Success      200 {array} dto.ColumnResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /column [get]
func (h *ColumnHandler) GetColumns(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseScopeQuery(c, "boardId", "Board ID missing")
	if !ok {
		return
	}

	columns, err := h.columnService.GetColumns(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, err, "Error in column handler")
		return
	}

	c.JSON(http.StatusOK, columns)
}

// GetColumnByID godoc
// @Summary      Get one column
// @Tags         columns
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Column ID"
// @Success      200 {object} dto.ColumnResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /column/{id} [get]
func (h *ColumnHandler) GetColumnByID(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	column, err := h.columnService.GetColumnByID(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Error in column handler")
		return
	}

	c.JSON(http.StatusOK, column)
}

// CreateColumn godoc
// @Summary      Create a column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateColumnRequest true "Column data"
// @Success      201 {object} dto.ColumnResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /column [post]
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	column, err := h.columnService.CreateColumn(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "Error in column handler")
		return
	}

	c.JSON(http.StatusCreated, column)
}

// UpdateColumn godoc
// @Summary      Update a column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Column ID"
// @Param        request body dto.UpdateColumnRequest true "Fields to update"
// @Success      200 {object} dto.ColumnResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /column/{id} [put]
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	column, err := h.columnService.UpdateColumn(c.Request.Context(), userID, id, &req)
	if err != nil {
		handleServiceError(c, err, "Error in column handler")
		return
	}

	c.JSON(http.StatusOK, column)
}

// SoftDeleteColumn godoc
// @Summary      Soft delete a column
// @Tags         columns
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Column ID"
// @Success      200 {object} response.MessageResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /column/soft-delete/{id} [put]
func (h *ColumnHandler) SoftDeleteColumn(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.columnService.SoftDeleteColumn(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in column handler")
		return
	}

	response.SendMessage(c, http.StatusOK, "Column soft deleted")
}

// HardDeleteColumn godoc
// @Summary      Permanently delete a column
// @Tags         columns
// @Security     BearerAuth
// @Param        id path string true "Column ID"
// @Success      204 "No Content"
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /column/hard-delete/{id} [delete]
func (h *ColumnHandler) HardDeleteColumn(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.columnService.HardDeleteColumn(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in column handler")
		return
	}

	c.Status(http.StatusNoContent)
}
