package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// BoardHandler handles board endpoints
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// GetBoards godoc
// @Summary      List the caller's boards
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BoardResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /board [get]
func (h *BoardHandler) GetBoards(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	boards, err := h.boardService.GetBoards(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Error in board handler")
		return
	}

	c.JSON(http.StatusOK, boards)
}

// GetBoardByID godoc
// @Summary      Get one board with its columns
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID"
// @Success      200 {object} dto.BoardResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /board/{id} [get]
func (h *BoardHandler) GetBoardByID(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	board, err := h.boardService.GetBoardByID(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Error in board handler")
		return
	}

	c.JSON(http.StatusOK, board)
}

// CreateBoard godoc
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBoardRequest true "Board data"
// @Success      201 {object} dto.BoardResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /board [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "Error in board handler")
		return
	}

	c.JSON(http.StatusCreated, board)
}

// UpdateBoard godoc
// @Summary      Update a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID"
// @Param        request body dto.UpdateBoardRequest true "Fields to update"
// @Success      200 {object} dto.BoardResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /board/{id} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), userID, id, &req)
	if err != nil {
		handleServiceError(c, err, "Error in board handler")
		return
	}

	c.JSON(http.StatusOK, board)
}

// SoftDeleteBoard godoc
// @Summary      Soft delete a board
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID"
// @Success      200 {object} response.MessageResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /board/soft-delete/{id} [put]
func (h *BoardHandler) SoftDeleteBoard(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.boardService.SoftDeleteBoard(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in board handler")
		return
	}

	response.SendMessage(c, http.StatusOK, "Board soft deleted")
}

// HardDeleteBoard godoc
// @Summary      Permanently delete a board
// @Tags         boards
// @Security     BearerAuth
// @Param        id path string true "Board ID"
// @Success      204 "No Content"
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /board/hard-delete/{id} [delete]
func (h *BoardHandler) HardDeleteBoard(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.boardService.HardDeleteBoard(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in board handler")
		return
	}

	c.Status(http.StatusNoContent)
}
