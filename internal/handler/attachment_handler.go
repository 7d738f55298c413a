package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// AttachmentHandler handles ticket attachment endpoints
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// GeneratePresignedURL godoc
// @Summary      Request an upload URL for a ticket attachment
// @Description  Returns a presigned PUT URL; the upload must be confirmed afterwards
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ticket ID"
// @Param        request body dto.PresignedURLRequest true "File metadata"
// @Success      200 {object} dto.PresignedURLResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /ticket/{id}/attachments/presigned-url [post]
func (h *AttachmentHandler) GeneratePresignedURL(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	ticketID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.attachmentService.GeneratePresignedURL(c.Request.Context(), userID, ticketID, &req)
	if err != nil {
		handleServiceError(c, err, "Error in attachment handler")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ConfirmAttachment godoc
// @Summary      Confirm an uploaded attachment
// @Description  Binds a previously presigned upload to the ticket
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ticket ID"
// @Param        request body dto.ConfirmAttachmentRequest true "Attachment to confirm"
// @Success      200 {object} dto.AttachmentResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /ticket/{id}/attachments [post]
func (h *AttachmentHandler) ConfirmAttachment(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	ticketID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ConfirmAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.attachmentService.ConfirmAttachment(c.Request.Context(), userID, ticketID, req.AttachmentID)
	if err != nil {
		handleServiceError(c, err, "Error in attachment handler")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAttachments godoc
// @Summary      List confirmed attachments on a ticket
// @Tags         attachments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ticket ID"
// @Success      200 {array} dto.AttachmentResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /ticket/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	ticketID, ok := parseIDParam(c)
	if !ok {
		return
	}

	attachments, err := h.attachmentService.ListAttachments(c.Request.Context(), userID, ticketID)
	if err != nil {
		handleServiceError(c, err, "Error in attachment handler")
		return
	}

	c.JSON(http.StatusOK, attachments)
}

// DeleteAttachment godoc
// @Summary      Delete an attachment
// @Description  Removes the stored object and its metadata
// @Tags         attachments
// @Security     BearerAuth
// @Param        id path string true "Attachment ID"
// @Success      204 "No Content"
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      503 {object} response.ErrorResponse
// @Router       /attachment/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in attachment handler")
		return
	}

	c.Status(http.StatusNoContent)
}
