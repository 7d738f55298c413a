package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// TaskHandler handles checklist task endpoints
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GetTasks godoc
// @Summary      List tasks on a ticket
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        ticketId query string true "Ticket ID"
// @Success      200 {array} dto.TaskResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /task [get]
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	ticketID, ok := parseScopeQuery(c, "ticketId", "Ticket ID missing")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasks(c.Request.Context(), userID, ticketID)
	if err != nil {
		handleServiceError(c, err, "Error in task handler")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID godoc
// @Summary      Get one task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      200 {object} dto.TaskResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /task/{id} [get]
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Error in task handler")
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateTaskRequest true "Task data"
// @Success      201 {object} dto.TaskResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /task [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "Error in task handler")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Partial update; sending only completed leaves the title untouched
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Param        request body dto.UpdateTaskRequest true "Fields to update"
// @Success      200 {object} dto.TaskResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /task/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, id, &req)
	if err != nil {
		handleServiceError(c, err, "Error in task handler")
		return
	}

	c.JSON(http.StatusOK, task)
}

// SoftDeleteTask godoc
// @Summary      Soft delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      200 {object} response.MessageResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /task/soft-delete/{id} [put]
func (h *TaskHandler) SoftDeleteTask(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.SoftDeleteTask(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in task handler")
		return
	}

	response.SendMessage(c, http.StatusOK, "Task soft deleted")
}

// HardDeleteTask godoc
// @Summary      Permanently delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      204 "No Content"
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /task/hard-delete/{id} [delete]
func (h *TaskHandler) HardDeleteTask(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.HardDeleteTask(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Error in task handler")
		return
	}

	c.Status(http.StatusNoContent)
}
