package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

const integrationSecret = "integration-test-secret"

// setupIntegrationTestDB creates an in-memory SQLite database for integration testing
func setupIntegrationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "Failed to connect to test database")

	// Register callback to generate UUIDs for SQLite (since it doesn't support gen_random_uuid())
	db.Callback().Create().Before("gorm:create").Register("generate_uuid", func(db *gorm.DB) {
		if db.Statement.Schema != nil {
			for _, field := range db.Statement.Schema.PrimaryFields {
				if field.DataType == "uuid" {
					fieldValue := field.ReflectValueOf(db.Statement.Context, db.Statement.ReflectValue)
					if fieldValue.IsZero() {
						field.Set(db.Statement.Context, db.Statement.ReflectValue, uuid.New())
					}
				}
			}
		}
	})

	// Create tables manually for SQLite compatibility
	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE boards (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE columns (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			board_id TEXT NOT NULL,
			title TEXT NOT NULL,
			"index" INTEGER NOT NULL DEFAULT 0,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE tickets (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			column_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			ticket_id TEXT NOT NULL,
			title TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE attachments (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			ticket_id TEXT,
			status TEXT NOT NULL DEFAULT 'TEMP',
			file_name TEXT NOT NULL,
			file_key TEXT NOT NULL,
			file_size INTEGER NOT NULL,
			content_type TEXT NOT NULL,
			uploaded_by TEXT NOT NULL,
			expires_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, "Failed to create table")
	}

	return db
}

// setupIntegrationRouter wires real repositories, services and handlers onto
// a gin engine with the production route layout and auth middleware
func setupIntegrationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	mockS3 := client.NewMockS3Client()

	authService := service.NewAuthService(userRepo, nil, integrationSecret, time.Hour, nil)
	boardService := service.NewBoardService(boardRepo, nil)
	columnService := service.NewColumnService(columnRepo, boardRepo)
	ticketService := service.NewTicketService(ticketRepo, columnRepo, nil)
	taskService := service.NewTaskService(taskRepo, ticketRepo, nil)
	attachmentService := service.NewAttachmentService(attachmentRepo, ticketRepo, mockS3, nil)

	authHandler := NewAuthHandler(authService)
	boardHandler := NewBoardHandler(boardService)
	columnHandler := NewColumnHandler(columnService)
	ticketHandler := NewTicketHandler(ticketService)
	taskHandler := NewTaskHandler(taskService)
	attachmentHandler := NewAttachmentHandler(attachmentService)

	authRequired := middleware.Auth(integrationSecret, authService)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("", authRequired, authHandler.GetCurrentUser)
		auth.POST("/logout", authRequired, authHandler.Logout)
	}

	protected := api.Group("")
	protected.Use(authRequired)

	board := protected.Group("/board")
	{
		board.GET("", boardHandler.GetBoards)
		board.GET("/:id", boardHandler.GetBoardByID)
		board.POST("", boardHandler.CreateBoard)
		board.PUT("/:id", boardHandler.UpdateBoard)
		board.PUT("/soft-delete/:id", boardHandler.SoftDeleteBoard)
		board.DELETE("/hard-delete/:id", boardHandler.HardDeleteBoard)
	}

	column := protected.Group("/column")
	{
		column.GET("", columnHandler.GetColumns)
		column.GET("/:id", columnHandler.GetColumnByID)
		column.POST("", columnHandler.CreateColumn)
		column.PUT("/:id", columnHandler.UpdateColumn)
		column.PUT("/soft-delete/:id", columnHandler.SoftDeleteColumn)
		column.DELETE("/hard-delete/:id", columnHandler.HardDeleteColumn)
	}

	ticket := protected.Group("/ticket")
	{
		ticket.GET("", ticketHandler.GetTickets)
		ticket.GET("/:id", ticketHandler.GetTicketByID)
		ticket.POST("", ticketHandler.CreateTicket)
		ticket.PUT("/:id", ticketHandler.UpdateTicket)
		ticket.PUT("/soft-delete/:id", ticketHandler.SoftDeleteTicket)
		ticket.DELETE("/hard-delete/:id", ticketHandler.HardDeleteTicket)

		ticket.POST("/:id/attachments/presigned-url", attachmentHandler.GeneratePresignedURL)
		ticket.POST("/:id/attachments", attachmentHandler.ConfirmAttachment)
		ticket.GET("/:id/attachments", attachmentHandler.ListAttachments)
	}

	task := protected.Group("/task")
	{
		task.GET("", taskHandler.GetTasks)
		task.GET("/:id", taskHandler.GetTaskByID)
		task.POST("", taskHandler.CreateTask)
		task.PUT("/:id", taskHandler.UpdateTask)
		task.PUT("/soft-delete/:id", taskHandler.SoftDeleteTask)
		task.DELETE("/hard-delete/:id", taskHandler.HardDeleteTask)
	}

	protected.DELETE("/attachment/:id", attachmentHandler.DeleteAttachment)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "Response body: %s", w.Body.String())
}

func registerUser(t *testing.T, r *gin.Engine, email string) (uuid.UUID, string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:    email,
		Password: "hunter2hunter2",
		Name:     "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())

	var resp dto.AuthResponse
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.User.ID, resp.Token
}

func createBoardViaAPI(t *testing.T, r *gin.Engine, token, title string) dto.BoardResponse {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/board", token, dto.CreateBoardRequest{Title: title})
	require.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())

	var board dto.BoardResponse
	decodeJSON(t, w, &board)
	return board
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	db := setupIntegrationTestDB(t)
	r := setupIntegrationRouter(db)

	_, token := registerUser(t, r, "jane@example.com")

	// duplicate registration is rejected
	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
		Name:     "Jane Again",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp response.ErrorResponse
	decodeJSON(t, w, &errResp)
	assert.Equal(t, "Email already registered", errResp.Message)

	// login with the right password
	w = doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var authResp dto.AuthResponse
	decodeJSON(t, w, &authResp)
	assert.Equal(t, "jane@example.com", authResp.User.Email)
	assert.NotEmpty(t, authResp.Token)

	// login with the wrong password
	w = doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	decodeJSON(t, w, &errResp)
	assert.Equal(t, "Invalid credentials", errResp.Message)

	// current user with a valid token
	w = doRequest(t, r, http.MethodGet, "/api/v1/auth", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var user dto.UserResponse
	decodeJSON(t, w, &user)
	assert.Equal(t, "jane@example.com", user.Email)

	// protected route without a token
	w = doRequest(t, r, http.MethodGet, "/api/v1/board", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	decodeJSON(t, w, &errResp)
	assert.Equal(t, "Authentication required", errResp.Message)
}

func TestIntegration_BoardLifecycle(t *testing.T) {
	db := setupIntegrationTestDB(t)
	r := setupIntegrationRouter(db)

	_, token := registerUser(t, r, "owner@example.com")

	// empty list before any boards exist
	w := doRequest(t, r, http.MethodGet, "/api/v1/board", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(w.Body.Bytes())))

	board := createBoardViaAPI(t, r, token, "Sprint 12")
	assert.False(t, board.IsDeleted)
	assert.NotNil(t, board.Columns)

	// rename
	newTitle := "Sprint 13"
	w = doRequest(t, r, http.MethodPut, "/api/v1/board/"+board.ID.String(), token, dto.UpdateBoardRequest{Title: &newTitle})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated dto.BoardResponse
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Sprint 13", updated.Title)

	// update without any fields
	w = doRequest(t, r, http.MethodPut, "/api/v1/board/"+board.ID.String(), token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp response.ErrorResponse
	decodeJSON(t, w, &errResp)
	assert.Equal(t, "No data provided", errResp.Message)

	// soft delete hides the board from reads
	w = doRequest(t, r, http.MethodPut, "/api/v1/board/soft-delete/"+board.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var msg response.MessageResponse
	decodeJSON(t, w, &msg)
	assert.Equal(t, "Board soft deleted", msg.Message)

	w = doRequest(t, r, http.MethodGet, "/api/v1/board/"+board.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/board", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(w.Body.Bytes())))

	// soft delete is idempotent
	w = doRequest(t, r, http.MethodPut, "/api/v1/board/soft-delete/"+board.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// hard delete removes the row
	w = doRequest(t, r, http.MethodDelete, "/api/v1/board/hard-delete/"+board.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/v1/board/hard-delete/"+board.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_OwnershipScoping(t *testing.T) {
	db := setupIntegrationTestDB(t)
	r := setupIntegrationRouter(db)

	_, ownerToken := registerUser(t, r, "owner@example.com")
	_, strangerToken := registerUser(t, r, "stranger@example.com")

	board := createBoardViaAPI(t, r, ownerToken, "Private Board")

	// another user's reads and mutations behave as not found
	w := doRequest(t, r, http.MethodGet, "/api/v1/board/"+board.ID.String(), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	title := "Hijacked"
	w = doRequest(t, r, http.MethodPut, "/api/v1/board/"+board.ID.String(), strangerToken, dto.UpdateBoardRequest{Title: &title})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/v1/board/hard-delete/"+board.ID.String(), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the board is untouched for its owner
	w = doRequest(t, r, http.MethodGet, "/api/v1/board/"+board.ID.String(), ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched dto.BoardResponse
	decodeJSON(t, w, &fetched)
	assert.Equal(t, "Private Board", fetched.Title)
}

func TestIntegration_FullHierarchy(t *testing.T) {
	db := setupIntegrationTestDB(t)
	r := setupIntegrationRouter(db)

	_, token := registerUser(t, r, "owner@example.com")
	board := createBoardViaAPI(t, r, token, "Roadmap")

	// column under the board
	w := doRequest(t, r, http.MethodPost, "/api/v1/column", token, dto.CreateColumnRequest{
		BoardID: board.ID,
		Title:   "To Do",
		Index:   0,
	})
	require.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())

	var column dto.ColumnResponse
	decodeJSON(t, w, &column)
	assert.Equal(t, board.ID, column.BoardID)

	// column list requires the board scope
	w = doRequest(t, r, http.MethodGet, "/api/v1/column", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp response.ErrorResponse
	decodeJSON(t, w, &errResp)
	assert.Equal(t, "Board ID missing", errResp.Message)

	w = doRequest(t, r, http.MethodGet, "/api/v1/column?boardId="+board.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var columns []dto.ColumnResponse
	decodeJSON(t, w, &columns)
	require.Len(t, columns, 1)

	// ticket under the column
	w = doRequest(t, r, http.MethodPost, "/api/v1/ticket", token, dto.CreateTicketRequest{
		ColumnID:    column.ID,
		Title:       "Fix login flow",
		Description: "Session cookie expires too early",
	})
	require.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())

	var ticket dto.TicketResponse
	decodeJSON(t, w, &ticket)
	assert.Equal(t, column.ID, ticket.ColumnID)

	// creating a ticket under an unknown column fails
	w = doRequest(t, r, http.MethodPost, "/api/v1/ticket", token, dto.CreateTicketRequest{
		ColumnID: uuid.New(),
		Title:    "Orphan",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// task under the ticket
	w = doRequest(t, r, http.MethodPost, "/api/v1/task", token, dto.CreateTaskRequest{
		TicketID: ticket.ID,
		Title:    "Write migration",
	})
	require.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())

	var task dto.TaskResponse
	decodeJSON(t, w, &task)
	assert.False(t, task.Completed)

	// completing the task leaves the title untouched
	completed := true
	w = doRequest(t, r, http.MethodPut, "/api/v1/task/"+task.ID.String(), token, dto.UpdateTaskRequest{Completed: &completed})
	assert.Equal(t, http.StatusOK, w.Code)

	var updatedTask dto.TaskResponse
	decodeJSON(t, w, &updatedTask)
	assert.True(t, updatedTask.Completed)
	assert.Equal(t, "Write migration", updatedTask.Title)

	// ticket fetch preloads its live tasks
	w = doRequest(t, r, http.MethodGet, "/api/v1/ticket/"+ticket.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fetchedTicket dto.TicketResponse
	decodeJSON(t, w, &fetchedTicket)
	require.Len(t, fetchedTicket.Tasks, 1)
	assert.True(t, fetchedTicket.Tasks[0].Completed)

	// soft-deleting the task hides it from the ticket
	w = doRequest(t, r, http.MethodPut, "/api/v1/task/soft-delete/"+task.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/ticket/"+ticket.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &fetchedTicket)
	assert.Len(t, fetchedTicket.Tasks, 0)
}

func TestIntegration_AttachmentFlow(t *testing.T) {
	db := setupIntegrationTestDB(t)
	r := setupIntegrationRouter(db)

	_, token := registerUser(t, r, "owner@example.com")
	board := createBoardViaAPI(t, r, token, "Roadmap")

	w := doRequest(t, r, http.MethodPost, "/api/v1/column", token, dto.CreateColumnRequest{
		BoardID: board.ID,
		Title:   "To Do",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var column dto.ColumnResponse
	decodeJSON(t, w, &column)

	w = doRequest(t, r, http.MethodPost, "/api/v1/ticket", token, dto.CreateTicketRequest{
		ColumnID: column.ID,
		Title:    "Attach things here",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var ticket dto.TicketResponse
	decodeJSON(t, w, &ticket)

	// request an upload slot
	w = doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/v1/ticket/%s/attachments/presigned-url", ticket.ID), token, dto.PresignedURLRequest{
		FileName:    "diagram.png",
		ContentType: "image/png",
		FileSize:    20480,
	})
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var presigned dto.PresignedURLResponse
	decodeJSON(t, w, &presigned)
	assert.NotEmpty(t, presigned.UploadURL)

	// unconfirmed uploads are not listed
	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/ticket/%s/attachments", ticket.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(w.Body.Bytes())))

	// confirm the upload
	w = doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/v1/ticket/%s/attachments", ticket.ID), token, dto.ConfirmAttachmentRequest{
		AttachmentID: presigned.AttachmentID,
	})
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var attachment dto.AttachmentResponse
	decodeJSON(t, w, &attachment)
	assert.Equal(t, "diagram.png", attachment.FileName)
	assert.NotEmpty(t, attachment.FileURL)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/ticket/%s/attachments", ticket.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var attachments []dto.AttachmentResponse
	decodeJSON(t, w, &attachments)
	require.Len(t, attachments, 1)

	// confirming the same slot twice fails
	w = doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/v1/ticket/%s/attachments", ticket.ID), token, dto.ConfirmAttachmentRequest{
		AttachmentID: presigned.AttachmentID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// delete removes the attachment
	w = doRequest(t, r, http.MethodDelete, "/api/v1/attachment/"+attachment.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/ticket/%s/attachments", ticket.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(w.Body.Bytes())))
}
