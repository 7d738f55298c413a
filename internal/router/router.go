package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "kanban-board-api/docs"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
)

// Dependencies carries everything the router wires together
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	AuthHandler       *handler.AuthHandler
	BoardHandler      *handler.BoardHandler
	ColumnHandler     *handler.ColumnHandler
	TicketHandler     *handler.TicketHandler
	TaskHandler       *handler.TaskHandler
	AttachmentHandler *handler.AttachmentHandler

	// TokenVerifier rejects revoked tokens; nil disables the check
	TokenVerifier middleware.TokenVerifier
}

// Setup builds the gin engine with middleware, operational endpoints and
// the versioned API routes
func Setup(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode != "" {
		gin.SetMode(deps.Config.Server.Mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORS())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if !database.IsConnected() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.Auth(deps.Config.JWT.Secret, deps.TokenVerifier)

	api := r.Group(deps.Config.Server.BasePath)

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
		auth.GET("", authRequired, deps.AuthHandler.GetCurrentUser)
		auth.POST("/logout", authRequired, deps.AuthHandler.Logout)
	}

	protected := api.Group("")
	protected.Use(authRequired)

	board := protected.Group("/board")
	{
		board.GET("", deps.BoardHandler.GetBoards)
		board.GET("/:id", deps.BoardHandler.GetBoardByID)
		board.POST("", deps.BoardHandler.CreateBoard)
		board.PUT("/:id", deps.BoardHandler.UpdateBoard)
		board.PUT("/soft-delete/:id", deps.BoardHandler.SoftDeleteBoard)
		board.DELETE("/hard-delete/:id", deps.BoardHandler.HardDeleteBoard)
	}

	column := protected.Group("/column")
	{
		column.GET("", deps.ColumnHandler.GetColumns)
		column.GET("/:id", deps.ColumnHandler.GetColumnByID)
		column.POST("", deps.ColumnHandler.CreateColumn)
		column.PUT("/:id", deps.ColumnHandler.UpdateColumn)
		column.PUT("/soft-delete/:id", deps.ColumnHandler.SoftDeleteColumn)
		column.DELETE("/hard-delete/:id", deps.ColumnHandler.HardDeleteColumn)
	}

	ticket := protected.Group("/ticket")
	{
		ticket.GET("", deps.TicketHandler.GetTickets)
		ticket.GET("/:id", deps.TicketHandler.GetTicketByID)
		ticket.POST("", deps.TicketHandler.CreateTicket)
		ticket.PUT("/:id", deps.TicketHandler.UpdateTicket)
		ticket.PUT("/soft-delete/:id", deps.TicketHandler.SoftDeleteTicket)
		ticket.DELETE("/hard-delete/:id", deps.TicketHandler.HardDeleteTicket)

		ticket.POST("/:id/attachments/presigned-url", deps.AttachmentHandler.GeneratePresignedURL)
		ticket.POST("/:id/attachments", deps.AttachmentHandler.ConfirmAttachment)
		ticket.GET("/:id/attachments", deps.AttachmentHandler.ListAttachments)
	}

	task := protected.Group("/task")
	{
		task.GET("", deps.TaskHandler.GetTasks)
		task.GET("/:id", deps.TaskHandler.GetTaskByID)
		task.POST("", deps.TaskHandler.CreateTask)
		task.PUT("/:id", deps.TaskHandler.UpdateTask)
		task.PUT("/soft-delete/:id", deps.TaskHandler.SoftDeleteTask)
		task.DELETE("/hard-delete/:id", deps.TaskHandler.HardDeleteTask)
	}

	protected.DELETE("/attachment/:id", deps.AttachmentHandler.DeleteAttachment)

	return r
}
