package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"arbos/internal/domain"
	"arbos/internal/handler"
	"arbos/internal/middleware"
	"arbos/internal/service"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Project    *handler.ProjectHandler
	Tree       *handler.TreeHandler
	Note       *handler.NoteHandler
	Task       *handler.TaskHandler
	Report     *handler.ReportHandler
	Decompile  *handler.DecompileHandler
	Attachment *handler.AttachmentHandler
	Settings   *handler.SettingsHandler
	Export     *handler.ExportHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Unknown verbs on known routes answer 405 instead of 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public routes
	v1.POST("/decompile", h.Decompile.Decompile)
	v1.GET("/settings", h.Settings.List)
	v1.GET("/settings/:key", h.Settings.Get)

	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/forgot-password", h.Auth.ForgotPassword)
	auth.POST("/reset-password", h.Auth.ResetPassword)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.PUT("/settings/:key", h.Settings.Upsert)

	// User management
	users := protected.Group("/users")
	users.GET("/me", h.User.Me)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.PATCH("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Deactivate)

	// Projects and nested resources
	projects := protected.Group("/projects")
	projects.POST("", h.Project.Create)
	projects.GET("", h.Project.List)
	projects.GET("/:id", h.Project.GetByID)
	projects.PATCH("/:id", h.Project.Update)
	projects.DELETE("/:id", h.Project.Delete)

	projects.POST("/:id/trees", h.Tree.Create)
	projects.GET("/:id/trees", h.Tree.ListByProject)
	projects.GET("/:id/trees/export", h.Export.TreeSchedule)

	projects.POST("/:id/notes", h.Note.Create)
	projects.GET("/:id/notes", h.Note.ListByProject)

	projects.POST("/:id/tasks", h.Task.Create)
	projects.GET("/:id/tasks", h.Task.ListByProject)

	projects.POST("/:id/reports", h.Report.Create)
	projects.GET("/:id/reports", h.Report.ListByProject)

	projects.POST("/:id/attachments", h.Attachment.Upload)
	projects.GET("/:id/attachments", h.Attachment.ListByProject)

	// Trees
	trees := protected.Group("/trees")
	trees.GET("/:id", h.Tree.GetByID)
	trees.PATCH("/:id", h.Tree.Update)
	trees.DELETE("/:id", h.Tree.Delete)
	trees.GET("/:id/notes", h.Note.ListByTree)
	trees.GET("/:id/attachments", h.Attachment.ListByTree)

	// Notes
	notes := protected.Group("/notes")
	notes.GET("/:id", h.Note.GetByID)
	notes.PATCH("/:id", h.Note.Update)
	notes.DELETE("/:id", h.Note.Delete)

	// Tasks
	tasks := protected.Group("/tasks")
	tasks.GET("/:id", h.Task.GetByID)
	tasks.PATCH("/:id", h.Task.Update)
	tasks.DELETE("/:id", h.Task.Delete)

	// Reports
	protected.GET("/report-types", h.Report.ListTypes)
	reports := protected.Group("/reports")
	reports.GET("/:id", h.Report.GetByID)
	reports.PATCH("/:id", h.Report.Update)
	reports.DELETE("/:id", h.Report.Delete)
	reports.POST("/:id/decompile", h.Report.Decompile)
	reports.POST("/:id/enqueue", h.Report.Enqueue)
	reports.POST("/:id/export", h.Export.ReportPDF)

	// Attachments
	attachments := protected.Group("/attachments")
	attachments.GET("/:id/download", h.Attachment.Download)
	attachments.DELETE("/:id", h.Attachment.Delete)

	return r
}
