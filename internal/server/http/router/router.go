package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/server/http/handlers"
	"github.com/itlabs/orderflow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderFlowFacade, cronSecret string, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	clientHandler := handlers.NewClientHandler(facade)
	statusHandler := handlers.NewStatusHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	milestoneHandler := handlers.NewMilestoneHandler(facade)
	invoiceHandler := handlers.NewInvoiceHandler(facade)
	proposalHandler := handlers.NewProposalHandler(facade)
	ticketHandler := handlers.NewTicketHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	timeEntryHandler := handlers.NewTimeEntryHandler(facade)
	portalHandler := handlers.NewPortalHandler(facade)
	cronHandler := handlers.NewCronHandler(facade, cronSecret)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	staff := api.Group("")
	staff.Use(middleware.AuthRequired(facade))
	staff.GET("/clients", clientHandler.List)
	staff.POST("/clients", clientHandler.Create)
	staff.DELETE("/clients/:id", clientHandler.Delete)

	staff.GET("/statuses", statusHandler.List)
	staff.POST("/statuses", statusHandler.Create)
	staff.PUT("/statuses/:id/initial", middleware.RequireRoles(model.RoleAdmin), statusHandler.SetInitial)

	staff.GET("/orders", orderHandler.List)
	staff.POST("/orders", orderHandler.Create)
	staff.GET("/orders/:id", orderHandler.Get)
	staff.GET("/orders/:id/history", orderHandler.History)
	staff.PUT("/orders/:id/status", orderHandler.SetStatus)
	staff.GET("/orders/:id/milestones", milestoneHandler.List)
	staff.POST("/orders/:id/milestones", milestoneHandler.Create)
	staff.GET("/orders/:id/tasks", milestoneHandler.ListTasks)
	staff.POST("/orders/:id/tasks", milestoneHandler.CreateTask)
	staff.GET("/orders/:id/time-entries", timeEntryHandler.List)
	staff.POST("/orders/:id/time-entries", timeEntryHandler.Create)
	staff.PUT("/milestones/:id/status", milestoneHandler.SetStatus)

	staff.POST("/invoices", invoiceHandler.Create)
	staff.PUT("/invoices/:id/status", invoiceHandler.SetStatus)
	staff.POST("/invoices/:id/payments", invoiceHandler.RecordPayment)

	staff.POST("/proposals", proposalHandler.Create)
	staff.PUT("/proposals/:id/status", proposalHandler.SetStatus)

	staff.POST("/tickets", ticketHandler.Create)
	staff.PUT("/tickets/:id/status", ticketHandler.SetStatus)

	staff.GET("/notifications", notificationHandler.List)
	staff.POST("/notifications/:id/read", notificationHandler.MarkRead)

	portal := api.Group("/portal")
	portal.POST("/access", portalHandler.RequestAccess)

	portalAuth := portal.Group("")
	portalAuth.Use(middleware.PortalAuth(facade))
	portalAuth.GET("/orders", portalHandler.Orders)
	portalAuth.GET("/invoices", portalHandler.Invoices)
	portalAuth.GET("/proposals", portalHandler.Proposals)
	portalAuth.GET("/tickets", portalHandler.Tickets)

	api.POST("/cron/deadlines", cronHandler.CheckDeadlines)

	return engine
}
