package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assetusecases "github.com/assetdesk/assetdesk/internal/application/asset/usecases"
	authusecases "github.com/assetdesk/assetdesk/internal/application/auth/usecases"
	chatusecases "github.com/assetdesk/assetdesk/internal/application/chat/usecases"
	dashboardusecases "github.com/assetdesk/assetdesk/internal/application/dashboard/usecases"
	ticketusecases "github.com/assetdesk/assetdesk/internal/application/ticket/usecases"
	"github.com/assetdesk/assetdesk/internal/infrastructure/auth"
	"github.com/assetdesk/assetdesk/internal/infrastructure/cache"
	"github.com/assetdesk/assetdesk/internal/infrastructure/config"
	"github.com/assetdesk/assetdesk/internal/infrastructure/email"
	"github.com/assetdesk/assetdesk/internal/infrastructure/permission"
	"github.com/assetdesk/assetdesk/internal/infrastructure/repository"
	"github.com/assetdesk/assetdesk/internal/infrastructure/services"
	"github.com/assetdesk/assetdesk/internal/infrastructure/storage"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/handlers"
	assethandlers "github.com/assetdesk/assetdesk/internal/interfaces/http/handlers/asset"
	chathandlers "github.com/assetdesk/assetdesk/internal/interfaces/http/handlers/chat"
	tickethandlers "github.com/assetdesk/assetdesk/internal/interfaces/http/handlers/ticket"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/middleware"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/routes"
	sharedDB "github.com/assetdesk/assetdesk/internal/shared/db"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

// Router wires the portal's handlers, middleware, and routes.
type Router struct {
	engine           *gin.Engine
	ticketHandler    *tickethandlers.TicketHandler
	assetHandler     *assethandlers.AssetHandler
	chatHandler      *chathandlers.ChatHandler
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	permissions      *middleware.PermissionMiddleware
	cfg              *config.Config
	logger           logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, enforcer *permission.Enforcer, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	historyRepo := repository.NewTicketHistoryRepository(db)
	attachmentRepo := repository.NewTicketAttachmentRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	deviceRepo := repository.NewDeviceLoginRepository(db)

	// Infrastructure services
	txManager := sharedDB.NewTransactionManager(db)
	numberGen := services.NewTicketNumberGenerator(db, log)
	attachmentStore := storage.NewAttachmentStore(&cfg.Upload, attachmentRepo, log)
	emailSender := email.NewSMTPEmailService(&cfg.Email)
	ticketMailer := email.NewTicketMailer(emailSender, userRepo, log)
	presenceStore := cache.NewRedisPresenceStore(redisClient, &cfg.Presence)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)

	// Ticket use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(
		ticketRepo, historyRepo, assetRepo, userRepo,
		numberGen, txManager, attachmentStore, ticketMailer, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, historyRepo, attachmentRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, historyRepo, txManager, log)
	approveUC := ticketusecases.NewApproveTicketUseCase(ticketRepo, historyRepo, userRepo, txManager, ticketMailer, log)
	rejectUC := ticketusecases.NewRejectTicketUseCase(ticketRepo, historyRepo, userRepo, txManager, ticketMailer, log)

	// Asset use cases
	getUserAssetsUC := assetusecases.NewGetUserAssetsUseCase(assetRepo, userRepo, log)
	listAssetsUC := assetusecases.NewListAssetsUseCase(assetRepo, log)
	assignAssetUC := assetusecases.NewAssignAssetUseCase(assetRepo, userRepo, log)
	unassignAssetUC := assetusecases.NewUnassignAssetUseCase(assetRepo, log)

	// Chat use cases
	sendMessageUC := chatusecases.NewSendMessageUseCase(conversationRepo, messageRepo, userRepo, log)
	listConversationsUC := chatusecases.NewListConversationsUseCase(conversationRepo, messageRepo, userRepo, presenceStore, log)
	listMessagesUC := chatusecases.NewListMessagesUseCase(conversationRepo, messageRepo, log)
	unreadCountUC := chatusecases.NewUnreadCountUseCase(messageRepo, log)

	// Auth use cases
	loginUC := authusecases.NewLoginUseCase(userRepo, deviceRepo, hasher, jwtService, presenceStore, log)
	deviceLoginsUC := authusecases.NewListDeviceLoginsUseCase(deviceRepo, log)
	onlineUsersUC := authusecases.NewListOnlineUsersUseCase(presenceStore, userRepo, log)

	// Dashboard use case
	statsUC := dashboardusecases.NewGetDashboardStatsUseCase(ticketRepo, assetRepo, messageRepo, log)

	return &Router{
		engine: engine,
		ticketHandler: tickethandlers.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC, changeStatusUC, approveUC, rejectUC),
		assetHandler: assethandlers.NewAssetHandler(
			getUserAssetsUC, listAssetsUC, assignAssetUC, unassignAssetUC),
		chatHandler: chathandlers.NewChatHandler(
			sendMessageUC, listConversationsUC, listMessagesUC, unreadCountUC, presenceStore),
		authHandler:      handlers.NewAuthHandler(loginUC, deviceLoginsUC, onlineUsersUC),
		dashboardHandler: handlers.NewDashboardHandler(statsUC),
		authMiddleware:   middleware.NewAuthMiddleware(jwtService, log),
		permissions:      middleware.NewPermissionMiddleware(enforcer, log),
		cfg:              cfg,
		logger:           log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		Permissions:    r.permissions,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
		Permissions:    r.permissions,
	})

	routes.SetupAssetRoutes(r.engine, &routes.AssetRouteConfig{
		AssetHandler:   r.assetHandler,
		AuthMiddleware: r.authMiddleware,
		Permissions:    r.permissions,
	})

	routes.SetupChatRoutes(r.engine, &routes.ChatRouteConfig{
		ChatHandler:    r.chatHandler,
		AuthMiddleware: r.authMiddleware,
		Permissions:    r.permissions,
	})

	routes.SetupDashboardRoutes(r.engine, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
		Permissions:      r.permissions,
	})
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	return r.engine.Run(r.cfg.Server.GetAddr())
}
