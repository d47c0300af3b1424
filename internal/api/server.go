package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/middleware"
	"github.com/kingrain94/notes-api/internal/service/pubsub"
	"github.com/kingrain94/notes-api/pkg/logger"
)

type Server struct {
	auth       *AuthHandler
	note       *NoteHandler
	tenant     *TenantHandler
	websocket  *WebSocketHandler
	authMW     *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	authService AuthService,
	noteService NoteService,
	tenantService TenantService,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		auth:       NewAuthHandler(authService),
		note:       NewNoteHandler(noteService),
		tenant:     NewTenantHandler(tenantService),
		websocket:  NewWebSocketHandler(logger, pubsub),
		authMW:     authMW,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.auth.Login)
		}

		notes := api.Group("/notes", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			notes.GET("", s.note.ListNotes)
			notes.POST("", s.note.CreateNote)
			notes.GET("/:id", s.note.GetNote)
			notes.PUT("/:id", s.note.UpdateNote)
			notes.DELETE("/:id", s.note.DeleteNote)
			notes.GET("/stream", s.websocket.HandleWebSocket)
		}

		// The tenant gate runs before the role gate so a cross-tenant admin
		// is rejected for the tenant mismatch, not the role
		tenants := api.Group("/tenants", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			tenants.POST("/:slug/upgrade",
				s.authMW.RequireTenant(),
				s.authMW.RequireRole(domain.RoleAdmin),
				s.tenant.UpgradeTenant,
			)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting note events
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
