package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"highpro/web/internal/backend"
	"highpro/web/internal/config"
	"highpro/web/internal/telegram"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	backend  *backend.Client
	telegram *telegram.Client
}

func NewHandlerSet(log zerolog.Logger, cfg *config.AppConfig, backendClient *backend.Client, telegramClient *telegram.Client) HandlerSet {
	return HandlerSet{
		log:      log,
		cfg:      cfg,
		backend:  backendClient,
		telegram: telegramClient,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/", h.Home)
	engine.GET("/login", h.LoginPage)
	engine.GET("/admin", h.Dashboard("admin"))
	engine.GET("/staff", h.Dashboard("staff"))
	engine.GET("/student", h.Dashboard("student"))

	api := engine.Group("/api")
	{
		api.GET("/healthz", h.Health)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.DELETE("/login", h.Logout)

		api.POST("/submit", h.Submit)
	}
}
