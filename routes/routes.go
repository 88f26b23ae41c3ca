// File: /routes/routes.go
package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamsync-api/config"
	"teamsync-api/controllers"
	"teamsync-api/middleware"
	"teamsync-api/models"
	"teamsync-api/repositories"
	"teamsync-api/services"
)

// Services is the wired service layer shared by the router and the jobs.
type Services struct {
	Tokens     *services.TokenService
	Auth       *services.AuthService
	Perfil     *services.PerfilService
	Atividade  *services.AtividadeService
	Reserva    *services.ReservaService
	RFQ        *services.RFQService
	Proposta   *services.PropostaService
	Evento     *services.EventoService
	Detalhe    *services.EventoDetalheService
	Pagamento  *services.PagamentoService
	Avaliacao  *services.AvaliacaoService
	Itinerario *services.ItinerarioService
	Admin      *services.AdminService
}

func NewServices(db *gorm.DB, cfg *config.Config, notifier services.Notifier, gateway services.PaymentGateway, logger *slog.Logger) *Services {
	users := repositories.NewUserRepository(db)
	empresas := repositories.NewEmpresaRepository(db)
	fornecedores := repositories.NewFornecedorRepository(db)
	atividades := repositories.NewAtividadeRepository(db)
	reservas := repositories.NewReservaRepository(db)
	rfqs := repositories.NewRFQRepository(db)
	propostas := repositories.NewPropostaRepository(db)
	pagamentos := repositories.NewPagamentoRepository(db)
	eventos := repositories.NewEventoRepository(db)
	avaliacoes := repositories.NewAvaliacaoRepository(db)
	itinerarios := repositories.NewItinerarioRepository(db)
	stats := repositories.NewStatsRepository(db)

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := services.NewAuthService(users, empresas, tokens, logger)

	return &Services{
		Tokens:     tokens,
		Auth:       auth,
		Perfil:     services.NewPerfilService(empresas, fornecedores),
		Atividade:  services.NewAtividadeService(atividades, fornecedores, logger),
		Reserva:    services.NewReservaService(reservas, atividades, propostas, empresas, fornecedores, auth, notifier, logger),
		RFQ:        services.NewRFQService(rfqs, propostas, empresas, fornecedores, notifier, logger),
		Proposta:   services.NewPropostaService(propostas, rfqs, reservas, atividades, empresas, fornecedores, notifier, cfg.ProposalValidity, logger),
		Evento:     services.NewEventoService(atividades, reservas, empresas, auth, logger),
		Detalhe:    services.NewEventoDetalheService(reservas, empresas, fornecedores, propostas, eventos, notifier, logger),
		Pagamento:  services.NewPagamentoService(pagamentos, reservas, empresas, gateway, notifier, cfg.WebhookSecret, cfg.PaymentExpiry, logger),
		Avaliacao:  services.NewAvaliacaoService(avaliacoes, atividades, fornecedores, empresas, logger),
		Itinerario: services.NewItinerarioService(itinerarios, atividades, empresas, logger),
		Admin:      services.NewAdminService(stats),
	}
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

func SetupCORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	return cors.New(corsConfig)
}

// SetupRoutes mounts the API twice, under /api/v1 and at the root, so
// older clients keep working.
func SetupRoutes(r *gin.Engine, svc *Services, cfg *config.Config, health HealthCheck, logger *slog.Logger, stop <-chan struct{}) {
	authController := controllers.NewAuthController(svc.Auth, logger)
	perfilController := controllers.NewPerfilController(svc.Perfil, logger)
	atividadeController := controllers.NewAtividadeController(svc.Atividade, logger)
	reservaController := controllers.NewReservaController(svc.Reserva, logger)
	rfqController := controllers.NewRFQController(svc.RFQ, svc.Proposta, logger)
	eventoController := controllers.NewEventoController(svc.Evento, svc.Detalhe, logger)
	pagamentoController := controllers.NewPagamentoController(svc.Pagamento, logger)
	avaliacaoController := controllers.NewAvaliacaoController(svc.Avaliacao, svc.Itinerario, logger)
	adminController := controllers.NewAdminController(svc.Admin, logger)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if health != nil {
			if err := health(ctx); err != nil {
				logger.Error("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "ok"})
	})

	// Shared so both mounts draw from the same buckets.
	sensitiveLimit := middleware.RateLimit(cfg.RateLimitRPM, cfg.RateLimitBurst, stop)

	authRequired := middleware.AuthMiddleware(svc.Tokens)
	optionalAuth := middleware.OptionalAuth(svc.Tokens)
	empresa := middleware.RequireTipo(models.UserTipoEmpresa)
	fornecedor := middleware.RequireTipo(models.UserTipoFornecedor)
	admin := middleware.RequireTipo(models.UserTipoAdmin)
	pagination := middleware.PaginationDefaults()

	mount := func(api *gin.RouterGroup) {
		api.Use(middleware.ValidateJSON())

		auth := api.Group("/auth")
		{
			auth.POST("/register", sensitiveLimit, authController.Register)
			auth.POST("/login", sensitiveLimit, authController.Login)
			auth.GET("/me", authRequired, authController.Me)
		}

		atividades := api.Group("/atividades")
		{
			atividades.GET("", pagination, atividadeController.List)
			atividades.GET("/:id", atividadeController.Get)
			atividades.POST("/recomendadas", atividadeController.Recomendadas)
			atividades.POST("", authRequired, fornecedor, atividadeController.Create)
			atividades.PUT("/:id", authRequired, middleware.RequireTipo(models.UserTipoFornecedor, models.UserTipoAdmin), atividadeController.Update)
			atividades.DELETE("/:id", authRequired, middleware.RequireTipo(models.UserTipoFornecedor, models.UserTipoAdmin), atividadeController.Delete)
			atividades.POST("/:id/aprovar", authRequired, admin, atividadeController.Aprovar)
			atividades.POST("/:id/rejeitar", authRequired, admin, atividadeController.Rejeitar)
			atividades.GET("/pendentes/list", authRequired, admin, atividadeController.Pendentes)
		}

		reservas := api.Group("/reservas")
		{
			reservas.POST("", authRequired, empresa, reservaController.Create)
			reservas.POST("/guest", sensitiveLimit, reservaController.CreateGuest)
			reservas.POST("/cancelar", authRequired, reservaController.Cancelar)
			reservas.GET("/detalhe/:id", authRequired, reservaController.Detalhe)
			reservas.GET("/fornecedor/:id", authRequired, reservaController.ListByFornecedor)
			reservas.GET("/:id", authRequired, reservaController.ListByEmpresa)
			reservas.POST("/:id/aceitar", authRequired, fornecedor, reservaController.Aceitar)
			reservas.POST("/:id/recusar", authRequired, fornecedor, reservaController.Recusar)
		}

		rfq := api.Group("/rfq", authRequired)
		{
			rfq.POST("", empresa, rfqController.Create)
			rfq.GET("", empresa, rfqController.Minhas)
			rfq.GET("/fornecedor/disponiveis", fornecedor, rfqController.Disponiveis)
			rfq.GET("/:id", rfqController.Get)
			rfq.POST("/:id/cancelar", empresa, rfqController.Cancelar)
		}

		propostas := api.Group("/propostas", authRequired)
		{
			propostas.POST("", fornecedor, rfqController.CreateProposta)
			propostas.GET("/minhas", fornecedor, rfqController.MinhasPropostas)
			propostas.GET("/rfq/:id", empresa, rfqController.PropostasDoRFQ)
			propostas.POST("/:id/aceitar", empresa, rfqController.AceitarProposta)
			propostas.POST("/:id/recusar", empresa, rfqController.RecusarProposta)
		}

		eventos := api.Group("/eventos")
		{
			eventos.POST("/criar", eventoController.Criar)
			eventos.POST("/propostas/:id/editar", eventoController.Editar)
			eventos.POST("/propostas/:id/confirmar", optionalAuth, eventoController.Confirmar)
		}

		evento := api.Group("/evento/:id", authRequired)
		{
			evento.GET("", eventoController.Get)
			evento.GET("/mensagens", eventoController.ListMensagens)
			evento.POST("/mensagens", eventoController.EnviarMensagem)
			evento.GET("/notas", eventoController.ListNotas)
			evento.POST("/notas", eventoController.CriarNota)
			evento.GET("/documentos", eventoController.ListDocumentos)
			evento.POST("/documentos", eventoController.CriarDocumento)
		}

		pagamentos := api.Group("/pagamentos")
		{
			pagamentos.POST("/webhook", sensitiveLimit, pagamentoController.Webhook)
			pagamentos.POST("/cartao", authRequired, pagamentoController.Cartao)
			pagamentos.POST("/mbway", authRequired, pagamentoController.MBWay)
			pagamentos.POST("/:id/confirmar", authRequired, pagamentoController.Confirmar)
			pagamentos.GET("/reserva/:id", authRequired, pagamentoController.GetByReserva)
		}

		empresas := api.Group("/empresas", authRequired)
		{
			empresas.GET("", pagination, perfilController.ListEmpresas)
			empresas.GET("/me", empresa, perfilController.MinhaEmpresa)
			empresas.GET("/:id", perfilController.GetEmpresa)
			empresas.POST("", empresa, perfilController.CreateEmpresa)
			empresas.PUT("/:id", perfilController.UpdateEmpresa)
			empresas.DELETE("/:id", perfilController.DeleteEmpresa)
		}

		fornecedores := api.Group("/fornecedores")
		{
			fornecedores.GET("", pagination, perfilController.ListFornecedores)
			fornecedores.GET("/me", authRequired, fornecedor, perfilController.MeuFornecedor)
			fornecedores.GET("/:id", perfilController.GetFornecedor)
			fornecedores.POST("", authRequired, fornecedor, perfilController.CreateFornecedor)
			fornecedores.PUT("/:id", authRequired, perfilController.UpdateFornecedor)
		}

		avaliacoes := api.Group("/avaliacoes")
		{
			avaliacoes.POST("", authRequired, empresa, avaliacaoController.Create)
			avaliacoes.GET("/atividade/:id", avaliacaoController.ListByAtividade)
			avaliacoes.GET("/fornecedor/:id", avaliacaoController.ListByFornecedor)
			avaliacoes.GET("/minhas", authRequired, empresa, avaliacaoController.Minhas)
		}

		itinerarios := api.Group("/itinerarios", authRequired)
		{
			itinerarios.POST("/gerar", empresa, avaliacaoController.GerarItinerario)
			itinerarios.GET("/:id", avaliacaoController.ListItinerarios)
		}

		adminGroup := api.Group("/admin", authRequired, admin)
		{
			adminGroup.GET("/dashboard", adminController.Dashboard)
			adminGroup.GET("/relatorios", adminController.Relatorios)
		}
	}

	mount(r.Group("/api/v1"))
	mount(r.Group(""))
}
