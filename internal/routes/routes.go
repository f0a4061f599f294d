package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Hyken1/OdontoClinic/internal/audit"
	"github.com/Hyken1/OdontoClinic/internal/config"
	"github.com/Hyken1/OdontoClinic/internal/handlers"
	"github.com/Hyken1/OdontoClinic/internal/httpresp"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
	"github.com/Hyken1/OdontoClinic/internal/usecase/agenda"
	"github.com/Hyken1/OdontoClinic/internal/usecase/nota"
	"github.com/Hyken1/OdontoClinic/internal/usecase/paciente"
	"github.com/Hyken1/OdontoClinic/internal/usecase/preco"
	"github.com/Hyken1/OdontoClinic/internal/usecase/registro"
)

func RegisterRoutes(r *gin.Engine, gw *sheets.Gateway, auditDispatcher *audit.Dispatcher, cfg *config.Config) {

	// ======================================================
	// USE CASES
	// ======================================================
	registroSvc := registro.NewService(gw, auditDispatcher)
	pacienteSvc := paciente.NewService(gw, auditDispatcher)
	agendaSvc := agenda.NewService(gw, auditDispatcher)
	precoSvc := preco.NewService(gw, auditDispatcher)
	notaSvc := nota.NewService(gw)

	// ======================================================
	// HANDLERS
	// ======================================================
	registroHandler := handlers.NewRegistroHandler(registroSvc)
	pacienteHandler := handlers.NewPacienteHandler(pacienteSvc)
	agendaHandler := handlers.NewAgendaHandler(agendaSvc)
	precoHandler := handlers.NewPrecoHandler(precoSvc)
	notaHandler := handlers.NewNotaHandler(notaSvc)
	appWebHandler := handlers.NewAppWebHandler(cfg.StaticDir)

	r.GET("/health", func(c *gin.Context) {
		httpresp.OK(c, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// No authentication on any route.
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/registros", registroHandler.List)
		api.POST("/registros", registroHandler.Create)
		api.PATCH("/registros/status", registroHandler.UpdateStatus)
		api.DELETE("/registros", registroHandler.Delete)

		api.GET("/pacientes", pacienteHandler.List)
		api.POST("/pacientes", pacienteHandler.Create)
		api.PUT("/pacientes", pacienteHandler.Update)
		api.DELETE("/pacientes", pacienteHandler.Delete)

		api.GET("/agenda", agendaHandler.List)
		api.POST("/agenda", agendaHandler.Create)
		api.DELETE("/agenda", agendaHandler.Delete)

		api.GET("/precos", precoHandler.List)
		api.POST("/precos", precoHandler.Create)
		api.DELETE("/precos", precoHandler.Delete)

		api.GET("/notas", notaHandler.List)
	}

	// ======================================================
	// SITE (catch-all)
	// ======================================================
	r.NoRoute(appWebHandler.CatchAll)
}
