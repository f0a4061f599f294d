package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/httpresp"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/usecase/agenda"
)

type AgendaHandler struct {
	svc *agenda.Service
}

func NewAgendaHandler(svc *agenda.Service) *AgendaHandler {
	return &AgendaHandler{svc: svc}
}

type DeleteAgendaRequest struct {
	Data string `json:"data"`
	Hora string `json:"hora"`
}

func (h *AgendaHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AgendaHandler) Create(c *gin.Context) {
	var req records.Agenda
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if err := h.svc.Create(c.Request.Context(), req); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "ok")
}

func (h *AgendaHandler) Delete(c *gin.Context) {
	var req DeleteAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), req.Data, req.Hora); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "ok")
}
