package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/httpresp"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/usecase/paciente"
)

type PacienteHandler struct {
	svc *paciente.Service
}

func NewPacienteHandler(svc *paciente.Service) *PacienteHandler {
	return &PacienteHandler{svc: svc}
}

// --------- Requests ---------

type UpdatePacienteRequest struct {
	// NomeOriginal is the name before editing; it locates the row.
	NomeOriginal string `json:"nomeOriginal"`
	records.Paciente
}

type DeletePacienteRequest struct {
	Nome string `json:"nome"`
}

// --------- Handlers ---------

func (h *PacienteHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PacienteHandler) Create(c *gin.Context) {
	var req records.Paciente
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if err := h.svc.Create(c.Request.Context(), req); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Salvo")
}

func (h *PacienteHandler) Update(c *gin.Context) {
	var req UpdatePacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if err := h.svc.Update(c.Request.Context(), req.NomeOriginal, req.Paciente); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Cadastro atualizado!")
}

func (h *PacienteHandler) Delete(c *gin.Context) {
	var req DeletePacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), req.Nome); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Deletado")
}
