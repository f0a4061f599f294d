package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/httpresp"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/usecase/registro"
)

type RegistroHandler struct {
	svc *registro.Service
}

func NewRegistroHandler(svc *registro.Service) *RegistroHandler {
	return &RegistroHandler{svc: svc}
}

// --------- Requests ---------

type UpdateStatusRequest struct {
	ID         records.Position `json:"id"`
	UID        string           `json:"uid"`
	NovoStatus string           `json:"novoStatus"`
}

type DeleteRegistroRequest struct {
	Data         string `json:"data"`
	Paciente     string `json:"paciente"`
	Procedimento string `json:"procedimento"`
}

// --------- Handlers ---------

func (h *RegistroHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("data"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *RegistroHandler) Create(c *gin.Context) {
	var req records.Registro
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if err := h.svc.Create(c.Request.Context(), req); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Registro salvo!")
}

func (h *RegistroHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	err := h.svc.UpdateStatus(c.Request.Context(), registro.StatusUpdateInput{
		ID:         req.ID,
		UID:        req.UID,
		NovoStatus: req.NovoStatus,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Status atualizado!")
}

func (h *RegistroHandler) Delete(c *gin.Context) {
	var req DeleteRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	err := h.svc.Delete(c.Request.Context(), registro.DeleteInput{
		Data:         req.Data,
		Paciente:     req.Paciente,
		Procedimento: req.Procedimento,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Deletado!")
}
