package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/httpresp"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/usecase/preco"
)

type PrecoHandler struct {
	svc *preco.Service
}

func NewPrecoHandler(svc *preco.Service) *PrecoHandler {
	return &PrecoHandler{svc: svc}
}

type DeletePrecoRequest struct {
	Procedimento string `json:"procedimento"`
}

func (h *PrecoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PrecoHandler) Create(c *gin.Context) {
	var req records.Preco
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

func (h *PrecoHandler) Delete(c *gin.Context) {
	var req DeletePrecoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), req.Procedimento); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "ok")
}
