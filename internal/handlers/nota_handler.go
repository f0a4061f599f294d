package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/httpresp"
	"github.com/Hyken1/OdontoClinic/internal/usecase/nota"
)

type NotaHandler struct {
	svc *nota.Service
}

func NewNotaHandler(svc *nota.Service) *NotaHandler {
	return &NotaHandler{svc: svc}
}

func (h *NotaHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}
