// File: /controllers/rfq_controller.go
package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

type RFQController struct {
	base
	rfqService      *services.RFQService
	propostaService *services.PropostaService
}

func NewRFQController(rfqService *services.RFQService, propostaService *services.PropostaService, logger *slog.Logger) *RFQController {
	return &RFQController{base: base{logger: logger}, rfqService: rfqService, propostaService: propostaService}
}

func (rc *RFQController) Create(c *gin.Context) {
	var req models.RFQRequest
	if !bind(c, &req) {
		return
	}
	rfq, err := rc.rfqService.Create(c.Request.Context(), session(c), req)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, rfq)
}

func (rc *RFQController) Minhas(c *gin.Context) {
	rfqs, err := rc.rfqService.Minhas(c.Request.Context(), session(c))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, rfqs)
}

func (rc *RFQController) Get(c *gin.Context) {
	rfq, err := rc.rfqService.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, rfq)
}

func (rc *RFQController) Disponiveis(c *gin.Context) {
	rfqs, err := rc.rfqService.Disponiveis(c.Request.Context(), session(c))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, rfqs)
}

func (rc *RFQController) Cancelar(c *gin.Context) {
	rfq, err := rc.rfqService.Cancelar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendSuccess(c, "RFQ cancelado", rfq)
}

func (rc *RFQController) CreateProposta(c *gin.Context) {
	var req models.PropostaRequest
	if !bind(c, &req) {
		return
	}
	proposta, err := rc.propostaService.Create(c.Request.Context(), session(c), req)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, proposta)
}

func (rc *RFQController) MinhasPropostas(c *gin.Context) {
	propostas, err := rc.propostaService.Minhas(c.Request.Context(), session(c))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, propostas)
}

// PropostasDoRFQ returns the proposals of an RFQ ranked by price.
func (rc *RFQController) PropostasDoRFQ(c *gin.Context) {
	propostas, err := rc.propostaService.ListByRFQ(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, propostas)
}

func (rc *RFQController) AceitarProposta(c *gin.Context) {
	proposta, err := rc.propostaService.Aceitar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Proposta aceite", proposta)
}

func (rc *RFQController) RecusarProposta(c *gin.Context) {
	proposta, err := rc.propostaService.Recusar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Proposta recusada", proposta)
}
