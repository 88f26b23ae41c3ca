// File: /controllers/pagamento_controller.go
package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

const WebhookSecretHeader = "X-Webhook-Secret"

type PagamentoController struct {
	base
	pagamentoService *services.PagamentoService
}

func NewPagamentoController(pagamentoService *services.PagamentoService, logger *slog.Logger) *PagamentoController {
	return &PagamentoController{base: base{logger: logger}, pagamentoService: pagamentoService}
}

func (pc *PagamentoController) Cartao(c *gin.Context) {
	var req models.PagamentoCartaoRequest
	if !bind(c, &req) {
		return
	}
	intent, err := pc.pagamentoService.Cartao(c.Request.Context(), session(c), req)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, intent)
}

func (pc *PagamentoController) MBWay(c *gin.Context) {
	var req models.PagamentoMBWayRequest
	if !bind(c, &req) {
		return
	}
	intent, err := pc.pagamentoService.MBWay(c.Request.Context(), session(c), req)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, intent)
}

// Confirmar settles the payment from the gateway's answer. Any body the
// client sends is ignored.
func (pc *PagamentoController) Confirmar(c *gin.Context) {
	pagamento, err := pc.pagamentoService.Confirmar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, pagamento)
}

func (pc *PagamentoController) Webhook(c *gin.Context) {
	if !pc.pagamentoService.VerifyWebhookSecret(c.GetHeader(WebhookSecretHeader)) {
		utils.SendError(c, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var req models.GatewayWebhookRequest
	if !bind(c, &req) {
		return
	}
	pagamento, err := pc.pagamentoService.Webhook(c.Request.Context(), req)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, pagamento)
}

func (pc *PagamentoController) GetByReserva(c *gin.Context) {
	pagamento, err := pc.pagamentoService.GetByReserva(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, pagamento)
}
