// File: /controllers/avaliacao_controller.go
package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

type AvaliacaoController struct {
	base
	avaliacaoService  *services.AvaliacaoService
	itinerarioService *services.ItinerarioService
}

func NewAvaliacaoController(avaliacaoService *services.AvaliacaoService, itinerarioService *services.ItinerarioService, logger *slog.Logger) *AvaliacaoController {
	return &AvaliacaoController{
		base:              base{logger: logger},
		avaliacaoService:  avaliacaoService,
		itinerarioService: itinerarioService,
	}
}

func (ac *AvaliacaoController) Create(c *gin.Context) {
	var req models.AvaliacaoRequest
	if !bind(c, &req) {
		return
	}
	avaliacao, err := ac.avaliacaoService.Create(c.Request.Context(), session(c), req)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, avaliacao)
}

func (ac *AvaliacaoController) ListByAtividade(c *gin.Context) {
	avaliacoes, err := ac.avaliacaoService.ListByAtividade(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, avaliacoes)
}

func (ac *AvaliacaoController) ListByFornecedor(c *gin.Context) {
	avaliacoes, err := ac.avaliacaoService.ListByFornecedor(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, avaliacoes)
}

func (ac *AvaliacaoController) Minhas(c *gin.Context) {
	avaliacoes, err := ac.avaliacaoService.Minhas(c.Request.Context(), session(c))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, avaliacoes)
}

func (ac *AvaliacaoController) GerarItinerario(c *gin.Context) {
	var req models.ItinerarioRequest
	if !bind(c, &req) {
		return
	}
	itinerario, err := ac.itinerarioService.Gerar(c.Request.Context(), session(c), req)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, itinerario)
}

func (ac *AvaliacaoController) ListItinerarios(c *gin.Context) {
	itinerarios, err := ac.itinerarioService.ListByEmpresa(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, itinerarios)
}
