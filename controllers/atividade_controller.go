// File: /controllers/atividade_controller.go
package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"teamsync-api/middleware"
	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

type AtividadeController struct {
	base
	atividadeService *services.AtividadeService
}

func NewAtividadeController(atividadeService *services.AtividadeService, logger *slog.Logger) *AtividadeController {
	return &AtividadeController{base: base{logger: logger}, atividadeService: atividadeService}
}

func (ac *AtividadeController) List(c *gin.Context) {
	skip, limit := middleware.Pagination(c)
	atividades, err := ac.atividadeService.List(c.Request.Context(), c.Query("categoria"), c.Query("localizacao"), skip, limit)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, atividades)
}

func (ac *AtividadeController) Get(c *gin.Context) {
	atividade, err := ac.atividadeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, atividade)
}

func (ac *AtividadeController) Recomendadas(c *gin.Context) {
	var req models.RecomendacaoRequest
	if !bind(c, &req) {
		return
	}
	atividades, err := ac.atividadeService.Recomendadas(c.Request.Context(), req)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, atividades)
}

func (ac *AtividadeController) Create(c *gin.Context) {
	var req models.AtividadeRequest
	if !bind(c, &req) {
		return
	}
	atividade, err := ac.atividadeService.Create(c.Request.Context(), session(c), req)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, atividade)
}

func (ac *AtividadeController) Update(c *gin.Context) {
	var req models.AtividadeRequest
	if !bind(c, &req) {
		return
	}
	atividade, err := ac.atividadeService.Update(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, atividade)
}

func (ac *AtividadeController) Delete(c *gin.Context) {
	if err := ac.atividadeService.Delete(c.Request.Context(), session(c), c.Param("id")); err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Atividade deleted successfully", nil)
}

func (ac *AtividadeController) Aprovar(c *gin.Context) {
	atividade, err := ac.atividadeService.Aprovar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Atividade aprovada", atividade)
}

func (ac *AtividadeController) Rejeitar(c *gin.Context) {
	atividade, err := ac.atividadeService.Rejeitar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Atividade rejeitada", atividade)
}

func (ac *AtividadeController) Pendentes(c *gin.Context) {
	atividades, err := ac.atividadeService.Pendentes(c.Request.Context(), session(c))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, atividades)
}
