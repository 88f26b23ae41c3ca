// File: /controllers/reserva_controller.go
package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

type ReservaController struct {
	base
	reservaService *services.ReservaService
}

func NewReservaController(reservaService *services.ReservaService, logger *slog.Logger) *ReservaController {
	return &ReservaController{base: base{logger: logger}, reservaService: reservaService}
}

func (rc *ReservaController) Create(c *gin.Context) {
	var req models.ReservaRequest
	if !bind(c, &req) {
		return
	}
	reserva, err := rc.reservaService.Create(c.Request.Context(), session(c), req)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, reserva)
}

func (rc *ReservaController) CreateGuest(c *gin.Context) {
	var req models.ReservaGuestRequest
	if !bind(c, &req) {
		return
	}
	reserva, err := rc.reservaService.CreateGuest(c.Request.Context(), req)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, reserva)
}

func (rc *ReservaController) ListByEmpresa(c *gin.Context) {
	reservas, err := rc.reservaService.ListByEmpresa(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, reservas)
}

func (rc *ReservaController) ListByFornecedor(c *gin.Context) {
	reservas, err := rc.reservaService.ListByFornecedor(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, reservas)
}

func (rc *ReservaController) Detalhe(c *gin.Context) {
	reserva, err := rc.reservaService.Detalhe(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendOK(c, reserva)
}

func (rc *ReservaController) Aceitar(c *gin.Context) {
	reserva, err := rc.reservaService.Aceitar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Reserva aceite", reserva)
}

func (rc *ReservaController) Recusar(c *gin.Context) {
	reserva, err := rc.reservaService.Recusar(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Reserva recusada", reserva)
}

func (rc *ReservaController) Cancelar(c *gin.Context) {
	var req models.CancelarReservaRequest
	if !bind(c, &req) {
		return
	}
	reserva, err := rc.reservaService.Cancelar(c.Request.Context(), session(c), req.ReservaID)
	if err != nil {
		rc.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Reserva cancelada", reserva)
}
