// File: /controllers/evento_controller.go
package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

// EventoController covers the event wizard and the per-reservation event
// workspace.
type EventoController struct {
	base
	eventoService  *services.EventoService
	detalheService *services.EventoDetalheService
}

func NewEventoController(eventoService *services.EventoService, detalheService *services.EventoDetalheService, logger *slog.Logger) *EventoController {
	return &EventoController{base: base{logger: logger}, eventoService: eventoService, detalheService: detalheService}
}

func (ec *EventoController) Criar(c *gin.Context) {
	var req models.CriarEventoRequest
	if !bind(c, &req) {
		return
	}
	propostas, err := ec.eventoService.Criar(c.Request.Context(), req)
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, propostas)
}

func (ec *EventoController) Editar(c *gin.Context) {
	var req models.EditarPropostaEventoRequest
	if !bind(c, &req) {
		return
	}
	if !ec.matchesPath(c, &req.Proposta) {
		return
	}
	proposta, err := ec.eventoService.Editar(c.Request.Context(), req)
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, proposta)
}

func (ec *EventoController) Confirmar(c *gin.Context) {
	var req models.ConfirmarEventoRequest
	if !bind(c, &req) {
		return
	}
	if !ec.matchesPath(c, &req.Proposta) {
		return
	}
	confirmacao, err := ec.eventoService.Confirmar(c.Request.Context(), session(c), req)
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, confirmacao)
}

// matchesPath fills a missing proposal id from the URL and rejects a body
// that names another proposal.
func (ec *EventoController) matchesPath(c *gin.Context, proposta *models.PropostaEvento) bool {
	id := c.Param("id")
	if proposta.ID == "" {
		proposta.ID = id
		return true
	}
	if proposta.ID != id {
		utils.SendError(c, http.StatusBadRequest, "Proposta id does not match the URL")
		return false
	}
	return true
}

func (ec *EventoController) Get(c *gin.Context) {
	evento, err := ec.detalheService.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, evento)
}

func (ec *EventoController) ListMensagens(c *gin.Context) {
	mensagens, err := ec.detalheService.ListMensagens(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, mensagens)
}

func (ec *EventoController) EnviarMensagem(c *gin.Context) {
	var req models.MensagemRequest
	if !bind(c, &req) {
		return
	}
	mensagem, err := ec.detalheService.EnviarMensagem(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, mensagem)
}

func (ec *EventoController) ListNotas(c *gin.Context) {
	notas, err := ec.detalheService.ListNotas(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, notas)
}

func (ec *EventoController) CriarNota(c *gin.Context) {
	var req models.NotaRequest
	if !bind(c, &req) {
		return
	}
	nota, err := ec.detalheService.CriarNota(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, nota)
}

func (ec *EventoController) ListDocumentos(c *gin.Context) {
	documentos, err := ec.detalheService.ListDocumentos(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, documentos)
}

func (ec *EventoController) CriarDocumento(c *gin.Context) {
	var req models.DocumentoRequest
	if !bind(c, &req) {
		return
	}
	documento, err := ec.detalheService.CriarDocumento(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		ec.fail(c, err)
		return
	}
	utils.SendOK(c, documento)
}
