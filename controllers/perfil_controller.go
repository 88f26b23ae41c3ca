// File: /controllers/perfil_controller.go
package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"teamsync-api/middleware"
	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

// PerfilController serves the empresa and fornecedor profiles.
type PerfilController struct {
	base
	perfilService *services.PerfilService
}

func NewPerfilController(perfilService *services.PerfilService, logger *slog.Logger) *PerfilController {
	return &PerfilController{base: base{logger: logger}, perfilService: perfilService}
}

func (pc *PerfilController) ListEmpresas(c *gin.Context) {
	skip, limit := middleware.Pagination(c)
	empresas, err := pc.perfilService.ListEmpresas(c.Request.Context(), session(c), skip, limit)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, empresas)
}

func (pc *PerfilController) MinhaEmpresa(c *gin.Context) {
	empresa, err := pc.perfilService.EmpresaDoUtilizador(c.Request.Context(), session(c))
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, empresa)
}

func (pc *PerfilController) GetEmpresa(c *gin.Context) {
	empresa, err := pc.perfilService.GetEmpresa(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, empresa)
}

func (pc *PerfilController) CreateEmpresa(c *gin.Context) {
	var req models.EmpresaRequest
	if !bind(c, &req) {
		return
	}
	empresa, err := pc.perfilService.CreateEmpresa(c.Request.Context(), session(c), req)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, empresa)
}

func (pc *PerfilController) UpdateEmpresa(c *gin.Context) {
	var req models.EmpresaRequest
	if !bind(c, &req) {
		return
	}
	empresa, err := pc.perfilService.UpdateEmpresa(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, empresa)
}

func (pc *PerfilController) DeleteEmpresa(c *gin.Context) {
	if err := pc.perfilService.DeleteEmpresa(c.Request.Context(), session(c), c.Param("id")); err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendSuccess(c, "Empresa deleted successfully", nil)
}

func (pc *PerfilController) ListFornecedores(c *gin.Context) {
	skip, limit := middleware.Pagination(c)
	fornecedores, err := pc.perfilService.ListFornecedores(c.Request.Context(), skip, limit)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, fornecedores)
}

func (pc *PerfilController) MeuFornecedor(c *gin.Context) {
	fornecedor, err := pc.perfilService.FornecedorDoUtilizador(c.Request.Context(), session(c))
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, fornecedor)
}

func (pc *PerfilController) GetFornecedor(c *gin.Context) {
	fornecedor, err := pc.perfilService.GetFornecedor(c.Request.Context(), c.Param("id"))
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, fornecedor)
}

func (pc *PerfilController) CreateFornecedor(c *gin.Context) {
	var req models.FornecedorRequest
	if !bind(c, &req) {
		return
	}
	fornecedor, err := pc.perfilService.CreateFornecedor(c.Request.Context(), session(c), req)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, fornecedor)
}

func (pc *PerfilController) UpdateFornecedor(c *gin.Context) {
	var req models.FornecedorRequest
	if !bind(c, &req) {
		return
	}
	fornecedor, err := pc.perfilService.UpdateFornecedor(c.Request.Context(), session(c), c.Param("id"), req)
	if err != nil {
		pc.fail(c, err)
		return
	}
	utils.SendOK(c, fornecedor)
}
