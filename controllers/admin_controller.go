// File: /controllers/admin_controller.go
package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"teamsync-api/services"
	"teamsync-api/utils"
)

type AdminController struct {
	base
	adminService *services.AdminService
}

func NewAdminController(adminService *services.AdminService, logger *slog.Logger) *AdminController {
	return &AdminController{base: base{logger: logger}, adminService: adminService}
}

func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := ac.adminService.Dashboard(c.Request.Context(), session(c))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, stats)
}

func (ac *AdminController) Relatorios(c *gin.Context) {
	relatorio, err := ac.adminService.Relatorio(c.Request.Context(), session(c))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, relatorio)
}
