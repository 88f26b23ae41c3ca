// File: /controllers/auth_controller.go
package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

type AuthController struct {
	base
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService, logger *slog.Logger) *AuthController {
	return &AuthController{base: base{logger: logger}, authService: authService}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bind(c, &req) {
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bind(c, &req) {
		return
	}

	result, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, result)
}

func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.authService.Me(c.Request.Context(), session(c))
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendOK(c, user)
}
