// File: /controllers/helpers.go
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamsync-api/middleware"
	"teamsync-api/services"
	"teamsync-api/utils"
)

// base carries what every controller shares.
type base struct {
	logger *slog.Logger
}

// fail maps a service error to its HTTP answer. Unknown errors become a
// 500 and are logged, never echoed.
func (b base) fail(c *gin.Context, err error) {
	var fieldErrs utils.ValidationErrors
	if errors.As(err, &fieldErrs) {
		utils.SendFieldErrors(c, fieldErrs)
		return
	}

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		utils.SendError(c, statusFor(svcErr.Kind), svcErr.Detail)
		return
	}

	b.logger.Error("unhandled error",
		"error", err,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", middleware.RequestID(c),
	)
	utils.SendError(c, http.StatusInternalServerError, "Internal server error")
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, services.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// bind decodes the JSON body into req and runs the field rules. It writes
// the error response itself and reports whether the handler may continue.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.SendValidationError(c, "Invalid request body")
		return false
	}
	if errs := utils.Validate(req); len(errs) > 0 {
		utils.SendFieldErrors(c, errs)
		return false
	}
	return true
}

func session(c *gin.Context) *services.Session {
	s, _ := middleware.SessionFrom(c)
	return s
}
