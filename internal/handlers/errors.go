// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HamzaJabari/craftopia-backend/internal/services"
	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

// handleServiceError maps the service error taxonomy to HTTP status
// codes. Anything outside the taxonomy is logged and reported as an
// opaque internal error.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		utils.ConflictResponse(c, err.Error())
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Internal error")
		utils.InternalErrorResponse(c, "")
	}
}
