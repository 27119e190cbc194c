package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Co-vengers/progress-log-api/internal/services"
)

type Handler interface {
	HandleWelcome(c *gin.Context)

	HandleRequestIDMiddleware(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateLog(c *gin.Context)
	HandleGetLogs(c *gin.Context)
	HandleUpdateLog(c *gin.Context)
	HandleDeleteLog(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	identity services.IdentityService
	logs     services.LogService
}

func New(
	logger zerolog.Logger,
	identityService services.IdentityService,
	logService services.LogService,
) Handler {
	return &handlerImpl{
		logger:   logger,
		identity: identityService,
		logs:     logService,
	}
}
