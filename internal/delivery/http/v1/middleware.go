package v1

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Co-vengers/progress-log-api/internal/services"
)

const userIDCtxKey = "user_id"

const requestIDHeader = "X-Request-Id"

func (h *handlerImpl) HandleRequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Writer.Header().Set(requestIDHeader, requestID)
	c.Next()
}

// HandleAuthMiddleware gates every storage-backed route. It is the only
// place a user id ever enters a request: downstream handlers read it
// from the context and never from the request itself.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Error().Msg("authorization header required")
		abort(c, newUnauthorizedError("authorization header required"))
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix || parts[1] == "" {
		h.logger.Error().Msg("invalid authorization header")
		abort(c, newUnauthorizedError("invalid authorization header"))
		return
	}

	userID, err := h.identity.VerifyToken(c, parts[1])
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			h.logger.Error().
				Err(err).
				Msg("failed to verify token")
			abort(c, newUnauthorizedError(services.ErrInvalidToken.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("identity backend failure")
		abort(c, newServiceUnavailableError("identity backend not ready"))
		return
	}

	c.Set(userIDCtxKey, userID)
	c.Next()
}
