package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Co-vengers/progress-log-api/internal/models"
	"github.com/Co-vengers/progress-log-api/internal/services"
)

func (h *handlerImpl) HandleWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Daily Progress Log API!"})
}

func (h *handlerImpl) HandleCreateLog(c *gin.Context) {
	userIDValue, exists := c.Get(userIDCtxKey)
	if !exists {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError("authorization required"))
		return
	}
	userID, _ := userIDValue.(string)

	var entry models.LogEntry
	err := c.ShouldBindJSON(&entry)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	entry.ApplyDefaults(time.Now())

	stored, err := h.logs.CreateLog(c, userID, &entry)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create log")
		abort(c, newInternalError("failed to create log: "+err.Error()))
		return
	}

	h.logger.Info().Msg("created log")
	c.JSON(http.StatusCreated, stored)
}

func (h *handlerImpl) HandleGetLogs(c *gin.Context) {
	userIDValue, exists := c.Get(userIDCtxKey)
	if !exists {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError("authorization required"))
		return
	}
	userID, _ := userIDValue.(string)

	logs, err := h.logs.GetLogsByUserID(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch logs")
		abort(c, newInternalError("failed to retrieve logs: "+err.Error()))
		return
	}
	h.logger.Debug().
		Int("count", len(logs)).
		Msg("fetched logs")

	h.logger.Info().Msg("fetched logs")
	c.JSON(http.StatusOK, logs)
}

func (h *handlerImpl) HandleUpdateLog(c *gin.Context) {
	userIDValue, exists := c.Get(userIDCtxKey)
	if !exists {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError("authorization required"))
		return
	}
	userID, _ := userIDValue.(string)

	logID := c.Param("id")
	if logID == "" {
		h.logger.Error().Msg("no log id provided")
		abort(c, newBadRequestError("no log id provided"))
		return
	}

	var entry models.LogEntry
	err := c.ShouldBindJSON(&entry)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	entry.ApplyDefaults(time.Now())

	stored, err := h.logs.UpdateLog(c, userID, logID, &entry)
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			h.logger.Warn().
				Str("log_id", logID).
				Msg("log not found")
			abort(c, newNotFoundError(services.ErrLogNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to update log")
		abort(c, newInternalError("failed to update log: "+err.Error()))
		return
	}

	h.logger.Info().
		Str("log_id", logID).
		Msg("updated log")
	c.JSON(http.StatusOK, stored)
}

func (h *handlerImpl) HandleDeleteLog(c *gin.Context) {
	userIDValue, exists := c.Get(userIDCtxKey)
	if !exists {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError("authorization required"))
		return
	}
	userID, _ := userIDValue.(string)

	logID := c.Param("id")
	if logID == "" {
		h.logger.Error().Msg("no log id provided")
		abort(c, newBadRequestError("no log id provided"))
		return
	}

	err := h.logs.DeleteLog(c, userID, logID)
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			h.logger.Warn().
				Str("log_id", logID).
				Msg("log not found")
			abort(c, newNotFoundError(services.ErrLogNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to delete log")
		abort(c, newInternalError("failed to delete log: "+err.Error()))
		return
	}

	h.logger.Info().
		Str("log_id", logID).
		Msg("deleted log")
	c.Status(http.StatusNoContent)
}
