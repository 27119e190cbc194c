package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Co-vengers/progress-log-api/internal/config"
	v1 "github.com/Co-vengers/progress-log-api/internal/delivery/http/v1"
	"github.com/Co-vengers/progress-log-api/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	storageReady := globalAuthClient != nil && globalFirestoreClient != nil

	var (
		identityService services.IdentityService
		logService      services.LogService
	)
	if storageReady {
		if config.Global().Env == config.EnvLocal {
			identityService = services.NewLocalIdentityService(globalLogger)
		} else {
			identityService = services.NewIdentityService(globalLogger, globalAuthClient)
		}
		logService = services.NewLogService(globalLogger, globalFirestoreClient)
	}

	v1Handler := v1.New(globalLogger, identityService, logService)
	router.Use(v1Handler.HandleRequestIDMiddleware)

	router.GET("/", v1Handler.HandleWelcome)

	if !storageReady {
		globalLogger.Warn().Msg("firebase unavailable, storage routes disabled")
		notReady := func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "storage backend not ready"})
		}
		router.Any("/logs", notReady)
		router.Any("/logs/:id", notReady)
		return
	}

	logsRouter := router.Group("/logs", v1Handler.HandleAuthMiddleware)
	logsRouter.POST("", v1Handler.HandleCreateLog)
	logsRouter.GET("", v1Handler.HandleGetLogs)
	logsRouter.PUT("/:id", v1Handler.HandleUpdateLog)
	logsRouter.DELETE("/:id", v1Handler.HandleDeleteLog)
}
