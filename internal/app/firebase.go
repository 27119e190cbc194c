package app

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/Co-vengers/progress-log-api/internal/config"
)

var (
	globalAuthClient      *auth.Client
	globalFirestoreClient *firestore.Client
)

// ConnectFirebase initializes the auth and firestore clients. Unlike the
// rest of the bootstrap it does not panic on failure: the process still
// comes up and serves the health check, with storage routes disabled.
func ConnectFirebase() {
	cfg := config.Global().Firebase
	ctx := context.Background()

	var opts []option.ClientOption
	switch {
	case cfg.Credentials != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Credentials)))
		globalLogger.Info().Msg("using inline firebase credentials")
	case fileExists(cfg.CredentialsFile):
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		globalLogger.Info().
			Str("path", cfg.CredentialsFile).
			Msg("using firebase credentials file")
	default:
		// Application default credentials, or the emulator when
		// FIRESTORE_EMULATOR_HOST is set.
		globalLogger.Warn().Msg("no explicit firebase credentials provided")
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to initialize firebase app")
		return
	}

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to initialize firebase auth client")
		return
	}

	fsClient, err := fbApp.Firestore(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to initialize firestore client")
		return
	}

	globalAuthClient = authClient
	globalFirestoreClient = fsClient
	globalLogger.Info().Msg("initialized firebase clients")
}

func DisconnectFirebase() {
	if globalFirestoreClient == nil {
		return
	}

	err := globalFirestoreClient.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close firestore client")
		return
	}
	globalLogger.Info().Msg("disconnected from firestore")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
