package services

import (
	"context"
	"errors"

	"github.com/Co-vengers/progress-log-api/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrLogNotFound  = errors.New("log not found")
)

type IdentityService interface {
	// VerifyToken validates a raw bearer token and returns the stable
	// user id it was issued for.
	//
	// It returns ErrInvalidToken if the token cannot be verified.
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

type LogService interface {
	// CreateLog persists the entry under the user's namespace and
	// returns it together with the store-generated document id.
	CreateLog(ctx context.Context, userID string, entry *models.LogEntry) (*models.StoredLog, error)

	// GetLogsByUserID returns every entry in the user's namespace
	// ordered by date descending. An empty namespace yields an empty
	// slice, never an error.
	GetLogsByUserID(ctx context.Context, userID string) ([]*models.StoredLog, error)

	// UpdateLog replaces all fields of the stored document with the
	// given entry. This is a full overwrite, not a partial patch.
	//
	// It returns ErrLogNotFound if no document with the given id
	// exists in the user's namespace.
	UpdateLog(ctx context.Context, userID, logID string, entry *models.LogEntry) (*models.StoredLog, error)

	// DeleteLog removes the document with the given id.
	//
	// It returns ErrLogNotFound if no document with the given id
	// exists in the user's namespace.
	DeleteLog(ctx context.Context, userID, logID string) error
}
