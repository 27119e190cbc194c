package services

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Co-vengers/progress-log-api/internal/models"
)

// appID is fixed for the whole deployment and is never taken from a
// request. Together with the verified user id it forms the collection
// path, which is the sole access-scoping mechanism of this service.
const appID = "default-app-id"

func userCollectionPath(userID string) string {
	return fmt.Sprintf("artifacts/%s/users/%s/progress-logs", appID, userID)
}

type logServiceImpl struct {
	logger   zerolog.Logger
	fsClient *firestore.Client
}

func NewLogService(
	logger zerolog.Logger,
	fsClient *firestore.Client,
) LogService {
	return &logServiceImpl{
		logger:   logger,
		fsClient: fsClient,
	}
}

func (s *logServiceImpl) CreateLog(ctx context.Context, userID string, entry *models.LogEntry) (*models.StoredLog, error) {
	doc := s.fsClient.Collection(userCollectionPath(userID)).NewDoc()
	_, err := doc.Set(ctx, entry)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to create log document")
		return nil, err
	}
	s.logger.Debug().
		Str("log_id", doc.ID).
		Msg("created log document")

	s.logger.Info().
		Str("log_id", doc.ID).
		Msg("created log")
	return &models.StoredLog{ID: doc.ID, LogEntry: *entry}, nil
}

func (s *logServiceImpl) GetLogsByUserID(ctx context.Context, userID string) ([]*models.StoredLog, error) {
	iter := s.fsClient.Collection(userCollectionPath(userID)).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	logs := make([]*models.StoredLog, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to iterate over log documents")
			return nil, err
		}

		var entry models.LogEntry
		err = doc.DataTo(&entry)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("log_id", doc.Ref.ID).
				Msg("failed to decode log document")
			return nil, err
		}
		logs = append(logs, &models.StoredLog{ID: doc.Ref.ID, LogEntry: entry})
	}
	s.logger.Debug().
		Int("count", len(logs)).
		Msg("selected logs")

	s.logger.Info().Msg("fetched logs")
	return logs, nil
}

func (s *logServiceImpl) UpdateLog(ctx context.Context, userID, logID string, entry *models.LogEntry) (*models.StoredLog, error) {
	doc := s.fsClient.Collection(userCollectionPath(userID)).Doc(logID)
	_, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			s.logger.Warn().
				Str("log_id", logID).
				Msg("log not found")
			return nil, ErrLogNotFound
		}

		s.logger.Error().
			Err(err).
			Str("log_id", logID).
			Msg("failed to fetch log document")
		return nil, err
	}

	// Full replace, not a merge. Fields the caller omitted have
	// already been defaulted on the entry before this call.
	_, err = doc.Set(ctx, entry)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("log_id", logID).
			Msg("failed to overwrite log document")
		return nil, err
	}
	s.logger.Debug().
		Str("log_id", logID).
		Msg("overwrote log document")

	s.logger.Info().
		Str("log_id", logID).
		Msg("updated log")
	return &models.StoredLog{ID: logID, LogEntry: *entry}, nil
}

func (s *logServiceImpl) DeleteLog(ctx context.Context, userID, logID string) error {
	doc := s.fsClient.Collection(userCollectionPath(userID)).Doc(logID)
	_, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			s.logger.Warn().
				Str("log_id", logID).
				Msg("log not found")
			return ErrLogNotFound
		}

		s.logger.Error().
			Err(err).
			Str("log_id", logID).
			Msg("failed to fetch log document")
		return err
	}

	_, err = doc.Delete(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("log_id", logID).
			Msg("failed to delete log document")
		return err
	}
	s.logger.Debug().
		Str("log_id", logID).
		Msg("deleted log document")

	s.logger.Info().
		Str("log_id", logID).
		Msg("deleted log")
	return nil
}
