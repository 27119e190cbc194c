package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Co-vengers/progress-log-api/internal/models"
	"github.com/Co-vengers/progress-log-api/internal/services"
)

type fakeIdentityService struct {
	tokens map[string]string
	// err, when set, is returned for every verification, standing in
	// for an unreachable identity backend.
	err error
}

func (f *fakeIdentityService) VerifyToken(_ context.Context, idToken string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	uid, ok := f.tokens[idToken]
	if !ok {
		return "", services.ErrInvalidToken
	}
	return uid, nil
}

// memoryLogService implements services.LogService on a per-user map,
// mirroring the document store's namespace scoping. The call counter
// lets tests assert that rejected requests never touch storage.
type memoryLogService struct {
	mu    sync.Mutex
	calls int
	logs  map[string]map[string]models.LogEntry
}

func newMemoryLogService() *memoryLogService {
	return &memoryLogService{logs: make(map[string]map[string]models.LogEntry)}
}

func (m *memoryLogService) CreateLog(_ context.Context, userID string, entry *models.LogEntry) (*models.StoredLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.logs[userID] == nil {
		m.logs[userID] = make(map[string]models.LogEntry)
	}

	id := uuid.NewString()
	m.logs[userID][id] = *entry
	return &models.StoredLog{ID: id, LogEntry: *entry}, nil
}

func (m *memoryLogService) GetLogsByUserID(_ context.Context, userID string) ([]*models.StoredLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	logs := make([]*models.StoredLog, 0, len(m.logs[userID]))
	for id, entry := range m.logs[userID] {
		logs = append(logs, &models.StoredLog{ID: id, LogEntry: entry})
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
	return logs, nil
}

func (m *memoryLogService) UpdateLog(_ context.Context, userID, logID string, entry *models.LogEntry) (*models.StoredLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if _, ok := m.logs[userID][logID]; !ok {
		return nil, services.ErrLogNotFound
	}

	m.logs[userID][logID] = *entry
	return &models.StoredLog{ID: logID, LogEntry: *entry}, nil
}

func (m *memoryLogService) DeleteLog(_ context.Context, userID, logID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if _, ok := m.logs[userID][logID]; !ok {
		return services.ErrLogNotFound
	}

	delete(m.logs[userID], logID)
	return nil
}

func (m *memoryLogService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// newTestRouter wires the handler exactly as the app package does.
func newTestRouter(identity services.IdentityService, logs services.LogService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := New(zerolog.Nop(), identity, logs)

	router := gin.New()
	router.Use(handler.HandleRequestIDMiddleware)
	router.GET("/", handler.HandleWelcome)

	logsRouter := router.Group("/logs", handler.HandleAuthMiddleware)
	logsRouter.POST("", handler.HandleCreateLog)
	logsRouter.GET("", handler.HandleGetLogs)
	logsRouter.PUT("/:id", handler.HandleUpdateLog)
	logsRouter.DELETE("/:id", handler.HandleDeleteLog)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeStoredLog(t *testing.T, w *httptest.ResponseRecorder) models.StoredLog {
	t.Helper()

	var stored models.StoredLog
	err := json.Unmarshal(w.Body.Bytes(), &stored)
	if err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return stored
}

func decodeStoredLogs(t *testing.T, w *httptest.ResponseRecorder) []models.StoredLog {
	t.Helper()

	var stored []models.StoredLog
	err := json.Unmarshal(w.Body.Bytes(), &stored)
	if err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return stored
}

func validEntry() models.LogEntry {
	return models.LogEntry{
		TaskDescription: "Write spec",
		Project:         "Docs",
		Status:          "done",
		Priority:        "high",
	}
}
