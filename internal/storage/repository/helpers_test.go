package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/trial-tracker/internal/migrations"
)

func setupTestDB(t *testing.T) (*Storage, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err, "failed to create storage")

	root, err := filepath.Abs("../../..")
	require.NoError(t, err)
	_, err = migrations.Up(storage.DB, filepath.Join(root, "migrations"))
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return storage, cleanup
}

// testDataFactory наполняет исходные таблицы тестовыми данными
type testDataFactory struct {
	storage *Storage
}

func newTestDataFactory(storage *Storage) *testDataFactory {
	return &testDataFactory{storage: storage}
}

func (f *testDataFactory) createProfile(t *testing.T, fullName, username, role string, subscribed bool, createdAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := f.storage.DB.Exec(`INSERT INTO profiles (id, full_name, username, role, subscribed, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, fullName, username, role, subscribed, username+"@example.com", createdAt)
	require.NoError(t, err)
	return id
}

func (f *testDataFactory) createActivity(t *testing.T, userID string, points, streak int, lastActive, updated time.Time) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO user_activity (user_id, points, streak, last_active_date, updated_at)
		VALUES ($1, $2, $3, $4, $5)`, userID, points, streak, lastActive, updated)
	require.NoError(t, err)
}

func (f *testDataFactory) createQuote(t *testing.T, userID, number string, total float64, createdAt time.Time) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO quotes (user_id, quote_number, total, status, created_at)
		VALUES ($1, $2, $3, 'draft', $4)`, userID, number, total, createdAt)
	require.NoError(t, err)
}

func (f *testDataFactory) createCertificate(t *testing.T, userID, address string, createdAt time.Time) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO certificates (user_id, installation_address, status, created_at)
		VALUES ($1, $2, 'issued', $3)`, userID, address, createdAt)
	require.NoError(t, err)
}

func (f *testDataFactory) createStudySession(t *testing.T, userID, topic string, minutes int, createdAt time.Time) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO study_sessions (user_id, topic, duration_minutes, created_at)
		VALUES ($1, $2, $3, $4)`, userID, topic, minutes, createdAt)
	require.NoError(t, err)
}

func (f *testDataFactory) createTimeSession(t *testing.T, userID, path string, seconds int, startedAt time.Time) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO time_tracking_sessions (user_id, page_path, duration_seconds, started_at)
		VALUES ($1, $2, $3, $4)`, userID, path, seconds, startedAt)
	require.NoError(t, err)
}

func (f *testDataFactory) createEvent(t *testing.T, userID, eventType, name, path string, createdAt time.Time) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO user_events (user_id, event_type, event_name, page_path, created_at)
		VALUES ($1, $2, $3, $4, $5)`, userID, eventType, name, path, createdAt)
	require.NoError(t, err)
}
