package analytics

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/hidden"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]models.UserRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.UserRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListActivity(ctx context.Context) ([]models.ActivityRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.ActivityRow)
	return rows, args.Error(1)
}

func (m *MockRepository) CountQuotes(ctx context.Context) ([]models.CountRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.CountRow)
	return rows, args.Error(1)
}

func (m *MockRepository) CountCertificates(ctx context.Context) ([]models.CountRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.CountRow)
	return rows, args.Error(1)
}

func (m *MockRepository) CountStudySessions(ctx context.Context) ([]models.CountRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.CountRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListEventSummaries(ctx context.Context) ([]models.EventSummaryRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.EventSummaryRow)
	return rows, args.Error(1)
}

func (m *MockRepository) GetActivity(ctx context.Context, userID string) (*models.ActivityRow, error) {
	args := m.Called(ctx, userID)
	row, _ := args.Get(0).(*models.ActivityRow)
	return row, args.Error(1)
}

func (m *MockRepository) ListQuotes(ctx context.Context, userID string) ([]models.QuoteRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]models.QuoteRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListCertificates(ctx context.Context, userID string) ([]models.CertificateRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]models.CertificateRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListStudySessions(ctx context.Context, userID string) ([]models.StudySessionRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]models.StudySessionRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListTimeSessions(ctx context.Context, userID string) ([]models.TimeSessionRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]models.TimeSessionRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListRecentEvents(ctx context.Context, userID string, limit int) ([]models.EventRow, error) {
	args := m.Called(ctx, userID, limit)
	rows, _ := args.Get(0).([]models.EventRow)
	return rows, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockHiddenStore struct {
	mock.Mock
}

func (m *MockHiddenStore) Members(ctx context.Context) (*hidden.Set, error) {
	args := m.Called(ctx)
	set, _ := args.Get(0).(*hidden.Set)
	return set, args.Error(1)
}

func (m *MockHiddenStore) Add(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHiddenStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
