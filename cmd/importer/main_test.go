package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"orrery-api/internal/catalog"
	"orrery-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogStore is a mock implementation of the catalogStore interface
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCatalogStore) ReplaceCatalog(ctx context.Context, records []models.CatalogRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockCatalogStore) CountBodies(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.out")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCatalog(t *testing.T) {
	records, err := parseCatalog(writeCatalog(t, "\"Sun\" 1.496*^8\n\"Mercury\" 5.79*^7\n"))
	require.NoError(t, err)
	assert.Equal(t, []models.CatalogRecord{
		{Position: 0, Name: "Sun", Value: "1.496*^8"},
		{Position: 1, Name: "Mercury", Value: "5.79*^7"},
	}, records)
}

func TestParseCatalog_RejectsBadFiles(t *testing.T) {
	_, err := parseCatalog(writeCatalog(t, "\"Sun\" 1.496*^8\n\"Mercury\" far\n"))
	assert.ErrorIs(t, err, catalog.ErrMalformedLine)

	_, err = parseCatalog(writeCatalog(t, "\n\n"))
	assert.Error(t, err)

	_, err = parseCatalog(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestImportCatalog(t *testing.T) {
	records := []models.CatalogRecord{{Position: 0, Name: "Sun", Value: "1"}}

	tests := []struct {
		name        string
		count       int
		replaceErr  error
		expectError bool
	}{
		{name: "success", count: 1},
		{name: "count mismatch", count: 0, expectError: true},
		{name: "copy failure", replaceErr: assert.AnError, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockCatalogStore)
			store.On("EnsureSchema", mock.Anything).Return(nil)
			store.On("ReplaceCatalog", mock.Anything, records).Return(tt.replaceErr)
			if tt.replaceErr == nil {
				store.On("CountBodies", mock.Anything).Return(tt.count, nil)
			}

			err := importCatalog(context.Background(), store, records)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			store.AssertExpectations(t)
		})
	}
}
