package integrity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"catalog-manager/core/catalog"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/server"
	"catalog-manager/core/storage"
	"catalog-manager/core/storage/mocks"
	"catalog-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type providerFunc func(ctx context.Context, source string) (*catalog.RecordSet, error)

func (f providerFunc) Get(ctx context.Context, source string) (*catalog.RecordSet, error) {
	return f(ctx, source)
}

func healthyProvider(t *testing.T) reconcile.RecordProvider {
	t.Helper()
	set, err := catalog.NewRecordSet("films", []catalog.Record{{ID: "1", Year: 2001, PrimaryTitle: "Alpha"}})
	require.NoError(t, err)
	return providerFunc(func(context.Context, string) (*catalog.RecordSet, error) {
		return set, nil
	})
}

func setupApp(t *testing.T, client storage.Client, provider reconcile.RecordProvider) *fiber.App {
	t.Helper()
	svc := NewService(client, "catalog", provider, []string{"films"}, reconcile.NewMemoryStore(), zap.NewNop())

	feature := NewFeature(svc)
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New(server.Config{}.FiberConfig())
	require.NoError(t, feature.Load(app))
	return app
}

func TestService_Run(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)

	svc := NewService(client, "catalog", healthyProvider(t), []string{"films"}, reconcile.NewMemoryStore(), zap.NewNop())
	report := svc.Run(context.Background())

	assert.True(t, report.Healthy)
	assert.Equal(t, checks.StatusOK, report.Storage.Status)
	assert.Equal(t, checks.StatusSkipped, report.Schema.Status)
	require.Len(t, report.Sources, 1)
	assert.Equal(t, 1, report.Sources[0].Records)
}

func TestHandler(t *testing.T) {
	t.Run("All Healthy", func(t *testing.T) {
		app := setupApp(t, nil, healthyProvider(t))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.True(t, report.Healthy)
		assert.Equal(t, checks.StatusSkipped, report.Storage.Status)
	})

	t.Run("Failing Source", func(t *testing.T) {
		provider := providerFunc(func(_ context.Context, source string) (*catalog.RecordSet, error) {
			return nil, &catalog.SourceError{Source: source, Err: errors.New("not found")}
		})
		app := setupApp(t, nil, provider)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/integrity/sources", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var reports []checks.SourceReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&reports))
		require.Len(t, reports, 1)
		assert.Equal(t, checks.StatusError, reports[0].Status)
	})

	t.Run("Storage", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)
		app := setupApp(t, client, healthyProvider(t))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
		require.NoError(t, err)

		var report checks.StorageReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, checks.StatusError, report.Status)
	})

	t.Run("Schema", func(t *testing.T) {
		app := setupApp(t, nil, healthyProvider(t))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
		require.NoError(t, err)

		var report checks.SchemaReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, checks.StatusSkipped, report.Status)
	})
}
