package importer_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/server"
	"catalog-manager/core/tabular"
	"catalog-manager/feature/importer"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const source = "top.txtpb"

const csvBody = "year,primaryTitle,secondaryTitle,cast,id\n" +
	"2020,Alpha,,,1\n" +
	"2020,Ghost,,,99\n"

func newApp(t *testing.T, store reconcile.IdentifierStore, loadErr error) *fiber.App {
	t.Helper()
	loader := catalog.LoaderFunc(func(context.Context, string) (string, error) {
		if loadErr != nil {
			return "", loadErr
		}
		return `
doramas {
  dorama_info_id: "1"
  chinese_title: "Alpha"
  release_year: 2020
}
doramas {
  dorama_info_id: "2"
  chinese_title: "Beta"
  release_year: 2019
}`, nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())
	codec := tabular.NewCodec(tabular.DefaultConfig(), tabular.WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	coord := reconcile.NewCoordinator(cat, codec, store, zap.NewNop())

	app := fiber.New(server.Config{}.FiberConfig())
	require.NoError(t, importer.NewFeature(coord, []string{source}, zap.NewNop()).Load(app))
	return app
}

func post(t *testing.T, app *fiber.App, url, contentType, body string) (int, importer.OperationResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out importer.OperationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("Preview Does Not Write", func(t *testing.T) {
		store := reconcile.NewMemoryStore("2")
		status, out := post(t, newApp(t, store, nil), "/imports/"+source+"/csv/preview", "text/csv", csvBody)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, reconcile.StateCancelled, out.State)
		assert.Equal(t, []string{"1"}, out.Preview.New)
		require.NotNil(t, out.Validation)
		assert.Equal(t, 1, out.Validation.InvalidCount)
		assert.Equal(t, "1 to import: 1 new, 0 already marked, 1 rows skipped", out.Summary)

		ids, _ := store.Read(ctx)
		assert.Equal(t, []string{"2"}, ids)
	})

	t.Run("Apply Merge", func(t *testing.T) {
		store := reconcile.NewMemoryStore("2")
		status, out := post(t, newApp(t, store, nil), "/imports/"+source+"/csv/apply", "text/csv", csvBody)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, reconcile.StateApplied, out.State)
		assert.Equal(t, reconcile.StrategyMerge, out.Outcome.Strategy)

		ids, _ := store.Read(ctx)
		assert.Equal(t, []string{"2", "1"}, ids)
	})

	t.Run("Apply Overwrite", func(t *testing.T) {
		store := reconcile.NewMemoryStore("2")
		status, _ := post(t, newApp(t, store, nil), "/imports/"+source+"/csv/apply?strategy=overwrite", "text/csv", csvBody)
		assert.Equal(t, fiber.StatusOK, status)

		ids, _ := store.Read(ctx)
		assert.Equal(t, []string{"1"}, ids)
	})

	t.Run("Bad Header", func(t *testing.T) {
		store := reconcile.NewMemoryStore("2")
		status, out := post(t, newApp(t, store, nil), "/imports/"+source+"/csv/apply", "text/csv", "year,title,cast,id\n2020,Alpha,,1\n")

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, reconcile.StateRejected, out.State)
		assert.Contains(t, out.Error, "headerMismatch")

		ids, _ := store.Read(ctx)
		assert.Equal(t, []string{"2"}, ids)
	})

	t.Run("Row Errors Are Capped", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("year,primaryTitle,secondaryTitle,cast,id\n2020,Alpha,,,1\n")
		for i := 0; i < 50; i++ {
			fmt.Fprintf(&b, "2020,Ghost,,,%d\n", 100+i)
		}

		req := httptest.NewRequest(http.MethodPost, "/imports/"+source+"/csv/preview", strings.NewReader(b.String()))
		req.Header.Set("Content-Type", "text/csv")
		resp, err := newApp(t, reconcile.NewMemoryStore(), nil).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		var preview map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw["preview"], &preview))
		assert.NotContains(t, preview, "validation")

		var report tabular.ValidationReport
		require.NoError(t, json.Unmarshal(raw["validation"], &report))
		assert.Equal(t, 1, report.ValidCount)
		assert.Equal(t, 50, report.InvalidCount)
		assert.Len(t, report.Errors, tabular.DefaultConfig().MaxDisplayedErrors)
		assert.Equal(t, 3, report.Errors[0].Row)
	})

	t.Run("All Rows Invalid Reports Reasons", func(t *testing.T) {
		store := reconcile.NewMemoryStore("2")
		body := "year,primaryTitle,secondaryTitle,cast,id\n2020,Ghost,,,99\n1800,Alpha,,,1\n"
		status, out := post(t, newApp(t, store, nil), "/imports/"+source+"/csv/apply", "text/csv", body)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, reconcile.StateRejected, out.State)
		assert.Contains(t, out.Error, "noValidRows")
		require.NotNil(t, out.Validation)
		assert.False(t, out.Validation.Valid)
		assert.Equal(t, 2, out.Validation.InvalidCount)
		require.Len(t, out.Validation.Errors, 2)
		assert.Equal(t, tabular.ReasonUnknownID, out.Validation.Errors[0].Reason)
		assert.Equal(t, tabular.ReasonInvalidYear, out.Validation.Errors[1].Reason)

		ids, _ := store.Read(ctx)
		assert.Equal(t, []string{"2"}, ids)
	})

	t.Run("Source Unavailable", func(t *testing.T) {
		store := reconcile.NewMemoryStore("2")
		status, out := post(t, newApp(t, store, errors.New("bucket offline")), "/imports/"+source+"/csv/apply", "text/csv", csvBody)

		assert.Equal(t, fiber.StatusBadGateway, status)
		assert.Equal(t, reconcile.StateRejected, out.State)
		assert.Nil(t, out.Preview)
	})

	t.Run("Unknown Strategy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/imports/"+source+"/csv/apply?strategy=replace", strings.NewReader(csvBody))
		resp, err := newApp(t, reconcile.NewMemoryStore(), nil).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown Source", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/imports/other.txtpb/csv/preview", strings.NewReader(csvBody))
		resp, err := newApp(t, reconcile.NewMemoryStore(), nil).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestText(t *testing.T) {
	ctx := context.Background()

	t.Run("Preview Suggests", func(t *testing.T) {
		store := reconcile.NewMemoryStore()
		status, out := post(t, newApp(t, store, nil), "/imports/"+source+"/text/preview", "application/json", `{"text":"Alfa\nZzzz"}`)

		assert.Equal(t, fiber.StatusOK, status)
		require.Len(t, out.Preview.Matches, 2)
		assert.Equal(t, "1", out.Preview.Matches[0].Selected)
		assert.Empty(t, out.Preview.Matches[1].Candidates)

		ids, _ := store.Read(ctx)
		assert.Empty(t, ids)
	})

	t.Run("Apply Uses Selections Only", func(t *testing.T) {
		store := reconcile.NewMemoryStore("1")
		body := `{"text":"Alfa, Beta","selections":{"Beta":"2"},"strategy":"merge"}`
		status, out := post(t, newApp(t, store, nil), "/imports/"+source+"/text/apply", "application/json", body)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, reconcile.StateApplied, out.State)

		ids, _ := store.Read(ctx)
		assert.Equal(t, []string{"1", "2"}, ids)
	})

	t.Run("Apply Without Selections Is Rejected", func(t *testing.T) {
		store := reconcile.NewMemoryStore("1")
		status, out := post(t, newApp(t, store, nil), "/imports/"+source+"/text/apply", "application/json", `{"text":"Alfa"}`)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, reconcile.StateRejected, out.State)
	})

	t.Run("Missing Text", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/imports/"+source+"/text/preview", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := newApp(t, reconcile.NewMemoryStore(), nil).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
