package records_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/core/fuzzy"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/server"
	"catalog-manager/core/tabular"
	"catalog-manager/feature/records"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const source = "dorama_info.txtpb"

const sourceText = `
doramas {
  dorama_info_id: "1"
  chinese_title: "Alpha"
  release_year: 2020
  main_actor: "Aya"
  main_actor: "Ben"
}
doramas {
  dorama_info_id: "2"
  chinese_title: "Beta"
  release_year: 2019
  main_actor: "Ben"
}
doramas {
  dorama_info_id: "3"
  chinese_title: "Gamma"
  japanese_title: "ガンマ"
  release_year: 2020
}
`

func newService(t *testing.T, store reconcile.IdentifierStore) *records.Service {
	t.Helper()
	loader := catalog.LoaderFunc(func(_ context.Context, src string) (string, error) {
		if src != source {
			return "", errors.New("not found")
		}
		return sourceText, nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())
	codec := tabular.NewCodec(tabular.DefaultConfig(), tabular.WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	return records.NewService(cat, store, codec, []string{source, "broken.txtpb"}, zap.NewNop())
}

func newApp(t *testing.T, store reconcile.IdentifierStore) *fiber.App {
	t.Helper()
	app := fiber.New(server.Config{}.FiberConfig())
	require.NoError(t, records.NewFeature(newService(t, store), zap.NewNop()).Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, url string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestService(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, reconcile.NewMemoryStore("3"))

	t.Run("Groups", func(t *testing.T) {
		groups, err := svc.Groups(ctx, source, records.Query{})
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, 2020, groups[0].Year)
		assert.Len(t, groups[0].Records, 2)

		groups, err = svc.Groups(ctx, source, records.Query{Filter: catalog.Filter{Actor: "Ben"}, Top: 1})
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "1", groups[0].Records[0].ID)
		assert.Equal(t, "2", groups[1].Records[0].ID)
	})

	t.Run("Years", func(t *testing.T) {
		years, err := svc.Years(ctx, source)
		require.NoError(t, err)
		assert.Equal(t, []int{2019, 2020}, years)
	})

	t.Run("Export Marked", func(t *testing.T) {
		text, n, err := svc.Export(ctx, source, false)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, "year,primaryTitle,secondaryTitle,cast,id\n2020,Gamma,ガンマ,,3\n", text)
	})

	t.Run("Export All", func(t *testing.T) {
		_, n, err := svc.Export(ctx, source, true)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("Unknown Source", func(t *testing.T) {
		_, err := svc.Years(ctx, "other.txtpb")
		var unknown *records.UnknownSourceError
		assert.True(t, errors.As(err, &unknown))
	})

	t.Run("Unavailable Source", func(t *testing.T) {
		_, err := svc.Years(ctx, "broken.txtpb")
		assert.ErrorIs(t, err, catalog.ErrSourceUnavailable)
	})
}

func TestHandler(t *testing.T) {
	app := newApp(t, reconcile.NewMemoryStore("1"))

	t.Run("Sources", func(t *testing.T) {
		status, body := get(t, app, "/catalog")
		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"sources":["dorama_info.txtpb","broken.txtpb"]}`, string(body))
	})

	t.Run("Records Filtered", func(t *testing.T) {
		status, body := get(t, app, "/catalog/"+source+"/records?start=2020&q=gam")
		assert.Equal(t, fiber.StatusOK, status)

		var groups []catalog.YearGroup
		require.NoError(t, json.Unmarshal(body, &groups))
		require.Len(t, groups, 1)
		require.Len(t, groups[0].Records, 1)
		assert.Equal(t, "3", groups[0].Records[0].ID)
	})

	t.Run("Export", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalog/"+source+"/export", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, `attachment; filename="dorama_info_1.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "2020,Alpha,,Aya;Ben,1\n")
	})

	t.Run("Match", func(t *testing.T) {
		status, body := get(t, app, "/catalog/"+source+"/match?q=Alfa")
		assert.Equal(t, fiber.StatusOK, status)

		var candidates []fuzzy.Candidate
		require.NoError(t, json.Unmarshal(body, &candidates))
		require.Len(t, candidates, 1)
		assert.Equal(t, "1", candidates[0].Record.ID)

		status, _ = get(t, app, "/catalog/"+source+"/match")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("Error Statuses", func(t *testing.T) {
		status, _ := get(t, app, "/catalog/other.txtpb/years")
		assert.Equal(t, fiber.StatusNotFound, status)

		status, body := get(t, app, "/catalog/broken.txtpb/years")
		assert.Equal(t, fiber.StatusBadGateway, status)
		assert.Contains(t, string(body), "error")
	})
}

func TestHandler_CachesEverySource(t *testing.T) {
	var loads atomic.Int32
	loader := catalog.LoaderFunc(func(context.Context, string) (string, error) {
		loads.Add(1)
		return sourceText, nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())
	svc := records.NewService(cat, reconcile.NewMemoryStore(), tabular.NewCodec(tabular.DefaultConfig()),
		[]string{"aaaa.txtpb", "bbbb.txtpb"}, zap.NewNop())

	app := fiber.New(server.Config{}.FiberConfig())
	require.NoError(t, records.NewFeature(svc, zap.NewNop()).Load(app))

	for _, src := range []string{"aaaa.txtpb", "bbbb.txtpb", "aaaa.txtpb", "bbbb.txtpb", "aaaa.txtpb"} {
		status, _ := get(t, app, "/catalog/"+src+"/years")
		require.Equal(t, fiber.StatusOK, status)
	}

	assert.Equal(t, int32(2), loads.Load())
	_, ok := cat.Cached("aaaa.txtpb")
	assert.True(t, ok)
	_, ok = cat.Cached("bbbb.txtpb")
	assert.True(t, ok)
}
