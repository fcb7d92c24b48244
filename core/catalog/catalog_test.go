package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"catalog-manager/core/catalog"
	"catalog-manager/core/textproto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCatalog = `
# reference catalog
doramas {
  dorama_info_id: 1
  chinese_title: "Alpha"
  japanese_title: "アルファ"
  release_year: 2020
  main_actor: "Sato"
  main_actor: "Suzuki"
  rating: 9
}
doramas {
  dorama_info_id: 2
  chinese_title: "Beta"
  release_year: 2019
}
`

func TestDecode(t *testing.T) {
	records, err := catalog.Decode(sampleCatalog, catalog.DefaultSchema())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, catalog.Record{
		ID:             "1",
		PrimaryTitle:   "Alpha",
		SecondaryTitle: "アルファ",
		Year:           2020,
		Cast:           []string{"Sato", "Suzuki"},
	}, records[0])

	// Missing repeated field decodes as empty, never nil
	assert.NotNil(t, records[1].Cast)
	assert.Empty(t, records[1].Cast)
	assert.Equal(t, "", records[1].SecondaryTitle)
}

func TestDecode_SingleRecordWithoutRepetition(t *testing.T) {
	schema := catalog.DefaultSchema()
	schema.Text = textproto.NewSchema("main_actor")

	records, err := catalog.Decode("doramas {\n dorama_info_id: 5\n release_year: 2001\n}", schema)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "5", records[0].ID)
}

func TestDecode_Empty(t *testing.T) {
	records, err := catalog.Decode("# nothing here", catalog.DefaultSchema())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEncode_RoundTrip(t *testing.T) {
	records := []catalog.Record{
		{ID: "10", PrimaryTitle: "Hello, World", SecondaryTitle: `He said "hi"`, Year: 1999, Cast: []string{"A", "B"}},
		{ID: "11", PrimaryTitle: "123", SecondaryTitle: "", Year: 2024, Cast: []string{}},
		{ID: "x-12", PrimaryTitle: "true", SecondaryTitle: "#hash", Year: 2001, Cast: []string{"C"}},
	}

	text, err := catalog.Encode(records, catalog.DefaultSchema())
	require.NoError(t, err)

	decoded, err := catalog.Decode(text, catalog.DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestCatalog_GetMemoizes(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	loader := catalog.LoaderFunc(func(ctx context.Context, source string) (string, error) {
		calls.Add(1)
		<-release
		return sampleCatalog, nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*catalog.RecordSet, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cat.Get(context.Background(), "main")
		}(i)
	}
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}

	again, err := cat.Get(context.Background(), "main")
	require.NoError(t, err)
	assert.Same(t, results[0], again)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCatalog_SourceUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		loader catalog.LoaderFunc
	}{
		{"Loader Error", func(ctx context.Context, source string) (string, error) {
			return "", errors.New("connection refused")
		}},
		{"Blank Content", func(ctx context.Context, source string) (string, error) {
			return "  \n\t\n", nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := catalog.New(tt.loader, catalog.DefaultSchema(), zap.NewNop())
			_, err := cat.Get(context.Background(), "main")
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrSourceUnavailable)

			_, cached := cat.Cached("main")
			assert.False(t, cached)
		})
	}
}

func TestCatalog_ParseErrorKeepsPreviousSet(t *testing.T) {
	text := sampleCatalog
	loader := catalog.LoaderFunc(func(ctx context.Context, source string) (string, error) {
		return text, nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())

	first, err := cat.Get(context.Background(), "main")
	require.NoError(t, err)

	text = "doramas {\n dorama_info_id: 3\n"
	_, err = cat.Reload(context.Background(), "main")
	require.Error(t, err)
	var perr *textproto.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.NotErrorIs(t, err, catalog.ErrSourceUnavailable)

	cached, ok := cat.Cached("main")
	require.True(t, ok)
	assert.Same(t, first, cached)
}

func TestCatalog_DuplicateIDs(t *testing.T) {
	loader := catalog.LoaderFunc(func(ctx context.Context, source string) (string, error) {
		return "doramas {\n dorama_info_id: 1\n}\ndoramas {\n dorama_info_id: 1\n}", nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())

	_, err := cat.Get(context.Background(), "main")
	assert.ErrorIs(t, err, catalog.ErrInvalidRecordSet)
}

func TestCatalog_FailedLoadIsRetried(t *testing.T) {
	var calls atomic.Int32
	loader := catalog.LoaderFunc(func(ctx context.Context, source string) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("timeout")
		}
		return sampleCatalog, nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())

	_, err := cat.Get(context.Background(), "main")
	require.Error(t, err)

	set, err := cat.Get(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestCatalog_SourceKeyOutlivesCallerBuffer(t *testing.T) {
	loader := catalog.LoaderFunc(func(context.Context, string) (string, error) {
		return sampleCatalog, nil
	})
	cat := catalog.New(loader, catalog.DefaultSchema(), zap.NewNop())

	// Same aliasing as a fasthttp route param whose buffer is reused by the next request
	buf := []byte("aaaa.txtpb")
	source := unsafe.String(&buf[0], len(buf))

	_, err := cat.Get(context.Background(), source)
	require.NoError(t, err)
	copy(buf, "bbbb.txtpb")

	_, ok := cat.Cached("aaaa.txtpb")
	assert.True(t, ok)
	_, ok = cat.Cached("bbbb.txtpb")
	assert.False(t, ok)
}
