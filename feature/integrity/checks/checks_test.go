package checks

import (
	"context"
	"errors"
	"testing"

	"catalog-manager/core/catalog"
	"catalog-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type providerFunc func(ctx context.Context, source string) (*catalog.RecordSet, error)

func (f providerFunc) Get(ctx context.Context, source string) (*catalog.RecordSet, error) {
	return f(ctx, source)
}

type verifierFunc func() error

func (f verifierFunc) Verify() error { return f() }

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Skipped Without Client", func(t *testing.T) {
		report := CheckStorage(ctx, nil, "catalog")
		assert.Equal(t, StatusSkipped, report.Status)
	})

	t.Run("Bucket Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)

		report := CheckStorage(ctx, client, "catalog")
		assert.Equal(t, StatusOK, report.Status)
		assert.Empty(t, report.Error)
		client.AssertExpectations(t)
	})

	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)

		report := CheckStorage(ctx, client, "catalog")
		assert.Equal(t, StatusError, report.Status)
		assert.Contains(t, report.Error, "does not exist")
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, errors.New("dial tcp: refused"))

		report := CheckStorage(ctx, client, "catalog")
		assert.Equal(t, StatusError, report.Status)
		assert.Contains(t, report.Error, "refused")
	})
}

func TestCheckSources(t *testing.T) {
	set, err := catalog.NewRecordSet("films", []catalog.Record{
		{ID: "1", Year: 2001, PrimaryTitle: "Alpha"},
		{ID: "2", Year: 2002, PrimaryTitle: "Beta"},
	})
	require.NoError(t, err)

	provider := providerFunc(func(_ context.Context, source string) (*catalog.RecordSet, error) {
		if source == "broken" {
			return nil, &catalog.SourceError{Source: source, Err: errors.New("not found")}
		}
		return set, nil
	})

	reports := CheckSources(context.Background(), provider, []string{"films", "broken", "series"})
	require.Len(t, reports, 3)

	assert.Equal(t, "films", reports[0].Source)
	assert.Equal(t, StatusOK, reports[0].Status)
	assert.Equal(t, 2, reports[0].Records)

	assert.Equal(t, "broken", reports[1].Source)
	assert.Equal(t, StatusError, reports[1].Status)
	assert.NotEmpty(t, reports[1].Error)

	assert.Equal(t, "series", reports[2].Source)
	assert.Equal(t, StatusOK, reports[2].Status)

	assert.False(t, Healthy(reports))
	assert.True(t, Healthy([]SourceReport{reports[0], reports[2]}))
	assert.True(t, Healthy(nil))
}

func TestCheckSchema(t *testing.T) {
	assert.Equal(t, StatusSkipped, CheckSchema(struct{}{}).Status)
	assert.Equal(t, StatusOK, CheckSchema(verifierFunc(func() error { return nil })).Status)

	report := CheckSchema(verifierFunc(func() error { return errors.New("missing columns: position") }))
	assert.Equal(t, StatusError, report.Status)
	assert.Equal(t, "missing columns: position", report.Error)
}
