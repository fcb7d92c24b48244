package marks_test

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"catalog-manager/core/database"
	"catalog-manager/core/storage/mocks"
	"catalog-manager/feature/marks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newDBStore(t *testing.T) *marks.DBStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := marks.NewDBStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDBStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		ids, err := newDBStore(t).Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{}, ids)
	})

	t.Run("Write Replaces In Order", func(t *testing.T) {
		store := newDBStore(t)
		require.NoError(t, store.Write(ctx, []string{"3", "1", "2"}))

		ids, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "1", "2"}, ids)

		require.NoError(t, store.Write(ctx, []string{"2", "9", "2"}))
		ids, err = store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "9"}, ids)

		require.NoError(t, store.Write(ctx, nil))
		ids, err = store.Read(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("Verify", func(t *testing.T) {
		assert.NoError(t, newDBStore(t).Verify())

		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE marked_records (record_id TEXT PRIMARY KEY)").Error)
		err = marks.NewDBStore(db).Verify()
		assert.ErrorContains(t, err, "position, created_at")
	})

	t.Run("Read Failure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT `record_id` FROM `marked_records`")).
			WillReturnError(errors.New("connection lost"))

		_, err := marks.NewDBStore(db).Read(ctx)
		assert.ErrorContains(t, err, "connection lost")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Write Failure Rolls Back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `marked_records`")).
			WillReturnError(errors.New("lock wait timeout"))
		mock.ExpectRollback()

		err := marks.NewDBStore(db).Write(ctx, []string{"1"})
		assert.ErrorContains(t, err, "lock wait timeout")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestObjectStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads Array", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalog", "marks.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`["1","2"]`)), nil)

		ids, err := marks.NewObjectStore(client, "catalog", "marks.json", zap.NewNop()).Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids)
	})

	t.Run("Missing Is Empty", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalog", "marks.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		ids, err := marks.NewObjectStore(client, "catalog", "marks.json", zap.NewNop()).Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{}, ids)
	})

	t.Run("Corrupt Is Empty", func(t *testing.T) {
		for _, body := range []string{"{not json", `{"ids":1}`, "   "} {
			client := new(mocks.Client)
			client.On("GetObject", mock.Anything, "catalog", "marks.json", mock.Anything).
				Return(io.NopCloser(strings.NewReader(body)), nil)

			ids, err := marks.NewObjectStore(client, "catalog", "marks.json", zap.NewNop()).Read(ctx)
			require.NoError(t, err, body)
			assert.Equal(t, []string{}, ids, body)
		}
	})

	t.Run("Unreachable Is Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalog", "marks.json", mock.Anything).
			Return(nil, errors.New("dial tcp: refused"))

		_, err := marks.NewObjectStore(client, "catalog", "marks.json", zap.NewNop()).Read(ctx)
		assert.ErrorContains(t, err, "refused")
	})

	t.Run("Writes JSON", func(t *testing.T) {
		client := new(mocks.Client)
		var written string
		client.On("PutObject", mock.Anything, "catalog", "marks.json", mock.Anything, int64(9), mock.Anything).
			Run(func(args mock.Arguments) {
				data, _ := io.ReadAll(args.Get(3).(io.Reader))
				written = string(data)
			}).
			Return(minio.UploadInfo{}, nil)

		err := marks.NewObjectStore(client, "catalog", "marks.json", zap.NewNop()).Write(ctx, []string{"1", "2"})
		require.NoError(t, err)
		assert.Equal(t, `["1","2"]`, written)
		client.AssertExpectations(t)
	})
}
