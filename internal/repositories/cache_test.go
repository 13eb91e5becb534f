package repositories

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/viglianco/go-sales-ledger/internal/common"
)

func cacheTestHelper(t *testing.T) (redismock.ClientMock, CacheRepository) {
	t.Helper()
	t.Parallel()

	db, mock := redismock.NewClientMock()
	cacheRepo := NewCacheRepository(db)

	return mock, cacheRepo
}

func TestCacheRepository_Get(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	tests := []struct {
		name    string
		key     string
		doMock  func(key string)
		want    string
		wantErr error
	}{
		{
			name: "test success",
			key:  "sales:daily:version:2024",
			doMock: func(key string) {
				mock.ExpectGet(key).SetVal(" 3 ")
			},
			want: "3",
		},
		{
			name: "test not found",
			key:  "sales:daily:version:2024",
			doMock: func(key string) {
				mock.ExpectGet(key).RedisNil()
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "test error",
			key:  "sales:daily:version:2024",
			doMock: func(key string) {
				mock.ExpectGet(key).SetErr(redis.ErrClosed)
			},
			wantErr: redis.ErrClosed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock(tt.key)

			got, err := rc.Get(context.TODO(), tt.key)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.Equal(t, tt.want, got)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
			mock.ClearExpect()
		})
	}
}

func TestCacheRepository_Incr(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	mock.ExpectIncr("sales:daily:version:2024").SetVal(4)
	got, err := rc.Incr(context.TODO(), "sales:daily:version:2024")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), got)

	mock.ExpectIncr("sales:daily:version:2024").SetErr(redis.ErrClosed)
	_, err = rc.Incr(context.TODO(), "sales:daily:version:2024")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_Del(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	mock.ExpectDel("a", "b").SetVal(2)
	assert.NoError(t, rc.Del(context.TODO(), "a", "b"))

	mock.ExpectDel("a").SetErr(redis.ErrClosed)
	assert.Error(t, rc.Del(context.TODO(), "a"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
