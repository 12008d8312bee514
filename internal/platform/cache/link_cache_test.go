package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/phrazzld/roadnet-api/internal/mocks"
	"github.com/phrazzld/roadnet-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const record = `(1,2,"{A_F,B_F}","{""type"":""LineString"",""coordinates"":[[0,0],[1,1]]}")`

func TestLinksBetweenNodesKey(t *testing.T) {
	assert.Equal(t, "roadnet:link-nodes:1:2", LinksBetweenNodesKey(1, 2))
	assert.Equal(t, "roadnet:link-nodes:2:1", LinksBetweenNodesKey(2, 1))
}

func TestCachedLinkStore_LinksBetweenNodes(t *testing.T) {
	ctx := context.Background()
	key := LinksBetweenNodesKey(1, 2)

	t.Run("cache miss reads through and caches", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		next := &mocks.MockLinkStore{AggregateText: record}
		cached := NewCachedLinkStore(next, rdb, time.Minute, nil)

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, record, time.Minute).SetVal("OK")

		text, err := cached.LinksBetweenNodes(ctx, 1, 2)

		require.NoError(t, err)
		assert.Equal(t, record, text)
		assert.Len(t, next.Calls, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		next := &mocks.MockLinkStore{DefaultError: errors.New("must not be called")}
		cached := NewCachedLinkStore(next, rdb, time.Minute, nil)

		mock.ExpectGet(key).SetVal(record)

		text, err := cached.LinksBetweenNodes(ctx, 1, 2)

		require.NoError(t, err)
		assert.Equal(t, record, text)
		assert.Empty(t, next.Calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure falls back to the store", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		next := &mocks.MockLinkStore{AggregateText: record}
		buf, log := logger.SetupTestLogger(t)
		cached := NewCachedLinkStore(next, rdb, time.Minute, log)

		mock.ExpectGet(key).SetErr(errors.New("connection refused"))
		mock.ExpectSet(key, record, time.Minute).SetErr(errors.New("connection refused"))

		text, err := cached.LinksBetweenNodes(ctx, 1, 2)

		require.NoError(t, err)
		assert.Equal(t, record, text)
		assert.Contains(t, buf.String(), "failed to read link-nodes cache")
		assert.Contains(t, buf.String(), "failed to write link-nodes cache")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store error is not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		storeErr := errors.New("statement timeout")
		next := &mocks.MockLinkStore{DefaultError: storeErr}
		cached := NewCachedLinkStore(next, rdb, time.Minute, nil)

		mock.ExpectGet(key).RedisNil()

		_, err := cached.LinksBetweenNodes(ctx, 1, 2)

		assert.ErrorIs(t, err, storeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty text is not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		next := &mocks.MockLinkStore{}
		cached := NewCachedLinkStore(next, rdb, time.Minute, nil)

		mock.ExpectGet(key).RedisNil()

		text, err := cached.LinksBetweenNodes(ctx, 1, 2)

		require.NoError(t, err)
		assert.Empty(t, text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCachedLinkStore_GetLinkPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	row := domain.LinkRow{LinkDir: "A_F", LinkID: 1}
	cached := NewCachedLinkStore(&mocks.MockLinkStore{Link: row}, rdb, 0, nil)

	got, err := cached.GetLink(context.Background(), "A_F")

	require.NoError(t, err)
	assert.Equal(t, row, got)
	assert.Equal(t, DefaultTTL, cached.ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}
