package database

import (
	"context"
	"errors"
	"testing"

	"skillgap-analyzer/internal/common/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_PingAndClose(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	c, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)

	assert.NoError(t, c.Ping(context.Background()))
	assert.NoError(t, c.Close())
}

func TestNewRedis_URL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	c, err := NewRedis(config.RedisConfig{Address: "redis://" + mr.Addr() + "/2"})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 2, c.Client.Options().DB)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{Address: "redis://localhost:notaport"})
	assert.Error(t, err)
}

func TestRedisClient_PingFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	c, err := NewRedis(config.RedisConfig{Address: addr})
	require.NoError(t, err)
	defer c.Close()

	assert.ErrorContains(t, c.Ping(context.Background()), "redis ping failed")
}

func TestPostgresClient_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	c := &PostgresClient{DB: db}
	mock.ExpectPing()
	assert.NoError(t, c.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.ErrorContains(t, c.Ping(context.Background()), "postgres ping failed")

	mock.ExpectClose()
	assert.NoError(t, c.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPingOrClose(t *testing.T) {
	t.Run("healthy pool stays open", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing()
		assert.NoError(t, PingOrClose(context.Background(), &PostgresClient{DB: db}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed postgres ping closes the pool", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectClose()
		err = PingOrClose(context.Background(), &PostgresClient{DB: db})

		assert.ErrorContains(t, err, "postgres ping failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed redis ping closes the client", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		c, err := NewRedis(config.RedisConfig{Address: addr})
		require.NoError(t, err)

		assert.ErrorContains(t, PingOrClose(context.Background(), c), "redis ping failed")
		assert.ErrorIs(t, c.Client.Ping(context.Background()).Err(), redis.ErrClosed)
	})
}
