package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/nikolayk812/boutique/internal/port"
	"github.com/nikolayk812/boutique/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startRedis(ctx context.Context) (*tcredis.RedisContainer, string, error) {
	redisContainer, err := tcredis.Run(ctx, "redis:7.4-alpine")
	if err != nil {
		return nil, "", fmt.Errorf("tcredis.Run: %w", err)
	}

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("rc.ConnectionString: %w", err)
	}

	return redisContainer, connStr, nil
}

type redisStoreSuite struct {
	kvStoreSuite

	container *tcredis.RedisContainer
	client    *redis.Client
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	suite.Run(t, new(redisStoreSuite))
}

func (suite *redisStoreSuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)
	suite.container, connStr, err = startRedis(ctx)
	suite.Require().NoError(err)

	opts, err := redis.ParseURL(connStr)
	suite.Require().NoError(err)
	suite.client = redis.NewClient(opts)

	suite.namespaced = true
	suite.newStore = func(namespace string) port.KeyValueStore {
		s, err := store.NewRedis(suite.client, namespace)
		suite.Require().NoError(err)
		return s
	}
}

func (suite *redisStoreSuite) TearDownSuite() {
	if suite.client != nil {
		suite.NoError(suite.client.Close())
	}
	suite.NoError(testcontainers.TerminateContainer(suite.container))
}

func (suite *redisStoreSuite) TestKeyLayout() {
	t := suite.T()
	ctx := t.Context()

	s, err := store.NewRedis(suite.client, "tab-1")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "boutique-cart", "[]"))

	value, err := suite.client.Get(ctx, "tab-1:boutique-cart").Result()
	require.NoError(t, err)
	suite.Equal("[]", value)
}
