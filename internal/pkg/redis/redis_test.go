package redis

import (
	"context"
	"testing"

	"gramsetu/credit_lending/configs"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Connection tests run against an in-memory Redis server (miniredis)
func TestConnectToRedis(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer s.Close()

	client, err := ConnectToRedis(context.Background(), configs.RedisConfig{Addr: s.Addr()}, nil)
	require.NoError(t, err)
	require.NotNil(t, client)
	defer Disconnect(client.Client)

	require.NoError(t, client.Client.Set(context.Background(), "k", "v", 0).Err())
	val, err := client.Client.Get(context.Background(), "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestConnectToRedisPingFailure(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	addr := s.Addr()
	s.Close()

	client, err := ConnectToRedis(context.Background(), configs.RedisConfig{Addr: addr}, nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestBuildTLSConfig(t *testing.T) {
	t.Run("no cert content returns base config", func(t *testing.T) {
		tlsConfig, err := buildTLSConfig(context.Background(), configs.RedisConfig{EnableTLS: true})
		require.NoError(t, err)
		assert.Empty(t, tlsConfig.Certificates)
		assert.Nil(t, tlsConfig.RootCAs)
	})

	t.Run("invalid cert content fails", func(t *testing.T) {
		_, err := buildTLSConfig(context.Background(), configs.RedisConfig{
			EnableTLS:   true,
			CertContent: "not a pem block",
		})
		assert.Error(t, err)
	})
}
