package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/remote"
)

func startRedis(t *testing.T) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:8-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestNewRequiresSettings(t *testing.T) {
	_, err := New(config.RemoteConfig{Key: "words"})
	assert.ErrorIs(t, err, remote.ErrMissingSetting)
	_, err = New(config.RemoteConfig{Addr: "localhost:6379"})
	assert.ErrorIs(t, err, remote.ErrMissingSetting)
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, remote.Kinds(), "redis")
}

func TestFetchKeyTypes(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.RPush(ctx, "list", "TEAM", "MATE", "TAME").Err())
	require.NoError(t, client.SAdd(ctx, "set", "NOTES", "STONE", "TONES").Err())
	require.NoError(t, client.ZAdd(ctx, "zset",
		&redis.Z{Score: 2, Member: "SILENT"},
		&redis.Z{Score: 1, Member: "LISTEN"},
	).Err())
	require.NoError(t, client.Set(ctx, "text", "APPLE\nPEAL\n", 0).Err())
	require.NoError(t, client.HSet(ctx, "hash", "a", "b").Err())

	testCases := []struct {
		key  string
		want []string
	}{
		{"list", []string{"TEAM", "MATE", "TAME"}},
		{"set", []string{"NOTES", "STONE", "TONES"}},
		{"zset", []string{"LISTEN", "SILENT"}},
		{"text", []string{"APPLE", "PEAL", ""}},
		{"missing", []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			f, err := New(config.RemoteConfig{Addr: addr, Key: tc.key})
			require.NoError(t, err)
			defer f.Close()

			got, err := f.Fetch(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	f, err := New(config.RemoteConfig{Addr: addr, Key: "hash"})
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Fetch(ctx)
	assert.ErrorContains(t, err, "unsupported Redis type")
}

func TestLoadThroughRegistry(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.RPush(ctx, "words", "RATE", "TEAR", "TARE").Err())

	src, err := remote.Load(ctx, config.RemoteConfig{
		Name: "cache", Kind: "redis", Addr: addr, Key: "words", MaxWords: 2, TimeoutSeconds: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "cache", src.Name)
	assert.Equal(t, []string{"RATE", "TEAR"}, src.Lines)
	assert.True(t, src.Enabled)
}
