package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

// newTestRedisClient spins up an in-process miniredis and a client
// pointed at it. The server supports FastForward for TTL tests.
func newTestRedisClient(t *testing.T) (*redislib.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	return redislib.NewClient(&redislib.Options{Addr: mr.Addr()}), mr
}
