package cache

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisResponseStore_SetGet(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisResponseStore(client, "cache:resp:")
	ctx := context.Background()

	miss, err := store.Get(ctx, "GET /mechanics/")
	require.NoError(t, err)
	assert.Nil(t, miss)

	want := &CachedResponse{
		Status:  200,
		Headers: map[string]string{"Content-Type": "application/json; charset=utf-8", "X-Total-Count": "1"},
		Body:    []byte(`[{"id":1,"name":"Casey"}]`),
	}
	require.NoError(t, store.Set(ctx, "GET /mechanics/", want, time.Minute))

	got, err := store.Get(ctx, "GET /mechanics/")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Minute, mr.TTL("cache:resp:GET /mechanics/"))

	mr.FastForward(61 * time.Second)
	expired, err := store.Get(ctx, "GET /mechanics/")
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestRedisResponseStore_CorruptEntry(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisResponseStore(client, "p:")
	require.NoError(t, mr.Set("p:k", "{not json"))

	_, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestCachedResponse_WriteTo(t *testing.T) {
	resp := &CachedResponse{Status: 200, Headers: map[string]string{"X-Total-Count": "3"}, Body: []byte("[]")}
	w := httptest.NewRecorder()

	require.NoError(t, resp.WriteTo(w))
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "[]", w.Body.String())
}
