package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedResponse is a stored HTTP response.
type CachedResponse struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    []byte            `json:"body"`
}

// WriteTo replays the response.
func (r *CachedResponse) WriteTo(w http.ResponseWriter) error {
	for k, v := range r.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(r.Status)
	_, err := w.Write(r.Body)
	return err
}

type ResponseStore interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, resp *CachedResponse, ttl time.Duration) error
}

// RedisResponseStore keeps cached responses as JSON under prefix+key.
type RedisResponseStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisResponseStore(client redis.UniversalClient, prefix string) *RedisResponseStore {
	return &RedisResponseStore{client: client, prefix: prefix}
}

func (s *RedisResponseStore) Get(ctx context.Context, key string) (*CachedResponse, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached response: %w", err)
	}

	var resp CachedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached response: %w", err)
	}
	return &resp, nil
}

func (s *RedisResponseStore) Set(ctx context.Context, key string, resp *CachedResponse, ttl time.Duration) error {
	if resp == nil {
		return errors.New("response cannot be nil")
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal cached response: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cached response: %w", err)
	}
	return nil
}
