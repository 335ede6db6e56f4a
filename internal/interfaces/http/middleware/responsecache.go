package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/infrastructure/cache"
	"github.com/garagehq/shopapi/internal/shared/constants"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// replayedHeaders are the response headers stored with a cached body.
var replayedHeaders = []string{"Content-Type", constants.HeaderXTotalCount}

// ResponseCache serves GET responses from a shared store keyed by method and
// request URI. Only 200 responses are stored; entries expire after ttl and
// are never invalidated by writes.
type ResponseCache struct {
	store  cache.ResponseStore
	ttl    time.Duration
	logger logger.Interface
}

func NewResponseCache(store cache.ResponseStore, ttl time.Duration, logger logger.Interface) *ResponseCache {
	return &ResponseCache{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := c.Request.Method + " " + c.Request.URL.RequestURI()

		cached, err := rc.store.Get(ctx, key)
		if err != nil {
			rc.logger.Warnw("response cache read failed", "key", key, "error", err)
		}
		if cached != nil {
			c.Header(constants.HeaderXCache, "HIT")
			if err := cached.WriteTo(c.Writer); err != nil {
				rc.logger.Warnw("failed to replay cached response", "key", key, "error", err)
			}
			c.Abort()
			return
		}

		c.Header(constants.HeaderXCache, "MISS")
		writer := &capturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if writer.Status() != http.StatusOK {
			return
		}

		resp := &cache.CachedResponse{
			Status:  http.StatusOK,
			Headers: make(map[string]string, len(replayedHeaders)),
			Body:    writer.body.Bytes(),
		}
		for _, h := range replayedHeaders {
			if v := writer.Header().Get(h); v != "" {
				resp.Headers[h] = v
			}
		}
		if err := rc.store.Set(ctx, key, resp, rc.ttl); err != nil {
			rc.logger.Warnw("response cache write failed", "key", key, "error", err)
		}
	}
}
