package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehq/shopapi/internal/infrastructure/cache"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

func TestResponseCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	rc := NewResponseCache(cache.NewRedisResponseStore(client, "cache:"), time.Minute, logger.NewNopLogger())

	calls := 0
	r := gin.New()
	r.GET("/mechanics/", rc.Cache(), func(c *gin.Context) {
		calls++
		utils.ListResponse(c, []gin.H{{"id": calls}}, 1)
	})
	r.GET("/missing", rc.Cache(), func(c *gin.Context) {
		calls++
		utils.ErrorResponse(c, http.StatusNotFound, "not found")
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	first := get("/mechanics/")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := get("/mechanics/")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "1", second.Header().Get("X-Total-Count"))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, calls)

	paged := get("/mechanics/?page=2")
	assert.Equal(t, "MISS", paged.Header().Get("X-Cache"), "query string is part of the key")
	assert.Equal(t, 2, calls)

	get("/missing")
	miss := get("/missing")
	assert.Equal(t, "MISS", miss.Header().Get("X-Cache"), "errors are not cached")
	assert.Equal(t, 4, calls)

	mr.FastForward(61 * time.Second)
	expired := get("/mechanics/")
	assert.Equal(t, "MISS", expired.Header().Get("X-Cache"))
}

func TestResponseCache_StoreDownServesFresh(t *testing.T) {
	mr, client := setupTestRedis(t)
	rc := NewResponseCache(cache.NewRedisResponseStore(client, "cache:"), time.Minute, logger.NewNopLogger())
	mr.Close()

	r := gin.New()
	r.GET("/inventory/", rc.Cache(), func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventory/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
