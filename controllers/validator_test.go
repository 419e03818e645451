package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(url string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, url, nil)
	return c
}

func TestParseLimitOffset(t *testing.T) {
	rv := NewRequestValidator()

	t.Run("defaults", func(t *testing.T) {
		limit, offset := rv.ParseLimitOffset(testContext("/?"), 10)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 0, offset)
	})

	t.Run("explicit values", func(t *testing.T) {
		limit, offset := rv.ParseLimitOffset(testContext("/?limit=25&offset=50"), 10)
		assert.Equal(t, 25, limit)
		assert.Equal(t, 50, offset)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		limit, _ := rv.ParseLimitOffset(testContext("/?limit=5000"), 10)
		assert.Equal(t, MaxLimit, limit)
	})

	t.Run("negative and garbage fall back", func(t *testing.T) {
		limit, offset := rv.ParseLimitOffset(testContext("/?limit=-5&offset=abc"), 10)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 0, offset)
	})
}

func TestParseID(t *testing.T) {
	rv := NewRequestValidator()

	t.Run("valid", func(t *testing.T) {
		id, err := rv.ParseID(testContext("/?id=42"), "id")
		assert.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := rv.ParseID(testContext("/?"), "id")
		assert.Error(t, err)
	})

	t.Run("zero is invalid", func(t *testing.T) {
		_, err := rv.ParseID(testContext("/?id=0"), "id")
		assert.Error(t, err)
	})

	t.Run("non-numeric", func(t *testing.T) {
		_, err := rv.ParseID(testContext("/?id=abc"), "id")
		assert.Error(t, err)
	})
}
