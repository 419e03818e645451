package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/user", RequireAuth(tokens), func(c *gin.Context) {
		id, err := GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/admin", RequireAdmin(tokens), func(c *gin.Context) {
		id, err := GetAdminID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin_id": id})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuth(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	r := authTestRouter(tokens)

	t.Run("valid user token", func(t *testing.T) {
		token, err := tokens.Generate(7, "user@example.com", "customer", "user")
		require.NoError(t, err)

		recorder := doRequest(r, "/user", token)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"user_id":7`)
	})

	t.Run("missing token", func(t *testing.T) {
		recorder := doRequest(r, "/user", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("admin token rejected on user route", func(t *testing.T) {
		token, err := tokens.Generate(1, "admin@example.com", "admin", "admin")
		require.NoError(t, err)

		recorder := doRequest(r, "/user", token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := services.NewTokenService("other-secret", time.Hour)
		token, err := other.Generate(7, "user@example.com", "customer", "user")
		require.NoError(t, err)

		recorder := doRequest(r, "/user", token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	r := authTestRouter(tokens)

	t.Run("valid admin token", func(t *testing.T) {
		token, err := tokens.Generate(1, "admin@example.com", "admin", "admin")
		require.NoError(t, err)

		recorder := doRequest(r, "/admin", token)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"admin_id":1`)
	})

	t.Run("customer token is a 403", func(t *testing.T) {
		token, err := tokens.Generate(7, "user@example.com", "customer", "user")
		require.NoError(t, err)

		recorder := doRequest(r, "/admin", token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Admin access required")
	})

	t.Run("missing token", func(t *testing.T) {
		recorder := doRequest(r, "/admin", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
