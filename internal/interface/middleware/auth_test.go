package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

func authRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserIDKey)})
	})
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"no token, authorization denied"}`, w.Body.String())
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set(TokenHeader, "not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"token is not valid"}`, w.Body.String())
}

func TestAuth_WrongSecret(t *testing.T) {
	other := helpers.NewJWTManager("other-secret", time.Hour)
	token, _, err := other.Generate("u-1")
	require.NoError(t, err)

	r := authRouter(helpers.NewJWTManager("secret", time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set(TokenHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidTokenSetsUserID(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	token, _, err := jwt.Generate("u-1")
	require.NoError(t, err)

	r := authRouter(jwt)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set(TokenHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u-1"}`, w.Body.String())
}
