package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/internal/application"
)

func registerRouter(users *fakeUserRepo) *gin.Engine {
	svc := application.NewUserService(users, testJWT(), nil, nil, false)
	h := NewUserHandler(svc, nil)
	r := gin.New()
	r.POST("/api/users", h.Register)
	return r
}

func TestUserHandler_Register(t *testing.T) {
	users := newFakeUserRepo()
	r := registerRouter(users)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "secret1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)

	claims, err := testJWT().Parse(body.Token)
	require.NoError(t, err)
	u, err := users.GetByID(context.Background(), claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", u.Email)
}

func TestUserHandler_RegisterValidation(t *testing.T) {
	r := registerRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"email":    "not-an-email",
		"password": "123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{
		"name is required",
		"email must be a valid email",
		"password must be at least 6 characters long",
	}, errorMsgs(t, w))
}

func TestUserHandler_RegisterMalformedJSON(t *testing.T) {
	r := registerRouter(newFakeUserRepo())

	req := httptestRequest(http.MethodPost, "/api/users", `{"name": `)
	w := serve(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"invalid json payload"}, errorMsgs(t, w))
}

func TestUserHandler_RegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	r := registerRouter(users)

	payload := gin.H{"name": "Ana", "email": "ana@x.com", "password": "secret1"}
	w := doJSON(t, r, http.MethodPost, "/api/users", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"user already exists"}, errorMsgs(t, w))
}
