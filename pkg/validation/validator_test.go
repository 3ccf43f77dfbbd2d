package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func bindErr(t *testing.T, raw string) error {
	t.Helper()
	var p signupPayload
	return binding.JSON.BindBody([]byte(raw), &p)
}

func TestItems(t *testing.T) {
	Init()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Items(nil))
	})

	t.Run("malformed json", func(t *testing.T) {
		items := Items(bindErr(t, `{"name": `))
		require.Len(t, items, 1)
		assert.Equal(t, "invalid json payload", items[0].Msg)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		items := Items(bindErr(t, `{"email":"nope","password":"123"}`))
		require.Len(t, items, 3)
		assert.Equal(t, "name is required", items[0].Msg)
		assert.Equal(t, "email must be a valid email", items[1].Msg)
		assert.Equal(t, "password must be at least 6 characters long", items[2].Msg)
	})

	t.Run("valid payload", func(t *testing.T) {
		err := bindErr(t, `{"name":"Ana","email":"ana@x.com","password":"secret1"}`)
		assert.NoError(t, err)
	})
}
