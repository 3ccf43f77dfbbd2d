package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorItem is one entry of a validation error response:
// {"errors": [{"msg": "..."}]}
type ErrorItem struct {
	Msg string `json:"msg"`
}

// Items builds a list of ErrorItem from plain messages.
func Items(msgs ...string) []ErrorItem {
	out := make([]ErrorItem, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ErrorItem{Msg: m})
	}
	return out
}

// Errors writes the itemized error shape used for validation failures and
// client errors such as a duplicate email.
func Errors(c *gin.Context, status int, items []ErrorItem) {
	c.JSON(status, gin.H{"errors": items})
}

// Msg writes the single-message shape used for auth failures and not-found
// responses.
func Msg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// ServerError writes the generic 500. Always JSON, never the underlying error.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
}
