package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"climate-srv/pkg/discord"
	pkgErrors "climate-srv/pkg/errors"
)

// ErrorBody is the standard error response shape.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OK writes data as the 200 response body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error maps err to an error response. *pkgErrors.HTTPError values keep
// their status code and message; anything else becomes a 500 and is
// reported to Discord when a webhook is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, ErrorBody{Error: httpErr.Message, Details: httpErr.Details})
		return
	}

	if d != nil {
		_ = d.SendError(c.Request.Context(), "Internal server error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}

// PanicError reports a recovered panic and writes a 500.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		_ = d.SendError(context.Background(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}
