package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/core/apperror"
	appctx "backoffice/internal/core/context"
)

const (
	HeaderIdempotencyKey       = "Idempotency-Key"
	legacyHeaderIdempotencyKey = "X-Idempotency-Key"

	maxIdempotencyKeyLength = 255
)

// Idempotency passes a client supplied idempotency key through to the
// inventory API, which stores and replays the responses. Create calls
// without a key get a generated one from the client.
func Idempotency() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			key = c.GetHeader(legacyHeaderIdempotencyKey)
		}
		if key == "" {
			c.Next()
			return
		}

		if len(key) > maxIdempotencyKeyLength {
			_ = c.Error(apperror.NewValidation("idempotency key is too long").
				WithDetail("max_length", maxIdempotencyKeyLength))
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(appctx.WithIdempotencyKey(c.Request.Context(), key))
		c.Set("idempotency_key", key)

		c.Next()
	}
}
