package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDHeader = "X-Request-Id"

const requestIDKey = "requestID"

// RequestID reuses the caller's request id when present, otherwise
// generates one, and echoes it back in the response.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
