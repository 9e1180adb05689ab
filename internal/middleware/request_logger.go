package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		level := logger.InfoLevel
		if c.Writer.Status() >= 500 {
			level = logger.ErrorLevel
		}

		errMsg := ""
		if v, ok := c.Get("error"); ok {
			if s, ok := v.(string); ok {
				errMsg = s
			}
		}

		requestID := ""
		if v, ok := c.Get(requestIDKey); ok {
			if s, ok := v.(string); ok {
				requestID = s
			}
		}

		log.LogAttrs(c.Request.Context(), level, "request",
			logger.String("request_id", requestID),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("error", errMsg),
		)
	}
}
