package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// UserIDKey is the context key under which TokenAuth stores the
// authenticated user's id.
const UserIDKey = "userID"

type tokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

func TokenAuth(auth tokenAuthenticator, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthorized"},
			)
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				log.Error("authenticate token",
					logger.String("error", err.Error()),
				)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthorized"},
			)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
