package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupAuthRouter(t *testing.T) (*mocks.MockTokenAuthenticator, *int64, http.Handler) {
	t.Helper()
	auth := mocks.NewMockTokenAuthenticator(t)

	var seenUserID int64
	r := ginext.New("test")
	protected := r.Group("/protected", TokenAuth(auth, newTestLogger(t)))
	protected.GET("", func(c *ginext.Context) {
		v, _ := c.Get(UserIDKey)
		seenUserID, _ = v.(int64)
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})

	return auth, &seenUserID, r
}

func TestTokenAuth_MissingHeader(t *testing.T) {
	_, _, r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_NotBearer(t *testing.T) {
	_, _, r := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_InvalidToken(t *testing.T) {
	auth, _, r := setupAuthRouter(t)

	auth.EXPECT().Authenticate(mock.Anything, "bad-token").Return(int64(0), domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_Success(t *testing.T) {
	auth, seenUserID, r := setupAuthRouter(t)

	auth.EXPECT().Authenticate(mock.Anything, "good-token").Return(int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), *seenUserID)
}
