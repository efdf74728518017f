package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type staticUsers struct {
	user models.User
}

func (s *staticUsers) FindByUsername(username string) (*models.User, error) {
	if username != s.user.Username {
		return nil, apperrors.NotFound("user", username)
	}
	user := s.user
	return &user, nil
}

func testUserSource(t *testing.T, password string) *staticUsers {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &staticUsers{user: models.User{ID: 7, Username: "alice", PasswordHash: string(hash), Role: "moderator"}}
}

func TestAuthenticateUser(t *testing.T) {
	source := testUserSource(t, "s3cret")

	user, err := AuthenticateUser("alice", "s3cret", source)
	assert.NoError(t, err)
	assert.Equal(t, "moderator", user.Role)

	_, err = AuthenticateUser("alice", "wrong", source)
	assert.Error(t, err)

	_, err = AuthenticateUser("bob", "s3cret", source)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateJWT("7", "moderator", "alice")
	assert.NoError(t, err)

	router := gin.New()
	router.GET("/protected", JWTMiddleware(), Authorize("user"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})
	router.GET("/admin-only", JWTMiddleware(), Authorize("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("valid token passes role check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"user_id":"7"`)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("insufficient role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
