package security

import (
	"log"
	"os"
	"sync"
	"time"

	"stockledger/pkg/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	secretOnce sync.Once
	jwtSecret  []byte
)

func secret() []byte {
	secretOnce.Do(func() {
		value := os.Getenv("JWT_SECRET")
		if value == "" {
			_ = godotenv.Load()
			value = os.Getenv("JWT_SECRET")
		}
		if value == "" {
			// Tokens signed with an ephemeral secret stop validating on
			// restart, which is acceptable for development only.
			log.Println("Warning: JWT_SECRET is not set, using an ephemeral secret")
			value = uuid.NewString()
		}
		jwtSecret = []byte(value)
	})
	return jwtSecret
}

// UserSource resolves login credentials to a user record.
type UserSource interface {
	FindByUsername(username string) (*models.User, error)
}

func AuthenticateUser(username, password string, source UserSource) (*models.User, error) {
	user, err := source.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}
	return user, nil
}

func GenerateJWT(userID, role, username string) (string, error) {
	claims := jwt.MapClaims{
		"userID":   userID,
		"role":     role,
		"username": username,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}
