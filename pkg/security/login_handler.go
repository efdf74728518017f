package security

import (
	"net/http"
	"strconv"
	"time"

	"stockledger/internal/rate_limiter"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	users       UserSource
	rateLimiter *rate_limiter.RateLimiter
}

func NewLoginHandler(users UserSource) *LoginHandler {
	return &LoginHandler{
		users:       users,
		rateLimiter: rate_limiter.NewRateLimiter(10, 5*time.Minute),
	}
}

func (l *LoginHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth", l.Login)
}

func (l *LoginHandler) Login(c *gin.Context) {
	clientIP := c.ClientIP()
	if !l.rateLimiter.IsAllowed(clientIP) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":     "Too many login attempts, try again later",
			"remaining": l.rateLimiter.RemainingRequests(clientIP),
		})
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := AuthenticateUser(req.Username, req.Password, l.users)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := GenerateJWT(strconv.Itoa(user.ID), user.Role, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
