package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

var (
	healthMutex  sync.RWMutex
	healthStatus = HealthStatus{Status: "ok", Version: "1.0.0"}
	startTime    = time.Now()
)

func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		healthMutex.RLock()
		status := healthStatus
		healthMutex.RUnlock()

		status.Uptime = time.Since(startTime).String()
		status.LastChecked = time.Now()
		c.JSON(http.StatusOK, status)
	}
}

func SetVersion(version string) {
	healthMutex.Lock()
	healthStatus.Version = version
	healthMutex.Unlock()
}
