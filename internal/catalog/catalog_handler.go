package catalog

import (
	"errors"
	"net/http"

	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"
	"stockledger/pkg/security"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/items", security.Authorize("moderator"), h.CreateItem)
	router.GET("/items", security.Authorize("user"), h.GetItems)
	router.POST("/locations", security.Authorize("moderator"), h.CreateLocation)
	router.GET("/locations", security.Authorize("user"), h.GetLocations)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	item, err := h.Service.CreateItem(req)
	if err != nil {
		var invalid *apperrors.InvalidArgumentError
		if errors.As(err, &invalid) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Items())
}

func (h *Handler) CreateLocation(c *gin.Context) {
	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	location, err := h.Service.CreateLocation(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (h *Handler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Locations())
}
