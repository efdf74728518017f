package ledger

import (
	"errors"
	"net/http"
	"time"

	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"
	"stockledger/pkg/security"

	"github.com/gin-gonic/gin"
)

// LedgerHandler translates HTTP requests into ledger calls and ledger error
// kinds into transport statuses. No business rules live here.
type LedgerHandler struct {
	Movements *MovementService
	Queries   *QueryService
}

func NewLedgerHandler(movements *MovementService, queries *QueryService) *LedgerHandler {
	return &LedgerHandler{Movements: movements, Queries: queries}
}

func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/movements", security.Authorize("user"), h.CreateMovement)
	router.GET("/movements", security.Authorize("user"), h.GetMovements)
	router.GET("/audit-logs", security.Authorize("moderator"), h.GetAuditLogs)
	router.GET("/inventory/status", security.Authorize("user"), h.GetInventoryStatus)
	router.GET("/inventory/low-stock", security.Authorize("user"), h.GetLowStockItems)
	router.GET("/inventory/threshold", security.Authorize("user"), h.ComputeThreshold)
}

func (h *LedgerHandler) CreateMovement(c *gin.Context) {
	var req models.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	req.UserID = security.UserIDFromContext(c)
	req.IPAddress = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	result, err := h.Movements.ProcessMovement(req)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *LedgerHandler) GetMovements(c *gin.Context) {
	var query struct {
		ItemID       *int    `form:"item_id"`
		LocationID   *int    `form:"location_id"`
		MovementType *string `form:"movement_type"`
		UserID       *string `form:"user_id"`
		Since        *string `form:"since"`
		Limit        *int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter := MovementFilter{
		ItemID:     query.ItemID,
		LocationID: query.LocationID,
		UserID:     query.UserID,
		Limit:      query.Limit,
	}
	if query.MovementType != nil {
		movementType := models.MovementType(*query.MovementType)
		if !movementType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movement type"})
			return
		}
		filter.MovementType = &movementType
	}
	since, ok := parseSince(c, query.Since)
	if !ok {
		return
	}
	filter.Since = since

	c.JSON(http.StatusOK, h.Queries.ListStockMovements(filter))
}

func (h *LedgerHandler) GetAuditLogs(c *gin.Context) {
	var query struct {
		EntityID *int    `form:"entity_id"`
		UserID   *string `form:"user_id"`
		Since    *string `form:"since"`
		Limit    *int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter := AuditLogFilter{
		EntityID: query.EntityID,
		UserID:   query.UserID,
		Limit:    query.Limit,
	}
	since, ok := parseSince(c, query.Since)
	if !ok {
		return
	}
	filter.Since = since

	c.JSON(http.StatusOK, h.Queries.ListAuditLogs(filter))
}

func (h *LedgerHandler) GetInventoryStatus(c *gin.Context) {
	var query struct {
		LocationID *int `form:"location_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	c.JSON(http.StatusOK, h.Queries.InventoryStatus(InventoryStatusFilter{LocationID: query.LocationID}))
}

func (h *LedgerHandler) GetLowStockItems(c *gin.Context) {
	var query struct {
		LocationID *int `form:"location_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	c.JSON(http.StatusOK, h.Queries.LowStockItems(LowStockFilter{LocationID: query.LocationID}))
}

func (h *LedgerHandler) ComputeThreshold(c *gin.Context) {
	var input ThresholdInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"threshold": ComputeLowStockThreshold(input)})
}

func parseSince(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	since, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid since timestamp, expected RFC3339"})
		return nil, false
	}
	return &since, true
}

func respondLedgerError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	var invalid *apperrors.InvalidArgumentError
	var insufficient *apperrors.InsufficientInventoryError
	var missingLevel *apperrors.MissingInventoryLevelError

	switch {
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &insufficient):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &missingLevel):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to process movement"})
	}
}
