package ledger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockledger/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, models.Item, models.Location) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore()
	item, location := seedCatalog(t, store)
	handler := NewLedgerHandler(NewMovementService(store, zap.NewNop()), NewQueryService(store))

	router := gin.New()
	group := router.Group("")
	group.Use(func(c *gin.Context) {
		c.Set("userID", "7")
		c.Set("role", "admin")
		c.Next()
	})
	handler.RegisterRoutes(group)
	return router, item, location
}

func postMovement(router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateMovementEndpoint(t *testing.T) {
	router, item, location := newTestRouter(t)

	recorder := postMovement(router, map[string]any{
		"item_id":       item.ID,
		"location_id":   location.ID,
		"movement_type": "RECEIVE",
		"quantity":      15,
		"reason":        "delivery",
	})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var result MovementResult
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, 15.0, result.NewQuantity)
	assert.Equal(t, "7", result.Movement.UserID)
}

func TestCreateMovementEndpointErrors(t *testing.T) {
	router, item, location := newTestRouter(t)

	tests := []struct {
		name     string
		body     map[string]any
		expected int
	}{
		{
			name:     "unknown item",
			body:     map[string]any{"item_id": 999, "location_id": location.ID, "movement_type": "RECEIVE", "quantity": 1},
			expected: http.StatusNotFound,
		},
		{
			name:     "bad movement type",
			body:     map[string]any{"item_id": item.ID, "location_id": location.ID, "movement_type": "TRANSFER", "quantity": 1},
			expected: http.StatusBadRequest,
		},
		{
			name:     "consume without level",
			body:     map[string]any{"item_id": item.ID, "location_id": location.ID, "movement_type": "CONSUME", "quantity": 1},
			expected: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postMovement(router, tt.body)
			assert.Equal(t, tt.expected, recorder.Code)
		})
	}
}

func TestInsufficientConsumeEndpointLeavesNoTrace(t *testing.T) {
	router, item, location := newTestRouter(t)

	recorder := postMovement(router, map[string]any{
		"item_id": item.ID, "location_id": location.ID, "movement_type": "RECEIVE", "quantity": 5,
	})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postMovement(router, map[string]any{
		"item_id": item.ID, "location_id": location.ID, "movement_type": "CONSUME", "quantity": 100,
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	req := httptest.NewRequest(http.MethodGet, "/movements", nil)
	listRecorder := httptest.NewRecorder()
	router.ServeHTTP(listRecorder, req)
	assert.Equal(t, http.StatusOK, listRecorder.Code)

	var views []StockMovementView
	assert.NoError(t, json.Unmarshal(listRecorder.Body.Bytes(), &views))
	assert.Len(t, views, 1)
}

func TestComputeThresholdEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/inventory/threshold?reorder_point=20&lead_time=21&safety_stock=5", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]float64
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 31.0, body["threshold"])
}

func TestAuthorizeBlocksInsufficientRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := NewStore()
	handler := NewLedgerHandler(NewMovementService(store, zap.NewNop()), NewQueryService(store))

	router := gin.New()
	group := router.Group("")
	group.Use(func(c *gin.Context) {
		c.Set("userID", "7")
		c.Set("role", "user")
		c.Next()
	})
	handler.RegisterRoutes(group)

	req := httptest.NewRequest(http.MethodGet, "/audit-logs", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
