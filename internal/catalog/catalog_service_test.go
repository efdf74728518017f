package catalog

import (
	"testing"

	"stockledger/internal/ledger"
	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func floatPtr(v float64) *float64 { return &v }

func TestCreateItem(t *testing.T) {
	service := NewService(ledger.NewStore(), zap.NewNop())

	item, err := service.CreateItem(models.ItemRequest{
		Name:         "Gauze Pads",
		Barcode:      "GP-100",
		Unit:         "box",
		ReorderPoint: floatPtr(20),
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "GP-100", item.Barcode)

	second, err := service.CreateItem(models.ItemRequest{Name: "Gloves", Barcode: "GL-200"})
	assert.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	items := service.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "Gauze Pads", items[0].Name)
}

func TestCreateItemRejectsDuplicateBarcode(t *testing.T) {
	service := NewService(ledger.NewStore(), zap.NewNop())

	_, err := service.CreateItem(models.ItemRequest{Name: "Gauze Pads", Barcode: "GP-100"})
	assert.NoError(t, err)

	_, err = service.CreateItem(models.ItemRequest{Name: "Other", Barcode: "GP-100"})
	var invalid *apperrors.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)

	// The failed creation left nothing behind.
	assert.Len(t, service.Items(), 1)
}

func TestCreateLocation(t *testing.T) {
	service := NewService(ledger.NewStore(), zap.NewNop())

	location, err := service.CreateLocation(models.LocationRequest{
		Name:               "Main Storage",
		LowStockMultiplier: floatPtr(1.5),
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, location.ID)
	assert.Equal(t, 1.5, *location.LowStockMultiplier)

	assert.Len(t, service.Locations(), 1)
}
