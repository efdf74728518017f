package ledger

import (
	"testing"

	"stockledger/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLowStockThreshold(t *testing.T) {
	tests := []struct {
		name     string
		item     models.Item
		location models.Location
		level    *models.InventoryLevel
		expected float64
	}{
		{
			name:     "defaults",
			item:     models.Item{},
			location: models.Location{},
			expected: 10,
		},
		{
			name:     "reorder point times multiplier",
			item:     models.Item{ReorderPoint: floatPtr(20)},
			location: models.Location{LowStockMultiplier: floatPtr(1.5)},
			expected: 30,
		},
		{
			name:     "rounded to nearest unit",
			item:     models.Item{ReorderPoint: floatPtr(7)},
			location: models.Location{LowStockMultiplier: floatPtr(0.35)},
			expected: 2,
		},
		{
			name:     "floored at one",
			item:     models.Item{ReorderPoint: floatPtr(1)},
			location: models.Location{LowStockMultiplier: floatPtr(0.1)},
			expected: 1,
		},
		{
			name:     "explicit override wins",
			item:     models.Item{ReorderPoint: floatPtr(20)},
			location: models.Location{LowStockMultiplier: floatPtr(2)},
			level:    &models.InventoryLevel{LowStockThreshold: floatPtr(42)},
			expected: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := DetermineLowStockThreshold(tt.item, tt.location, tt.level)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestComputeLowStockThreshold(t *testing.T) {
	tests := []struct {
		name     string
		input    ThresholdInput
		expected float64
	}{
		{
			name:     "all defaults",
			input:    ThresholdInput{},
			expected: 10,
		},
		{
			name: "reorder point with lead time and safety stock",
			input: ThresholdInput{
				ReorderPoint: floatPtr(20),
				LeadTimeDays: floatPtr(21),
				SafetyStock:  floatPtr(5),
			},
			expected: 31,
		},
		{
			name:     "partial week of lead time still buys a full buffer",
			input:    ThresholdInput{LeadTimeDays: floatPtr(1)},
			expected: 12,
		},
		{
			name:     "lead time only",
			input:    ThresholdInput{ReorderPoint: floatPtr(15), LeadTimeDays: floatPtr(14)},
			expected: 19,
		},
		{
			name:     "safety stock only",
			input:    ThresholdInput{SafetyStock: floatPtr(3)},
			expected: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeLowStockThreshold(tt.input))
		})
	}
}
