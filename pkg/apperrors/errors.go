package apperrors

import "fmt"

// The ledger reports every failure as one of four kinds. Handlers translate
// the kind into a transport status; the kind itself is never downgraded.

type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func NotFound(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

func InvalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

type InsufficientInventoryError struct {
	ItemID     int
	LocationID int
	Requested  float64
	Available  float64
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for item %d at location %d: requested %v, available %v",
		e.ItemID, e.LocationID, e.Requested, e.Available)
}

type MissingInventoryLevelError struct {
	ItemID     int
	LocationID int
}

func (e *MissingInventoryLevelError) Error() string {
	return fmt.Sprintf("no inventory level exists for item %d at location %d", e.ItemID, e.LocationID)
}
