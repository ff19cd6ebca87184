package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/rollpath/internal/common/uuid UUID

// UUID generates identifiers for rolls
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct {
	timeOrdered bool
}

// New returns a generator of random (v4) UUIDs
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewTimeOrdered returns a generator of v7 UUIDs, which sort by creation time
// and keep roll IDs in log order
func NewTimeOrdered() *DefaultUUID {
	return &DefaultUUID{timeOrdered: true}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	if d.timeOrdered {
		if id, err := uuid.NewV7(); err == nil {
			return id.String()
		}
	}
	return uuid.New().String()
}
