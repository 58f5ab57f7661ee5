package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemActor is recorded as the actor of changes not tied to a request.
const SystemActor = "system"

// Revision is one append-only entry in an entity's change history.
// Revision numbers are globally ascending, so per-entity order follows them.
type Revision struct {
	Revision   int64
	EntityType EntityType
	EntityID   uuid.UUID
	Timestamp  time.Time
	Actor      string
	ChangeType ChangeType
	Changes    map[string]any
}
