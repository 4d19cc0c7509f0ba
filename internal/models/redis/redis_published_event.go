package redis

import (
	"encoding/json"

	"github.com/google/uuid"
)

const REDIS_CHANNEL_DESK = "desk_events"

// PublishedDeskEvent is the envelope relayed through redis so every
// instance can fan a desk event out to its local connections
type PublishedDeskEvent struct {
	DeskID uuid.UUID       `json:"desk_id"`
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
}
