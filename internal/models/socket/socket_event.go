package socket

import (
	"encoding/json"
	"stickerDesk/internal/enums"
	"stickerDesk/internal/models"

	"github.com/google/uuid"
)

// SessionEvent is one inbound wire message. The payload stays raw until
// the event tag picks the concrete type to decode into.
type SessionEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutboundEvent is one server-to-client wire message
type OutboundEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type StickerCreateData struct {
	TempID string        `json:"temp_id"`
	Coord  *models.Coord `json:"coord"`
	Size   *models.Size  `json:"size"`
	Color  *string       `json:"color"`
	Text   *string       `json:"text"`
}

type StickerUpdateData struct {
	StickerID string `json:"sticker_id"`
	models.StickerPatch
}

type StickerDeleteData struct {
	StickerID string `json:"sticker_id"`
}

type DeskInitPayload struct {
	Stickers []models.Sticker `json:"stickers"`
}

type StickerCreatedPayload struct {
	TempID  string         `json:"temp_id,omitempty"`
	Sticker models.Sticker `json:"sticker"`
}

type StickerUpdatedPayload struct {
	StickerID uuid.UUID    `json:"sticker_id"`
	Coord     models.Coord `json:"coord"`
	Size      models.Size  `json:"size"`
	Color     string       `json:"color"`
	Text      string       `json:"text"`
}

type StickerDeletedPayload struct {
	StickerID uuid.UUID `json:"sticker_id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDeskInitEvent(stickers []models.Sticker) OutboundEvent {
	if stickers == nil {
		stickers = []models.Sticker{}
	}
	return OutboundEvent{
		Event: enums.SOCKET_EVENT_DESK_INIT,
		Data:  DeskInitPayload{Stickers: stickers},
	}
}

func NewStickerCreatedEvent(tempID string, sticker models.Sticker) OutboundEvent {
	return OutboundEvent{
		Event: enums.SOCKET_EVENT_STICKER_CREATED,
		Data:  StickerCreatedPayload{TempID: tempID, Sticker: sticker},
	}
}

func NewStickerUpdatedEvent(sticker models.Sticker) OutboundEvent {
	return OutboundEvent{
		Event: enums.SOCKET_EVENT_STICKER_UPDATED,
		Data: StickerUpdatedPayload{
			StickerID: sticker.ID,
			Coord:     sticker.Coord,
			Size:      sticker.Size,
			Color:     sticker.Color,
			Text:      sticker.Text,
		},
	}
}

func NewStickerDeletedEvent(stickerID uuid.UUID) OutboundEvent {
	return OutboundEvent{
		Event: enums.SOCKET_EVENT_STICKER_DELETED,
		Data:  StickerDeletedPayload{StickerID: stickerID},
	}
}

func NewErrorEvent(code, message string) OutboundEvent {
	return OutboundEvent{
		Event: enums.SOCKET_EVENT_ERROR,
		Data:  ErrorPayload{Code: code, Message: message},
	}
}
