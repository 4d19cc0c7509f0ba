package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"stickerDesk/internal/enums"
	"stickerDesk/internal/errs"
	"stickerDesk/internal/hub"
	"stickerDesk/internal/models"
	redisModels "stickerDesk/internal/models/redis"
	socketModels "stickerDesk/internal/models/socket"
	"stickerDesk/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// AccessGate decides whether a user may join a desk's live session
type AccessGate interface {
	HasAccess(userID, deskID uuid.UUID) (bool, error)
}

// StickerStore is the durable CRUD surface the session protocol applies
// mutations through
type StickerStore interface {
	ListByDesk(deskID uuid.UUID) ([]models.Sticker, error)
	Create(sticker *models.Sticker) (*models.Sticker, error)
	Update(deskID, stickerID uuid.UUID, patch models.StickerPatch) (*models.Sticker, error)
	Delete(deskID, stickerID uuid.UUID) error
}

type SocketDeskHandler struct {
	ctx          context.Context
	upgrader     websocket.Upgrader
	hub          *hub.DeskHub
	Redis        *redis.Client
	accessGate   AccessGate
	stickerStore StickerStore
}

func NewSocketDeskHandler(
	redis *redis.Client,
	ctx context.Context,
	deskHub *hub.DeskHub,
	accessGate AccessGate,
	stickerStore StickerStore,
) *SocketDeskHandler {
	return &SocketDeskHandler{
		ctx:          ctx,
		Redis:        redis,
		hub:          deskHub,
		accessGate:   accessGate,
		stickerStore: stickerStore,
	}
}

func (sdh *SocketDeskHandler) StartSocket() {
	sdh.InitializeSocketUpgrader()
	if sdh.Redis != nil {
		go sdh.HandleRedisMessages()
	}
}

func (sdh *SocketDeskHandler) InitializeSocketUpgrader() {
	sdh.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

func (sdh *SocketDeskHandler) Hub() *hub.DeskHub {
	return sdh.hub
}

// HandleSocketDeskRoute runs one desk session. The upgrade happens
// before any check so rejections reach the client as a typed close
// frame instead of an HTTP error or abrupt reset.
func (sdh *SocketDeskHandler) HandleSocketDeskRoute(ctx *gin.Context) {
	ws, err := sdh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	claims, err := utils.VerifyToken(ctx.Query("token"), enums.TOKEN_TYPE_ACCESS, utils.GetJwtKey())
	if err != nil {
		socketModels.CloseWithCode(ws, enums.CLOSE_CODE_INVALID_TOKEN, "invalid token")
		return
	}

	if claims.UserID == "" {
		socketModels.CloseWithCode(ws, enums.CLOSE_CODE_INVALID_TOKEN_PAYLOAD, "invalid token payload")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		socketModels.CloseWithCode(ws, enums.CLOSE_CODE_INVALID_TOKEN_PAYLOAD, "invalid token payload")
		return
	}

	deskID, err := uuid.Parse(ctx.Param("deskId"))
	if err != nil {
		socketModels.CloseWithCode(ws, enums.CLOSE_CODE_INVALID_UUID, "invalid desk id")
		return
	}

	access, err := sdh.accessGate.HasAccess(userID, deskID)
	if err != nil {
		log.Printf("HandleSocketDeskRoute / access check failed for desk %v: %v", deskID, err)
		socketModels.CloseWithCode(ws, websocket.CloseInternalServerErr, "access check failed")
		return
	}
	if !access {
		socketModels.CloseWithCode(ws, enums.CLOSE_CODE_ACCESS_DENIED, "access denied")
		return
	}

	sdh.HandleConnection(ws, userID, deskID)
}

func (sdh *SocketDeskHandler) HandleConnection(ws *websocket.Conn, userID, deskID uuid.UUID) {
	client := socketModels.NewSocketClient(ws, userID)
	sdh.hub.Register(deskID, client)
	// Unregister is idempotent; the deferred call covers every path out
	// of the session, clean close and processing failure alike.
	defer sdh.hub.Unregister(deskID, client)

	if err := sdh.sendInitSnapshot(client, deskID); err != nil {
		log.Printf("HandleConnection / error sending init snapshot for desk %v: %v", deskID, err)
		return
	}

	sdh.handleIncomingEvents(ws, client, deskID)
}

// sendInitSnapshot pushes the desk's full sticker set, read after
// registration so no mutation broadcast in between is lost
func (sdh *SocketDeskHandler) sendInitSnapshot(client *socketModels.SocketClient, deskID uuid.UUID) error {
	stickers, err := sdh.stickerStore.ListByDesk(deskID)
	if err != nil {
		socketModels.CloseWithCode(client.Conn, websocket.CloseInternalServerErr, "could not load desk")
		return err
	}
	return client.Send(socketModels.NewDeskInitEvent(stickers), sdh.hub.WriteTimeout())
}

func (sdh *SocketDeskHandler) handleIncomingEvents(ws *websocket.Conn, client *socketModels.SocketClient, deskID uuid.UUID) {
	for {
		var event socketModels.SessionEvent
		if err := ws.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("handleIncomingEvents / error reading json: %v", err)
			}
			break
		}

		switch event.Event {
		case enums.SOCKET_EVENT_STICKER_CREATE:
			sdh.handleStickerCreate(client, deskID, event.Data)
		case enums.SOCKET_EVENT_STICKER_UPDATE:
			sdh.handleStickerUpdate(client, deskID, event.Data)
		case enums.SOCKET_EVENT_STICKER_DELETE:
			sdh.handleStickerDelete(client, deskID, event.Data)
		default:
			sdh.sendError(client, enums.SOCKET_ERROR_UNKNOWN_EVENT, "Unknown event")
		}
	}
}

func (sdh *SocketDeskHandler) handleStickerCreate(client *socketModels.SocketClient, deskID uuid.UUID, data json.RawMessage) {
	var payload socketModels.StickerCreateData
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			sdh.sendError(client, enums.SOCKET_ERROR_VALIDATION, "malformed payload")
			return
		}
	}

	sticker := &models.Sticker{
		DeskID: deskID,
		Size:   models.Size{Width: enums.DEFAULT_STICKER_WIDTH, Height: enums.DEFAULT_STICKER_HEIGHT},
		Color:  enums.DEFAULT_STICKER_COLOR,
	}
	if payload.Coord != nil {
		sticker.Coord = *payload.Coord
	}
	if payload.Size != nil {
		sticker.Size = *payload.Size
	}
	if payload.Color != nil {
		sticker.Color = *payload.Color
	}
	if payload.Text != nil {
		sticker.Text = *payload.Text
	}

	created, err := sdh.stickerStore.Create(sticker)
	if err != nil {
		log.Printf("handleStickerCreate / error creating sticker on desk %v: %v", deskID, err)
		sdh.sendError(client, enums.SOCKET_ERROR_INTERNAL, "could not create sticker")
		return
	}

	// The whole desk, creator included, receives the authoritative
	// record; temp_id lets the creator reconcile its optimistic copy.
	sdh.broadcast(deskID, socketModels.NewStickerCreatedEvent(payload.TempID, *created))
}

func (sdh *SocketDeskHandler) handleStickerUpdate(client *socketModels.SocketClient, deskID uuid.UUID, data json.RawMessage) {
	var payload socketModels.StickerUpdateData
	if err := json.Unmarshal(data, &payload); err != nil {
		sdh.sendError(client, enums.SOCKET_ERROR_VALIDATION, "malformed payload")
		return
	}
	stickerID, ok := sdh.requireStickerId(client, payload.StickerID)
	if !ok {
		return
	}

	updated, err := sdh.stickerStore.Update(deskID, stickerID, payload.StickerPatch)
	if err != nil {
		sdh.sendStoreError(client, deskID, err, "could not update sticker")
		return
	}

	sdh.broadcast(deskID, socketModels.NewStickerUpdatedEvent(*updated))
}

func (sdh *SocketDeskHandler) handleStickerDelete(client *socketModels.SocketClient, deskID uuid.UUID, data json.RawMessage) {
	var payload socketModels.StickerDeleteData
	if err := json.Unmarshal(data, &payload); err != nil {
		sdh.sendError(client, enums.SOCKET_ERROR_VALIDATION, "malformed payload")
		return
	}
	stickerID, ok := sdh.requireStickerId(client, payload.StickerID)
	if !ok {
		return
	}

	if err := sdh.stickerStore.Delete(deskID, stickerID); err != nil {
		sdh.sendStoreError(client, deskID, err, "could not delete sticker")
		return
	}

	sdh.broadcast(deskID, socketModels.NewStickerDeletedEvent(stickerID))
}

func (sdh *SocketDeskHandler) requireStickerId(client *socketModels.SocketClient, raw string) (uuid.UUID, bool) {
	if raw == "" {
		sdh.sendError(client, enums.SOCKET_ERROR_VALIDATION, "sticker_id required")
		return uuid.Nil, false
	}
	stickerID, err := uuid.Parse(raw)
	if err != nil {
		sdh.sendError(client, enums.SOCKET_ERROR_VALIDATION, "invalid sticker_id")
		return uuid.Nil, false
	}
	return stickerID, true
}

func (sdh *SocketDeskHandler) sendStoreError(client *socketModels.SocketClient, deskID uuid.UUID, err error, fallback string) {
	if err == errs.ErrStickerNotFound {
		sdh.sendError(client, enums.SOCKET_ERROR_STICKER_NOT_FOUND, "sticker not found")
		return
	}
	log.Printf("sendStoreError / store failure on desk %v: %v", deskID, err)
	sdh.sendError(client, enums.SOCKET_ERROR_INTERNAL, fallback)
}

// sendError reaches the offending connection only; the session stays
// active
func (sdh *SocketDeskHandler) sendError(client *socketModels.SocketClient, code, message string) {
	if err := client.Send(socketModels.NewErrorEvent(code, message), sdh.hub.WriteTimeout()); err != nil {
		log.Printf("sendError / error writing json: %v", err)
	}
}

// broadcast relays the event through redis when configured so every
// instance delivers to its own connections; without redis it fans out
// directly. Publishing happens synchronously inside the validating
// handler, which is what keeps per-desk broadcast order equal to
// per-desk processing order.
func (sdh *SocketDeskHandler) broadcast(deskID uuid.UUID, event socketModels.OutboundEvent) {
	if sdh.Redis == nil {
		sdh.hub.Broadcast(deskID, event, nil)
		return
	}

	data, err := json.Marshal(event.Data)
	if err != nil {
		log.Printf("broadcast / error marshalling event data: %v", err)
		return
	}
	published, err := json.Marshal(redisModels.PublishedDeskEvent{
		DeskID: deskID,
		Event:  event.Event,
		Data:   data,
	})
	if err != nil {
		log.Printf("broadcast / error marshalling published event: %v", err)
		return
	}
	if err := sdh.Redis.Publish(sdh.ctx, redisModels.REDIS_CHANNEL_DESK, published).Err(); err != nil {
		log.Printf("broadcast / error publishing event, falling back to local fan-out: %v", err)
		sdh.hub.Broadcast(deskID, event, nil)
	}
}

func (sdh *SocketDeskHandler) HandleRedisMessages() {
	ch := sdh.SubscribeToChannel(sdh.Redis, redisModels.REDIS_CHANNEL_DESK)
	for msg := range ch {
		var published redisModels.PublishedDeskEvent
		if err := json.Unmarshal([]byte(msg.Payload), &published); err != nil {
			log.Printf("Error unmarshalling published event: %v", err)
			continue
		}
		sdh.hub.Broadcast(published.DeskID, socketModels.OutboundEvent{
			Event: published.Event,
			Data:  published.Data,
		}, nil)
	}
}

func (sdh *SocketDeskHandler) SubscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(sdh.ctx, channel)
	_, err := pubsub.Receive(sdh.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}
