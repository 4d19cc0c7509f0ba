package enums

const (
	SOCKET_EVENT_DESK_INIT       = "desk:init"
	SOCKET_EVENT_STICKER_CREATE  = "sticker:create"
	SOCKET_EVENT_STICKER_CREATED = "sticker:created"
	SOCKET_EVENT_STICKER_UPDATE  = "sticker:update"
	SOCKET_EVENT_STICKER_UPDATED = "sticker:updated"
	SOCKET_EVENT_STICKER_DELETE  = "sticker:delete"
	SOCKET_EVENT_STICKER_DELETED = "sticker:deleted"
	SOCKET_EVENT_ERROR           = "error"
)

// Close codes sent on handshake rejection. Each failure kind gets its own
// code so clients can tell a stale token apart from fatal misuse.
const (
	CLOSE_CODE_INVALID_UUID          = 4000
	CLOSE_CODE_INVALID_TOKEN         = 4001
	CLOSE_CODE_INVALID_TOKEN_PAYLOAD = 4002
	CLOSE_CODE_ACCESS_DENIED         = 4003
)

const (
	SOCKET_ERROR_VALIDATION        = "VALIDATION_ERROR"
	SOCKET_ERROR_STICKER_NOT_FOUND = "STICKER_NOT_FOUND"
	SOCKET_ERROR_UNKNOWN_EVENT     = "UNKNOWN_EVENT"
	SOCKET_ERROR_INTERNAL          = "INTERNAL_ERROR"
)
