package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrUserAlreadyExists  = Error("user already exists")
	ErrUserNotFound       = Error("user not found")
	ErrWrongPassword      = Error("wrong password")
	ErrInvalidToken       = Error("invalid token")
	ErrWrongTokenType     = Error("wrong token type")
	ErrInvalidEmail       = Error("invalid email")
	ErrInvalidPassword    = Error("invalid password")
	ErrInvalidUser        = Error("invalid user")
	ErrInvalidName        = Error("name is empty or too short")
	ErrUnauthorized       = Error("unauthorized")
	ErrForbidden          = Error("forbidden")

	ErrInvalidDeskId      = Error("invalid desk id")
	ErrDeskNotFound       = Error("desk not found")
	ErrDeskCreationFailed = Error("desk creation failed")
	ErrInvalidStickerId   = Error("invalid sticker id")
	ErrStickerNotFound    = Error("sticker not found")
	ErrShareAlreadyExists = Error("desk is already shared with this user")
	ErrShareNotFound      = Error("share not found")
	ErrSessionNotFound    = Error("session not found")
	ErrSessionInactive    = Error("session is not active")
)
