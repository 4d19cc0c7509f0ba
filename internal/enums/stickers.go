package enums

const (
	DEFAULT_STICKER_COLOR  = "#FFEB3B"
	DEFAULT_STICKER_WIDTH  = 150
	DEFAULT_STICKER_HEIGHT = 100
)

const (
	FILE_BUCKET_USER_PROFILE = "user-profile-photos"
)
