package msgs

const (
	MsgOperationFailed         = "operation failed"
	MsgOperationSuccessful     = "operation successful"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgYouMustLoginFirst       = "you must login first"
	MsgDeskDeleted             = "desk deleted"
	MsgShareRemoved            = "share removed"
)
