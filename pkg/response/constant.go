package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	MessageSuccess         = "Success"
	ValidationErrorMsg     = "Validation error"

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	DiscordMaxMessageLen = 5000
)
