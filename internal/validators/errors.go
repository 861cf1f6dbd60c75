package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Per-field messages placed in the Fields map of a validation error.
const (
	msgRequired         = "must be provided"
	msgInvalidEmail     = "must be a valid email address"
	msgPasswordTooShort = "must be at least 8 characters long"
	msgPasswordTooLong  = "must not be more than 72 bytes long"
	msgInvalidStatus    = "must be one of Watching, Completed, Dropped, Watch later"
	msgNegativeEpisode  = "must not be negative"
	msgEpisodeTooLarge  = "must not exceed the total number of episodes"
	msgInvalidScore     = "must be between 1 and 10"
	msgInvalidDate      = "must be a date in YYYY-MM-DD format"
	msgFinishedTooEarly = "must not be before the started watching date"
	msgInvalidAnimeID   = "must be a positive integer"
)
