package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRichInfoAccessDenied is the single denial returned by the access
	// gate. Every failed authorization collapses to this error so that
	// callers cannot distinguish "no such user", "no teams", and "no shared
	// team" from each other.
	ErrRichInfoAccessDenied = errors.New("access to rich info denied")

	// ErrDuplicateField rejects a rich info submission containing two or
	// more fields with the same name.
	ErrDuplicateField = errors.New("duplicate field name in rich info")

	// ErrRichInfoTooLarge rejects a rich info submission whose retained
	// fields exceed the configured size budget.
	ErrRichInfoTooLarge = errors.New("rich info exceeds maximum size")

	ErrNotTeamOwner          = errors.New("caller is not the team owner")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
