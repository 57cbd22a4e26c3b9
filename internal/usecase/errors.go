package usecase

import "errors"

// Domain errors carry the machine-readable codes the HTTP layer returns.
var (
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrNotAllowed         = errors.New("NOT_ALLOWED")
	ErrMissingContent     = errors.New("MISSING_CONTENT")
	ErrInvalidMediaID     = errors.New("INVALID_MEDIA_ID")
	ErrMediaQuotaExceeded = errors.New("MEDIA_QUOTA_EXCEEDED")
	ErrInvalidMediaSet    = errors.New("INVALID_MEDIA_SET")
	ErrMediaNotInPost     = errors.New("MEDIA_NOT_IN_POST")
	ErrEmptyBody          = errors.New("EMPTY_BODY")
	ErrEmailTaken         = errors.New("EMAIL_TAKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
)
