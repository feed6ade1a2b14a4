package quote

import "errors"

var (
	ErrValidation       = errors.New("submission failed validation")
	ErrAlreadySubmitted = errors.New("quote already submitted")
	ErrUploadFailed     = errors.New("media upload failed")
	ErrPersistence      = errors.New("failed to save quote request")
	ErrSessionNotFound  = errors.New("quote session not found")
	ErrUnknownEvent     = errors.New("unknown wizard event")
	ErrUnknownSection   = errors.New("unknown wizard section")
	ErrSectionHidden    = errors.New("section is not yet revealed")
)
