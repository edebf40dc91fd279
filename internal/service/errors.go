package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnknownComponentType is returned when a save payload carries a
	// component type outside the closed enumeration. Bad rows are skipped on
	// load, but a save is rejected outright: the builder should never have
	// produced one.
	ErrUnknownComponentType = errors.New("unknown component type")
)
