package domain

import "errors"

// Errors that use cases return to the transport layer.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrTokenInvalid       = errors.New("invalid session token")

	ErrExpertNotFound = errors.New("expert profile not found")

	// ErrRequestNotFound covers both "no such request" and a failed guard
	// (wrong actor or already resolved): the conditional update affects
	// zero rows either way, and the two are indistinguishable to the caller.
	ErrRequestNotFound = errors.New("collaboration request not found or not actionable")

	ErrNotificationNotFound = errors.New("notification not found")
	ErrPostNotFound         = errors.New("post not found")

	ErrInvalidRequestType    = errors.New("unknown collaboration request type")
	ErrInvalidResponseAction = errors.New("unknown response action")
	ErrSelfRequest           = errors.New("cannot send a collaboration request to yourself")
)
