package domain

import "errors"

// Categories. HTTP status mapping is done on these; every concrete error
// below unwraps to exactly one of them.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrAuth         = errors.New("authentication failed")
	ErrToken        = errors.New("invalid token")
)

// Error is a domain error with a client-facing message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Invalid returns a validation failure carrying msg.
func Invalid(msg string) error {
	return &Error{Kind: ErrInvalidInput, Msg: msg}
}

var (
	ErrInvalidCredentials = &Error{Kind: ErrAuth, Msg: "Invalid credentials"}
	ErrDuplicateEmail     = &Error{Kind: ErrConflict, Msg: "Email already exists"}
	ErrUnauthorized       = &Error{Kind: ErrAuth, Msg: "forbidden"}

	ErrTokenMalformed    = &Error{Kind: ErrToken, Msg: "token malformed"}
	ErrTokenBadSignature = &Error{Kind: ErrToken, Msg: "token signature invalid"}
	ErrTokenExpired      = &Error{Kind: ErrToken, Msg: "token expired"}

	ErrUserNotFound     = &Error{Kind: ErrNotFound, Msg: "User not found"}
	ErrRoleNotFound     = &Error{Kind: ErrNotFound, Msg: "Role not found"}
	ErrVendorNotFound   = &Error{Kind: ErrNotFound, Msg: "Vendor not found"}
	ErrRuleNotFound     = &Error{Kind: ErrNotFound, Msg: "Depreciation rule not found"}
	ErrAssetNotFound    = &Error{Kind: ErrNotFound, Msg: "Asset not found"}
	ErrDisposalNotFound = &Error{Kind: ErrNotFound, Msg: "Disposal not found"}

	ErrDuplicateVendor         = &Error{Kind: ErrConflict, Msg: "Vendor name must be unique"}
	ErrDuplicateAssetTag       = &Error{Kind: ErrConflict, Msg: "Asset tag must be unique"}
	ErrDisposalAlreadyApproved = &Error{Kind: ErrConflict, Msg: "Disposal already approved"}
	ErrIdempotencyKeyReused    = &Error{Kind: ErrConflict, Msg: "Idempotency-Key was already used for a different asset"}
	ErrIdempotencyInFlight     = &Error{Kind: ErrConflict, Msg: "A request with this Idempotency-Key is still in progress"}
)
