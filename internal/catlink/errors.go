package catlink

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the CatLink client.
var (
	// ErrTokenExpired is the vendor's session-expiry signal (returnCode
	// 1002). It is normally consumed by the session runner's refresh
	// path and only surfaces when re-authentication is impossible.
	ErrTokenExpired = errors.New("catlink: token expired")

	// Validation errors, raised before any network call.
	ErrInvalidMode           = errors.New("catlink: invalid mode")
	ErrInvalidAction         = errors.New("catlink: invalid action")
	ErrUnsupportedDeviceType = errors.New("catlink: unsupported device type")
	ErrEmptyDeviceID         = errors.New("catlink: device ID cannot be empty")
)

// returnCode values with dedicated meaning in the vendor protocol.
const (
	returnCodeOK           = 0
	returnCodeTokenExpired = 1002
)

// APIError is a vendor error response (non-zero returnCode other than
// token expiry).
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catlink: API error code %d", e.Code)
	}
	return fmt.Sprintf("catlink: API error %d: %s", e.Code, e.Message)
}

// IsTokenExpired reports whether err is the vendor session-expiry signal.
func IsTokenExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}
