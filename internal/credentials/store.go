// Package credentials persists per-region CatLink session credentials.
//
// Records are stored in the OS keyring (macOS Keychain, Windows Credential
// Manager, Linux Secret Service) via [github.com/99designs/keyring] under a
// single fixed service name. Each region owns one JSON-encoded record,
// addressed by a region-qualified key, so logging in to a second region
// never disturbs the first.
package credentials

import (
	"errors"

	"github.com/DengYiping/catlink-cli/internal/region"
)

// Errors returned by a [Store].
var (
	// ErrNotFound is returned by Get when no record exists for the region.
	ErrNotFound = errors.New("credentials: no stored record for region")

	// ErrStorageUnavailable is returned when the secret-storage backend
	// cannot be reached or refuses the operation.
	ErrStorageUnavailable = errors.New("credentials: secret storage unavailable")
)

// Record is a single region's stored session credentials.
type Record struct {
	// Token is the vendor-issued session credential.
	Token string `json:"token"`

	// Phone and PhoneIAC identify the account for re-login.
	Phone    string `json:"phone"`
	PhoneIAC string `json:"phoneIac"`

	// Password is the vendor-encrypted account password captured at
	// login. It is replayable against the login endpoint, which is what
	// makes transparent re-authentication possible. May be empty, in
	// which case re-authentication is unavailable.
	Password string `json:"password,omitempty"`

	// VerifySSL is the TLS verification flag for the region's transport.
	VerifySSL bool `json:"verifySsl"`
}

// CanReauth reports whether the record carries enough to re-derive a
// session after token expiry.
func (r Record) CanReauth() bool {
	return r.Phone != "" && r.Password != ""
}

// Store is a per-region credential store. Implementations are addressed
// by region; at most one record exists per region.
type Store interface {
	// Put overwrites any existing record for the region.
	Put(r region.Region, rec Record) error

	// Get returns the stored record, or ErrNotFound.
	Get(r region.Region) (Record, error)

	// Delete removes one region's record. Absent records are not an error.
	Delete(r region.Region) error

	// DeleteAll removes every stored region's record.
	DeleteAll() error

	// Regions returns the regions with a stored record, in fixed
	// region declaration order.
	Regions() ([]region.Region, error)
}
