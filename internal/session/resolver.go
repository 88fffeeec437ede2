// Package session resolves region selectors to stored credentials and
// runs authenticated API calls with the refresh-once-on-expiry policy.
package session

import (
	"errors"
	"fmt"

	"github.com/DengYiping/catlink-cli/internal/credentials"
	"github.com/DengYiping/catlink-cli/internal/region"
)

// ErrNotLoggedIn is returned when the selector matches no stored
// credentials.
var ErrNotLoggedIn = errors.New("not logged in (run 'catlink login' first)")

// Entry pairs a region with its stored credential record.
type Entry struct {
	Region region.Region
	Record credentials.Record
}

// Resolve maps a selector to the credential records it addresses. A
// concrete region yields exactly one entry or ErrNotLoggedIn; the auto
// selector yields one entry per stored region, in store enumeration
// order, and ErrNotLoggedIn when nothing is stored. Resolution happens
// once, before any network call.
func Resolve(store credentials.Store, sel region.Selector) ([]Entry, error) {
	if !sel.IsAuto() {
		rec, err := store.Get(sel.Region())
		if errors.Is(err, credentials.ErrNotFound) {
			return nil, fmt.Errorf("%w: no credentials for region %s", ErrNotLoggedIn, sel.Region())
		}
		if err != nil {
			return nil, err
		}
		return []Entry{{Region: sel.Region(), Record: rec}}, nil
	}

	regions, err := store.Regions()
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, ErrNotLoggedIn
	}

	entries := make([]Entry, 0, len(regions))
	for _, r := range regions {
		rec, err := store.Get(r)
		if errors.Is(err, credentials.ErrNotFound) {
			// Deleted between enumeration and lookup; skip.
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Region: r, Record: rec})
	}
	if len(entries) == 0 {
		return nil, ErrNotLoggedIn
	}
	return entries, nil
}
