// Package region defines the CatLink deployment regions and the
// region selector used by commands.
package region

import (
	"fmt"
	"strings"
)

// Region identifies a CatLink deployment zone. Each region has its own
// API host and its own credential namespace.
type Region string

const (
	Global    Region = "global"
	China     Region = "china"
	USA       Region = "usa"
	Singapore Region = "singapore"
)

// baseURLs maps each region to its fixed API base URL.
var baseURLs = map[Region]string{
	Global:    "https://app.catlinks.cn/api/",
	China:     "https://app-sh.catlinks.cn/api/",
	USA:       "https://app-usa.catlinks.cn/api/",
	Singapore: "https://app-sgp.catlinks.cn/api/",
}

// All returns every region in declaration order. The order is fixed so
// that multi-region output is reproducible.
func All() []Region {
	return []Region{Global, China, USA, Singapore}
}

// BaseURL returns the API base URL for the region, with a trailing slash.
func (r Region) BaseURL() string {
	return baseURLs[r]
}

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	_, ok := baseURLs[r]
	return ok
}

func (r Region) String() string {
	return string(r)
}

// Parse converts a user-supplied region name to a Region.
func Parse(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown region %q (valid: global, china, usa, singapore)", s)
	}
	return r, nil
}

// Auto is the selector sentinel meaning "every region with stored
// credentials".
const Auto = "auto"

// Selector is either a concrete region or the Auto sentinel.
type Selector struct {
	region Region
	auto   bool
}

// One returns a selector for a single concrete region.
func One(r Region) Selector {
	return Selector{region: r}
}

// AllStored returns the auto selector.
func AllStored() Selector {
	return Selector{auto: true}
}

// ParseSelector converts a user-supplied --region value to a Selector.
func ParseSelector(s string) (Selector, error) {
	if strings.EqualFold(strings.TrimSpace(s), Auto) || strings.TrimSpace(s) == "" {
		return AllStored(), nil
	}
	r, err := Parse(s)
	if err != nil {
		return Selector{}, err
	}
	return One(r), nil
}

// IsAuto reports whether the selector is the auto sentinel.
func (s Selector) IsAuto() bool {
	return s.auto
}

// Region returns the concrete region a non-auto selector refers to.
func (s Selector) Region() Region {
	return s.region
}

func (s Selector) String() string {
	if s.auto {
		return Auto
	}
	return string(s.region)
}
