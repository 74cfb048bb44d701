// File: utils/constants.go
package utils

import (
	"sync"
	"time"
)

// CatalogCachePrefix is the prefix used for Redis catalog cache keys.
const CatalogCachePrefix = "catalog:"

// PartnerCachePrefix is the prefix used for Redis partner cache keys.
const PartnerCachePrefix = "partner:"

// CatalogCacheTTL is the time-to-live for catalog and partner cache entries.
const CatalogCacheTTL = 10 * time.Minute

var (
	civilOnce sync.Once
	civilLoc  *time.Location
)

// CivilTime returns the fixed civil timezone all customer-facing timestamps
// are rendered in. Booked times must print as the partner's wall clock,
// never the server's.
func CivilTime() *time.Location {
	civilOnce.Do(func() {
		loc, err := time.LoadLocation("Europe/Paris")
		if err != nil {
			loc = time.FixedZone("CET", 1*60*60)
		}
		civilLoc = loc
	})
	return civilLoc
}
