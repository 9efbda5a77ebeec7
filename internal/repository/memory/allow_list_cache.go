package memory

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// AllowListCache remembers allow-list lookups so the admin gate does not hit the database
// on every request. Both approvals and rejections are cached.
type AllowListCache struct {
	cache *cache.Cache
}

func NewAllowListCache(ttl time.Duration) *AllowListCache {
	c := cache.New(ttl, 2*ttl)
	return &AllowListCache{
		cache: c,
	}
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *AllowListCache) Save(email string, approved bool) {
	r.cache.Set(key(email), approved, cache.DefaultExpiration)
}

func (r *AllowListCache) Get(email string) (approved bool, found bool) {
	if x, found := r.cache.Get(key(email)); found {
		return x.(bool), true
	}
	return false, false
}

func (r *AllowListCache) Delete(email string) {
	r.cache.Delete(key(email))
}

func (r *AllowListCache) Flush() {
	r.cache.Flush()
}
