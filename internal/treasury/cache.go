package treasury

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// cachedDirectory memoises terminal resolutions. Payout loops hit the same
// treasury ids over and over; registrations change rarely, so a short TTL is
// enough. Missing terminals are not cached.
type cachedDirectory struct {
	inner Directory
	cache *cache.Cache
}

func NewCachedDirectory(inner Directory, ttl time.Duration) Directory {
	return cachedDirectory{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (d cachedDirectory) ResolveTerminal(treasuryId uint64) (string, error) {
	key := strconv.FormatUint(treasuryId, 10)

	if terminal, found := d.cache.Get(key); found {
		return terminal.(string), nil
	}

	terminal, err := d.inner.ResolveTerminal(treasuryId)
	if err != nil {
		return "", err
	}

	if terminal != "" {
		zap.L().With(zap.Uint64("treasuryId", treasuryId), zap.String("terminal", terminal)).Debug("Treasury: Caching terminal")
		d.cache.Set(key, terminal, cache.DefaultExpiration)
	}

	return terminal, nil
}
