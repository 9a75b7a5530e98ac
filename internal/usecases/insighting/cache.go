package insighting

import (
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

// Cache memoriza visões já calculadas. A chave inclui a versão do dataset,
// então um reseed nunca devolve resultado antigo mesmo sem Purge.
type Cache struct {
	entries *lru.Cache[string, any]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

func CacheKey(version, view string, filters domain.InsightFilters) string {
	return strings.Join([]string{version, view, filters.Key()}, "|")
}

// Memoize devolve o valor guardado na chave ou calcula e guarda. O segundo
// retorno indica se houve acerto no cache.
func Memoize[T any](c *Cache, key string, compute func() T) (T, bool) {
	if c == nil {
		return compute(), false
	}

	if cached, ok := c.entries.Get(key); ok {
		if value, ok := cached.(T); ok {
			c.hits.Add(1)
			return value, true
		}
	}

	c.misses.Add(1)
	value := compute()
	c.entries.Add(key, value)
	return value, false
}

func (c *Cache) Purge() {
	c.entries.Purge()
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) Stats() map[string]any {
	return map[string]any{
		"entries": c.entries.Len(),
		"hits":    c.hits.Load(),
		"misses":  c.misses.Load(),
	}
}
