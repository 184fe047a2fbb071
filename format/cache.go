package format

import (
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize bounds the number of compiled templates kept in memory.
const DefaultCacheSize = 1024

var templates = mustCache(DefaultCacheSize)

func mustCache(size int) *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return c
}

func lookup(raw string) *template {
	if v, ok := templates.Get(raw); ok {
		return v.(*template)
	}
	t := compile(raw)
	templates.Add(raw, t)
	return t
}

// CacheLen returns the number of compiled templates currently cached.
func CacheLen() int {
	return templates.Len()
}

// ClearCache drops every compiled template (useful for tests).
func ClearCache() {
	templates.Purge()
}
