package timeutil

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
)

const (
	DefaultTimezone          = "UTC"
	DefaultLocationCacheSize = 512
)

var locations = newLocationCache(DefaultLocationCacheSize)

type locationEntry struct {
	location *time.Location
	err      error
}

// locationCache keeps the result of time.LoadLocation, including failures, since zone
// names repeat across every datum of an upload.
type locationCache struct {
	lru *simplelru.LRU
	mu  *sync.Mutex
}

func newLocationCache(size int) *locationCache {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(err)
	}
	return &locationCache{
		lru: lru,
		mu:  &sync.Mutex{},
	}
}

func (c *locationCache) load(name string) (*time.Location, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.lru.Get(name); ok {
		entry := cached.(locationEntry)
		return entry.location, entry.err
	}

	location, err := time.LoadLocation(name)
	c.lru.Add(name, locationEntry{location: location, err: err})
	return location, err
}

// LoadLocation returns the IANA location for name. Empty names and "Local" are rejected
// because they do not identify a zone independently of the host.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, &time.ParseError{Value: name, Message: "invalid timezone name"}
	}
	return locations.load(name)
}

func IsValidTimezone(name string) bool {
	_, err := LoadLocation(name)
	return err == nil
}

// LocationOrUTC never fails, unknown zones resolve to UTC.
func LocationOrUTC(name string) *time.Location {
	location, err := LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}
