// file: internals/session/storage.go
package session

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// Storage is the per-browser durable key/value store the providers read and write.
// Values are plain strings; an absent key reads as "".
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
	Save() error
}

/* =======================================================
   FIBER SESSION ADAPTER
   ======================================================= */

// FiberStorage adapts a fiber session. Writes are buffered in the session and persisted once
// by Middleware after the handler returns.
type FiberStorage struct {
	sess  *fibersession.Session
	dirty bool
}

func (s *FiberStorage) Get(key string) string {
	if v, ok := s.sess.Get(key).(string); ok {
		return v
	}
	return ""
}

func (s *FiberStorage) Set(key, value string) {
	s.sess.Set(key, value)
	s.dirty = true
}

func (s *FiberStorage) Delete(key string) {
	s.sess.Delete(key)
	s.dirty = true
}

// Save marks the session for persistence at the end of the request.
func (s *FiberStorage) Save() error {
	s.dirty = true
	return nil
}

// NewStore builds the cookie-keyed session store. A nil storage keeps sessions in memory.
func NewStore(storage fiber.Storage, ttl time.Duration, secure bool) *fibersession.Store {
	cfg := fibersession.Config{
		Expiration:     ttl,
		KeyLookup:      "cookie:otm_session",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return fibersession.New(cfg)
}

const localsKey = "otm_session"

// Middleware loads the browser's session into Locals and persists it after the handler ran.
func Middleware(store *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("[SESSION] load failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
		}
		st := &FiberStorage{sess: sess}
		c.Locals(localsKey, Storage(st))

		herr := c.Next()

		if st.dirty {
			if err := sess.Save(); err != nil {
				log.Printf("[SESSION] save failed: %v", err)
			}
		}
		return herr
	}
}

// From returns the request's storage. Without Middleware it hands out a throwaway memory store.
func From(c *fiber.Ctx) Storage {
	if st, ok := c.Locals(localsKey).(Storage); ok && st != nil {
		return st
	}
	st := NewMemoryStorage()
	c.Locals(localsKey, Storage(st))
	return st
}

/* =======================================================
   MEMORY STORAGE
   ======================================================= */

// MemoryStorage is a Storage backed by a map, for tests and for From's fallback.
type MemoryStorage struct {
	mu    sync.RWMutex
	data  map[string]string
	Saves int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key]
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

func (m *MemoryStorage) Save() error {
	m.mu.Lock()
	m.Saves++
	m.mu.Unlock()
	return nil
}
