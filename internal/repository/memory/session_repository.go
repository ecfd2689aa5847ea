package memory

import (
	"sync"
	"time"

	"ai-shopchat-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the process-wide conversational memory: a TTL-bounded
// cache keyed by opaque session identifier, plus per-session mutual
// exclusion so no two turns for the same session run concurrently.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, expired sessions purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	r := &SessionRepository{
		cache: c,
		locks: make(map[string]*sync.Mutex),
	}
	// The mutex entry lives exactly as long as the cached session: go-cache
	// fires this on TTL expiry and on Delete.
	c.OnEvicted(func(sessionID string, _ interface{}) {
		r.removeLock(sessionID)
	})
	return r
}

// GetOrCreate returns the session for an identifier, creating it lazily on
// first use. Touching a session refreshes its TTL.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if x, found := r.cache.Get(sessionID); found {
		session := x.(*store.Session)
		r.cache.Set(sessionID, session, cache.DefaultExpiration)
		return session
	}
	session := &store.Session{ID: sessionID}
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
	return session
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Lock acquires the per-session mutex, serializing turns for one session
// while leaving other sessions fully parallel.
func (r *SessionRepository) Lock(sessionID string) {
	r.sessionMutex(sessionID).Lock()
}

func (r *SessionRepository) Unlock(sessionID string) {
	r.sessionMutex(sessionID).Unlock()
}

func (r *SessionRepository) sessionMutex(sessionID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[sessionID] = m
	}
	return m
}

func (r *SessionRepository) removeLock(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, sessionID)
}
