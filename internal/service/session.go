package service

import (
	"strconv"
	"time"

	"github.com/mebelart/catalogbot/internal/domain"
	cache "github.com/patrickmn/go-cache"
)

// SessionService is the in-memory per-chat session store. Sessions are
// created on first interaction and expire after ttl of inactivity; the
// go-cache janitor reclaims them in the background.
type SessionService struct {
	store *cache.Cache
}

func NewSessionService(ttl, cleanup time.Duration) *SessionService {
	return &SessionService{store: cache.New(ttl, cleanup)}
}

// FindOrCreate returns the session for chatID, creating it when absent,
// and refreshes its expiration.
func (s *SessionService) FindOrCreate(chatID int64) *domain.ProjectSession {
	key := sessionKey(chatID)

	if v, ok := s.store.Get(key); ok {
		sess := v.(*domain.ProjectSession)
		s.store.SetDefault(key, sess)
		return sess
	}

	sess := domain.NewProjectSession(chatID)
	if err := s.store.Add(key, sess, cache.DefaultExpiration); err != nil {
		// Lost the race to a concurrent update for the same chat.
		if v, ok := s.store.Get(key); ok {
			return v.(*domain.ProjectSession)
		}
	}
	return sess
}

// Peek returns the session for chatID without creating one.
func (s *SessionService) Peek(chatID int64) (*domain.ProjectSession, error) {
	if v, ok := s.store.Get(sessionKey(chatID)); ok {
		return v.(*domain.ProjectSession), nil
	}
	return nil, domain.ErrSessionNotFound
}

// Reset clears the project state for chatID, keeping the session alive.
func (s *SessionService) Reset(chatID int64) *domain.ProjectSession {
	sess := s.FindOrCreate(chatID)
	sess.Reset()
	return sess
}

// Count returns the number of live sessions.
func (s *SessionService) Count() int {
	return s.store.ItemCount()
}

func sessionKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
