package memory

import (
	"time"

	"title-assist-be/pkg/conversation"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds live widget sessions in memory. Sessions idle for
// an hour expire; the widget starts a fresh conversation after that.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Save stores the session and refreshes its idle timer.
func (r *SessionRepository) Save(session *conversation.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*conversation.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*conversation.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
