package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/namegame/api/internal/model"
	"github.com/namegame/api/internal/store"
)

// DefaultExpire is the session TTL in seconds when neither the client nor
// the configuration picks one.
const DefaultExpire = 3600

// SessionManager creates and loads game sessions from the key-value store.
// Sessions are never deleted; they disappear when their store key expires.
type SessionManager struct {
	store         store.Store
	defaultExpire int
}

func NewSessionManager(st store.Store, defaultExpire int) *SessionManager {
	if defaultExpire <= 0 {
		defaultExpire = DefaultExpire
	}
	return &SessionManager{store: st, defaultExpire: defaultExpire}
}

// Create persists a fresh session and returns it. Zero values select the
// defaults: practice mode and the configured TTL.
func (m *SessionManager) Create(ctx context.Context, mode model.Mode, expire int) (model.GameSession, error) {
	if mode == "" {
		mode = model.ModePractice
	}
	if expire <= 0 {
		expire = m.defaultExpire
	}

	session := model.GameSession{
		SessionID: uuid.NewString(),
		Mode:      mode,
		Turn:      0,
		Expire:    expire,
	}

	if err := m.save(ctx, session); err != nil {
		return model.GameSession{}, err
	}
	return session, nil
}

// Get loads a session by id.
func (m *SessionManager) Get(ctx context.Context, sessionID string) (model.GameSession, error) {
	data, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return model.GameSession{}, err
	}
	if data == "" {
		return model.GameSession{}, &SessionNotFoundError{SessionID: sessionID}
	}

	session, err := model.DecodeSession(data)
	if err != nil {
		return model.GameSession{}, &CorruptSessionError{SessionID: sessionID, Err: err}
	}
	return session, nil
}

// save writes the session back and re-arms its TTL, extending the session's
// life on every mutation.
func (m *SessionManager) save(ctx context.Context, s model.GameSession) error {
	data, err := model.EncodeSession(s)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, s.SessionID, data); err != nil {
		return err
	}
	return m.store.Expire(ctx, s.SessionID, s.Expire)
}
