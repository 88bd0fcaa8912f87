package game

import (
	"context"

	"github.com/namegame/api/internal/model"
)

// ScoringService settles a played hand against the session's recorded target.
type ScoringService struct {
	sessions *SessionManager
}

func NewScoringService(sessions *SessionManager) *ScoringService {
	return &ScoringService{sessions: sessions}
}

// Play scores the submitted profile id against the current target, advances
// the turn counter and clears the target. A session with no hand dealt never
// scores a win, whatever the player submits.
func (s *ScoringService) Play(ctx context.Context, sessionID, profileID string) (model.HandResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.HandResult{}, err
	}

	won := session.CurrentProfileID != "" && session.CurrentProfileID == profileID

	updated := session
	updated.Turn++
	updated.CurrentProfileID = ""

	// The write has to land before the result goes out, so the stored turn
	// count always matches what the client was told.
	if err := s.sessions.save(ctx, updated); err != nil {
		return model.HandResult{}, err
	}

	return model.HandResult{Won: won, Turn: updated.Turn}, nil
}
