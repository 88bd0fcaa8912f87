package game

import (
	"context"
	"errors"

	"github.com/namegame/api/internal/model"
)

// ProfileSource returns the full list of employee profiles to deal from.
type ProfileSource interface {
	GetProfiles(ctx context.Context) ([]model.Profile, error)
}

// HandService deals hands: it picks the candidate profiles for a turn and
// records which one the player has to find.
type HandService struct {
	sessions *SessionManager
	profiles ProfileSource
}

func NewHandService(sessions *SessionManager, profiles ProfileSource) *HandService {
	return &HandService{sessions: sessions, profiles: profiles}
}

// Deal draws a fresh hand for the session. The first sampled profile becomes
// the target: its name is the one shown to the player, who has to pick the
// matching face out of the candidates. The target's id is recorded on the
// session until the hand is played.
func (s *HandService) Deal(ctx context.Context, sessionID string) (model.Hand, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.Hand{}, err
	}

	// The directory is queried fresh on every deal; nothing is cached.
	profiles, err := s.profiles.GetProfiles(ctx)
	if err != nil {
		return model.Hand{}, err
	}

	sampled := SampleProfiles(profiles, DefaultHandSize)
	if len(sampled) == 0 {
		return model.Hand{}, errors.New("profile directory returned no profiles")
	}
	target := sampled[0]

	hand := model.Hand{
		Name:     target.FullName(),
		Profiles: make([]model.ProfileSummary, 0, len(sampled)),
	}
	for _, p := range sampled {
		hand.Profiles = append(hand.Profiles, p.Summary())
	}

	session.CurrentProfileID = target.ID
	if err := s.sessions.save(ctx, session); err != nil {
		return model.Hand{}, err
	}

	return hand, nil
}
