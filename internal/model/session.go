package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Mode selects how a game ends.
type Mode string

const (
	// ModePractice lets the player keep going until they miss.
	ModePractice Mode = "practice"
	// ModeTimed ends the game when the timer runs out.
	ModeTimed Mode = "timed"
)

// GameSession is the durable state of one game. It is stored in Redis as a
// JSON string under its session id and expires with the key.
type GameSession struct {
	SessionID        string `json:"sessionId"`
	Mode             Mode   `json:"mode"`
	Turn             int    `json:"turn"`
	CurrentProfileID string `json:"currentProfileId,omitempty"`
	Expire           int    `json:"expire"`
}

// EncodeSession renders the canonical stored form of a session.
func EncodeSession(s GameSession) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	return string(data), nil
}

// DecodeSession parses a stored session record and checks its shape, so a
// mangled record surfaces as an error instead of an invalid session.
func DecodeSession(data string) (GameSession, error) {
	var s GameSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return GameSession{}, err
	}
	if s.SessionID == "" {
		return GameSession{}, errors.New("session record is missing sessionId")
	}
	if s.Turn < 0 {
		return GameSession{}, fmt.Errorf("session record has negative turn %d", s.Turn)
	}
	return s, nil
}
