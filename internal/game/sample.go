package game

import (
	"math/rand/v2"

	"github.com/namegame/api/internal/model"
)

// DefaultHandSize is how many candidate profiles a hand shows the player.
const DefaultHandSize = 6

// SampleProfiles returns count profiles drawn at random, without replacement,
// from profiles. Every permutation is equally likely. When count exceeds the
// input length the whole shuffled input is returned. The input is not
// modified.
func SampleProfiles(profiles []model.Profile, count int) []model.Profile {
	shuffled := make([]model.Profile, len(profiles))
	copy(shuffled, profiles)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
