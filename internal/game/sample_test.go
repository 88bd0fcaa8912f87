package game

import (
	"testing"

	"github.com/namegame/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleProfilesCount(t *testing.T) {
	profiles := makeProfiles(20)

	sampled := SampleProfiles(profiles, 6)
	require.Len(t, sampled, 6)

	seen := map[string]bool{}
	byID := map[string]model.Profile{}
	for _, p := range profiles {
		byID[p.ID] = p
	}
	for _, p := range sampled {
		assert.False(t, seen[p.ID], "profile %s sampled twice", p.ID)
		seen[p.ID] = true
		assert.Contains(t, byID, p.ID)
	}
}

func TestSampleProfilesCountExceedsInput(t *testing.T) {
	profiles := makeProfiles(4)

	sampled := SampleProfiles(profiles, 6)
	assert.Len(t, sampled, 4)
}

func TestSampleProfilesEmptyInput(t *testing.T) {
	sampled := SampleProfiles(nil, 6)
	assert.Empty(t, sampled)
}

func TestSampleProfilesDoesNotModifyInput(t *testing.T) {
	profiles := makeProfiles(10)
	original := make([]model.Profile, len(profiles))
	copy(original, profiles)

	SampleProfiles(profiles, 6)
	assert.Equal(t, original, profiles)
}

// Statistical check: drawing repeatedly should not keep producing the same
// first profile. With 30 profiles and 50 draws a fixed first element is
// practically impossible.
func TestSampleProfilesShuffles(t *testing.T) {
	profiles := makeProfiles(30)

	firsts := map[string]bool{}
	for i := 0; i < 50; i++ {
		sampled := SampleProfiles(profiles, 6)
		firsts[sampled[0].ID] = true
	}

	assert.Greater(t, len(firsts), 1, "sampling always produced the same first profile")
}
