package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSessionOmitsEmptyTarget(t *testing.T) {
	data, err := EncodeSession(GameSession{
		SessionID: "s1",
		Mode:      ModePractice,
		Expire:    3600,
	})
	require.NoError(t, err)
	assert.NotContains(t, data, "currentProfileId")

	data, err = EncodeSession(GameSession{
		SessionID:        "s1",
		Mode:             ModePractice,
		CurrentProfileID: "p1",
		Expire:           3600,
	})
	require.NoError(t, err)
	assert.Contains(t, data, `"currentProfileId":"p1"`)
}

func TestDecodeSessionRejectsBadRecords(t *testing.T) {
	_, err := DecodeSession("{not json")
	assert.Error(t, err)

	_, err = DecodeSession(`{"mode":"practice","turn":0,"expire":3600}`)
	assert.Error(t, err, "record without sessionId should not decode")

	_, err = DecodeSession(`{"sessionId":"s1","mode":"practice","turn":-2,"expire":3600}`)
	assert.Error(t, err, "record with negative turn should not decode")
}
