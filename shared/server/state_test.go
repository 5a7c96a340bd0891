package server_test

import (
	"organise/shared/server"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	tracker := server.NewTracker()

	assert.False(t, tracker.Accepting())
	assert.Equal(t, "starting", tracker.Get().String())

	tracker.Set(server.StateReady)
	assert.True(t, tracker.Accepting())

	tracker.Set(server.StateInGracePeriod)
	assert.False(t, tracker.Accepting())
	assert.Equal(t, "grace_period", tracker.Get().String())

	tracker.Set(server.StateInCleanupPeriod)
	assert.Equal(t, "cleanup_period", tracker.Get().String())
}
