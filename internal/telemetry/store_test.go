package telemetry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apogee-robotics/seeker/internal/seeker"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "telemetry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAssignsRunID(t *testing.T) {
	s := openTestStore(t)
	assert.NotEmpty(t, s.RunID())
}

func TestRecordAndListTransitions(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.RecordTransition(at, seeker.StateSearching, seeker.StateApproaching, "goal sighted")
	s.RecordTransition(at.Add(time.Second), seeker.StateApproaching, seeker.StateAvoiding, "obstacle flagged")

	transitions, err := s.ListTransitions(0)
	require.NoError(t, err)
	require.Len(t, transitions, 2)
	assert.Equal(t, "searching", transitions[0].From)
	assert.Equal(t, "approaching", transitions[0].To)
	assert.Equal(t, "goal sighted", transitions[0].Reason)
	assert.Equal(t, "avoiding", transitions[1].To)
	assert.InDelta(t, float64(at.Unix()), transitions[0].AtUnix, 1)

	limited, err := s.ListTransitions(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCountCommandsGroupsByIntent(t *testing.T) {
	s := openTestStore(t)
	at := time.Now()

	for i := 0; i < 3; i++ {
		s.RecordCommand(at, seeker.StateSearching, seeker.IntentRotate, seeker.VelocityCommand{Angular: 0.7})
	}
	s.RecordCommand(at, seeker.StateApproaching, seeker.IntentSeek, seeker.VelocityCommand{Linear: 0.1})

	counts, err := s.CountCommands()
	require.NoError(t, err)
	assert.Equal(t, 3, counts[string(seeker.IntentRotate)])
	assert.Equal(t, 1, counts[string(seeker.IntentSeek)])
}

func TestRunsAreIsolated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "telemetry.db")

	first, err := Open(path)
	require.NoError(t, err)
	first.RecordTransition(time.Now(), seeker.StateSearching, seeker.StateApproaching, "goal sighted")
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, first.RunID(), second.RunID())
	transitions, err := second.ListTransitions(0)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}
