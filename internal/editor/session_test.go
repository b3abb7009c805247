package editor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotolinks/internal/models"
)

type flushRecorder struct {
	mu        sync.Mutex
	snapshots []*models.Profile
	fail      bool
}

func (r *flushRecorder) flush(p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("storage unavailable")
	}
	r.snapshots = append(r.snapshots, p)
	return nil
}

func (r *flushRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func (r *flushRecorder) last() *models.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snapshots) == 0 {
		return nil
	}
	return r.snapshots[len(r.snapshots)-1]
}

func (r *flushRecorder) setFail(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = fail
}

const testIdle = 40 * time.Millisecond

func TestSessionDebouncesBurstIntoOneFlush(t *testing.T) {
	rec := &flushRecorder{}
	s := NewSession(testProfile(), testIdle, rec.flush)

	// Two edits inside one idle window produce a single flush carrying both.
	block, err := s.AddBlock(models.BlockTypeLink, models.BlockData{Title: "First"})
	require.NoError(t, err)
	time.Sleep(testIdle / 2)
	title := "Renamed"
	require.NoError(t, s.UpdateBlockData(block.ID, models.BlockDataPatch{Title: &title}))

	assert.Equal(t, 0, rec.count(), "no flush before the idle window elapses")

	require.Eventually(t, func() bool { return rec.count() == 1 }, 10*testIdle, testIdle/4)

	saved := rec.last()
	require.Len(t, saved.Blocks, 1)
	assert.Equal(t, "Renamed", saved.Blocks[0].Data.Title)

	// Quiet session stays at one flush.
	time.Sleep(2 * testIdle)
	assert.Equal(t, 1, rec.count())
	assert.False(t, s.Dirty())
}

func TestSessionEditAfterFlushSchedulesAnother(t *testing.T) {
	rec := &flushRecorder{}
	s := NewSession(testProfile(), testIdle, rec.flush)

	_, err := s.AddBlock(models.BlockTypeLink, models.BlockData{})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return rec.count() == 1 }, 10*testIdle, testIdle/4)

	_, err = s.AddBlock(models.BlockTypeTelegram, models.BlockData{Phone: "sarah"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return rec.count() == 2 }, 10*testIdle, testIdle/4)

	assert.Len(t, rec.last().Blocks, 2)
}

func TestSessionFlushFailureRetries(t *testing.T) {
	rec := &flushRecorder{}
	rec.setFail(true)
	s := NewSession(testProfile(), testIdle, rec.flush)

	_, err := s.AddBlock(models.BlockTypeLink, models.BlockData{})
	require.NoError(t, err)

	time.Sleep(2 * testIdle)
	assert.True(t, s.Dirty(), "failed flush leaves the session dirty")

	rec.setFail(false)
	require.Eventually(t, func() bool { return rec.count() == 1 }, 10*testIdle, testIdle/4)
	assert.False(t, s.Dirty())
}

func TestSessionFlushReportsPersistenceError(t *testing.T) {
	rec := &flushRecorder{}
	rec.setFail(true)
	s := NewSession(testProfile(), time.Hour, rec.flush)

	_, err := s.AddBlock(models.BlockTypeLink, models.BlockData{Title: "Draft"})
	require.NoError(t, err)

	err = s.Flush()
	require.Error(t, err)
	assert.ErrorContains(t, err, "storage unavailable")
	assert.Equal(t, err, s.LastError())
	assert.True(t, s.Dirty(), "working copy is kept after a failed flush")
	require.Len(t, s.Snapshot().Blocks, 1)

	rec.setFail(false)
	require.NoError(t, s.Flush())
	assert.NoError(t, s.LastError())
	assert.False(t, s.Dirty())
	assert.Equal(t, 1, rec.count())
}

func TestSessionCloseFlushesPendingEdits(t *testing.T) {
	rec := &flushRecorder{}
	s := NewSession(testProfile(), time.Hour, rec.flush)

	_, err := s.AddBlock(models.BlockTypeLink, models.BlockData{})
	require.NoError(t, err)

	s.Close()
	assert.Equal(t, 1, rec.count())
}

func TestSessionFailedEditDoesNotScheduleFlush(t *testing.T) {
	rec := &flushRecorder{}
	s := NewSession(testProfile("a"), testIdle, rec.flush)

	assert.Error(t, s.DeleteBlock("missing"))
	time.Sleep(2 * testIdle)
	assert.Equal(t, 0, rec.count())
}

func TestSessionsGetOrCreateReusesLiveSession(t *testing.T) {
	rec := &flushRecorder{}
	m := NewSessions(testIdle)

	loads := 0
	load := func() (*models.Profile, FlushFunc, error) {
		loads++
		return testProfile(), rec.flush, nil
	}

	s1, err := m.GetOrCreate("profile-1", load)
	require.NoError(t, err)
	s2, err := m.GetOrCreate("profile-1", load)
	require.NoError(t, err)

	assert.Same(t, s1, s2)
	assert.Equal(t, 1, loads)

	_, ok := m.Get("profile-1")
	assert.True(t, ok)
	_, ok = m.Get("other")
	assert.False(t, ok)
}

func TestSessionsCloseAllFlushes(t *testing.T) {
	rec := &flushRecorder{}
	m := NewSessions(time.Hour)

	s, err := m.GetOrCreate("profile-1", func() (*models.Profile, FlushFunc, error) {
		return testProfile(), rec.flush, nil
	})
	require.NoError(t, err)

	_, err = s.AddBlock(models.BlockTypeLink, models.BlockData{})
	require.NoError(t, err)

	m.CloseAll()
	assert.Equal(t, 1, rec.count())

	_, ok := m.Get("profile-1")
	assert.False(t, ok)
}
