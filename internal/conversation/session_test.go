package conversation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/collegebot/internal/domain"
)

func TestSessionsDefaultIsIdle(t *testing.T) {
	s := NewSessions()
	sess := s.Get(1)
	require.Equal(t, StateIdle, sess.State)
	require.Zero(t, sess.Page)
}

func TestSessionsSetGetReset(t *testing.T) {
	s := NewSessions()
	s.Set(1, Session{
		State:      StateAdminReviewList,
		ReviewKind: domain.KindStory,
		ViewUserID: 42,
	})

	sess := s.Get(1)
	require.Equal(t, StateAdminReviewList, sess.State)
	require.Equal(t, domain.KindStory, sess.ReviewKind)
	require.Equal(t, int64(42), sess.ViewUserID)

	s.Reset(1)
	require.Equal(t, StateIdle, s.Get(1).State)
}

func TestSessionsConcurrentAccess(t *testing.T) {
	s := NewSessions()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Set(id, Session{State: StateSearch})
			_ = s.Get(id)
			s.Reset(id)
		}(int64(i))
	}
	wg.Wait()
}

func TestStateTagValidity(t *testing.T) {
	for tag := range validStates {
		require.True(t, tag.Valid())
	}
	require.False(t, StateTag("").Valid())
	require.False(t, StateTag("no_such_state").Valid())
}
