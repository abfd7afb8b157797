package memory_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/mindmesh/internal/adapters/storage/memory"
	"github.com/PabloGalante/mindmesh/internal/domain"
)

func TestSessionStore(t *testing.T) {
	s := memory.NewSessionStore()
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateSession(&domain.Session{
			ID:        domain.SessionID(fmt.Sprintf("s%d", i)),
			UserID:    "u1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, s.CreateSession(&domain.Session{ID: "other", UserID: "u2"}))

	err := s.CreateSession(&domain.Session{ID: "s0"})
	assert.ErrorIs(t, err, domain.ErrSessionExists)

	_, err = s.GetSession("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = s.UpdateSession(&domain.Session{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	list, err := s.ListSessionsByUser("u1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.SessionID("s2"), list[0].ID)
	assert.Equal(t, domain.SessionID("s1"), list[1].ID)
}

func TestMessageStore_LimitKeepsNewest(t *testing.T) {
	s := memory.NewMessageStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendMessage(&domain.Message{
			ID:        domain.MessageID(fmt.Sprintf("m%d", i)),
			SessionID: "s1",
		}))
	}

	msgs, err := s.GetMessagesBySession("s1", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.MessageID("m3"), msgs[0].ID)
	assert.Equal(t, domain.MessageID("m4"), msgs[1].ID)

	all, err := s.GetMessagesBySession("s1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// the returned slice is detached from the store
	all[0] = nil
	again, _ := s.GetMessagesBySession("s1", 0)
	assert.NotNil(t, again[0])

	none, err := s.GetMessagesBySession("nope", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
