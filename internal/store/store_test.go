package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	s := NewSessionStore()

	sess := s.Create()
	require.NotEmpty(t, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestGetUnknownSession(t *testing.T) {
	s := NewSessionStore()

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	s := NewSessionStore()

	a := s.Create()
	b := s.Create()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, s.Len())
}
